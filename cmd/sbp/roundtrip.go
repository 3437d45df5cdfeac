package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ficsit-tools/sbp"
	"github.com/ficsit-tools/sbp/blueprint"
	"github.com/ficsit-tools/sbp/wire"
)

func newRoundtripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip <file>",
		Short: "Parse, re-serialize, and re-parse a blueprint, reporting whether both parsed bodies serialize to the same bytes (the file's original body bytes are not compared)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoundtrip(cmd.Context(), args[0])
		},
	}
}

func runRoundtrip(ctx context.Context, path string) error {
	var match bool

	err := withTimeout(ctx, func() error {
		original, err := sbp.ParseFile(path)
		if err != nil {
			return err
		}

		data, err := blueprint.SerializeBlueprint(original)
		if err != nil {
			return err
		}

		reparsed, err := blueprint.ParseBlueprint(data)
		if err != nil {
			return err
		}

		match = serializedBody(original.Body) == serializedBody(reparsed.Body)

		return nil
	})
	if err != nil {
		return fail(err)
	}

	fmt.Printf("round-trip match: %t\n", match)

	return nil
}

func serializedBody(b interface {
	Write(w *wire.Writer)
}) string {
	w := wire.NewWriter()
	defer w.Release()

	b.Write(w)

	return string(w.Bytes())
}
