package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ficsit-tools/sbp"
	"github.com/ficsit-tools/sbp/blueprint"
	"github.com/ficsit-tools/sbp/body"
	"github.com/ficsit-tools/sbp/fstring"
)

func newInspectCmd() *cobra.Command {
	var objectName string

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print a summary of a blueprint, or one object's property tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), args[0], objectName)
		},
	}

	cmd.Flags().StringVar(&objectName, "object", "", "instance name of a single object to print in full")

	return cmd
}

func runInspect(ctx context.Context, path, objectName string) error {
	var bp *blueprint.Blueprint

	err := withTimeout(ctx, func() error {
		parsed, err := sbp.ParseFile(path)
		if err != nil {
			return err
		}

		bp = parsed

		return nil
	})
	if err != nil {
		return fail(err)
	}

	if objectName == "" {
		fmt.Printf("header version: %s\n", bp.Header.Framing.Version)
		fmt.Printf("compression: %s\n", bp.Header.Framing.Algorithm)
		fmt.Printf("resources: %d\n", len(bp.Header.Resources))
		fmt.Printf("mod requirements: %d\n", len(bp.Header.ModRequirements))
		fmt.Printf("objects: %d\n", len(bp.Body.Objects))

		return nil
	}

	idx, err := body.BuildIndex(bp.Body)
	if err != nil {
		return fail(err)
	}

	obj, ok := idx.Lookup(fstring.WithNUL(objectName))
	if !ok {
		return fail(fmt.Errorf("object %q not found", objectName))
	}

	for _, p := range obj.Properties {
		fmt.Printf("%s: %#v\n", p.Name, p.Value)
	}

	return nil
}
