package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithTimeout_NoDeadline(t *testing.T) {
	timeout = 0
	defer func() { timeout = 0 }()

	err := withTimeout(context.Background(), func() error { return errors.New("boom") })
	assert.EqualError(t, err, "boom")
}

func TestWithTimeout_CompletesBeforeDeadline(t *testing.T) {
	timeout = time.Second
	defer func() { timeout = 0 }()

	err := withTimeout(context.Background(), func() error { return nil })
	assert.NoError(t, err)
}

func TestWithTimeout_ExceedsDeadline(t *testing.T) {
	timeout = time.Millisecond
	defer func() { timeout = 0 }()

	err := withTimeout(context.Background(), func() error {
		time.Sleep(50 * time.Millisecond)
		return nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
