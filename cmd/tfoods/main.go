package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tfoods/internal/pipeline"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		if errors.Is(err, pipeline.ErrPrecondition) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
