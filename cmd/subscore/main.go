package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd, cmdCtx := newRootCommand()
	err := cmd.Execute()
	if closeErr := cmdCtx.Close(); closeErr != nil {
		fmt.Fprintln(os.Stderr, closeErr)
	}
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
