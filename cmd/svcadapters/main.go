package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hyp3rd/svcadapters/cmd/svcadapters/app"
)

func main() {
	cmd := app.NewCommand(context.Background())

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
