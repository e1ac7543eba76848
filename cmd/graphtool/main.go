// Command graphtool inspects, converts and crops images through the graph
// pixel-buffer model.
//
// Usage:
//
//	graphtool info sprite.png
//	graphtool convert --type rgb565 in.png out.png
//	graphtool crop --rect 16,16,32,32 --zoom 128x128 sheet.png icon.png
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/uistyle/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
