// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Command musicroom sets up and queries a music room.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mdhender/musicroom/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "musicroom: %v\n", err)
		os.Exit(1)
	}
}
