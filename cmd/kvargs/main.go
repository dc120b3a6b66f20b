// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The kvargs command validates name=value arguments against schema files and
// converts schemas between JSON, YAML and TOML.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/shayne/yargs"
	"github.com/yeetrun/kvargs/pkg/cli"
	"github.com/yeetrun/kvargs/pkg/kvargs"
	"golang.org/x/term"
	"tailscale.com/types/logger"
)

var (
	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin

	isTerminalFn = term.IsTerminal
	stdinFd      = int(os.Stdin.Fd())

	// logf is handed to every parser the command builds.
	logf logger.Logf = logger.Discard
)

func main() {
	globalFlags, args, err := cli.ParseGlobal(os.Args[1:])
	if err != nil {
		printCLIError(os.Stderr, err)
		os.Exit(2)
	}
	if globalFlags.NoColor {
		color.NoColor = true
	}
	if globalFlags.Verbose {
		logf = log.Printf
	}
	if err := run(context.Background(), args); err != nil {
		printCLIError(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	handlers := map[string]yargs.SubcommandHandler{
		"check":      handleCheck,
		"convert":    handleConvert,
		"usage":      handleUsage,
		"env":        handleEnv,
		"compress":   handleCompress,
		"decompress": handleDecompress,
	}
	args = yargs.ApplyAliases(args, cli.HelpConfig())
	return yargs.RunSubcommands(ctx, args, cli.HelpConfig(), cli.GlobalFlagsExample(), handlers)
}

func printCLIError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprint(w, color.RedString("error: "))
	var missing *kvargs.MissingArgumentError
	var verr *kvargs.ValueError
	switch {
	case errors.As(err, &missing):
		fmt.Fprintf(w, "missing required argument %s\n", color.YellowString(missing.Name))
	case errors.As(err, &verr):
		fmt.Fprintf(w, "bad value %q for %s: %v\n", verr.Value, color.YellowString(verr.Name), verr.Err)
	default:
		fmt.Fprintln(w, err)
	}
}
