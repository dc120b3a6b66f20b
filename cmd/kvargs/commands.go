// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/yeetrun/kvargs/pkg/cli"
	"github.com/yeetrun/kvargs/pkg/cmdutil"
	"github.com/yeetrun/kvargs/pkg/codecutil"
	"github.com/yeetrun/kvargs/pkg/env"
	"github.com/yeetrun/kvargs/pkg/fileutil"
	"github.com/yeetrun/kvargs/pkg/ftdetect"
	"github.com/yeetrun/kvargs/pkg/kvargs"
)

func loadSchema(path string, opts ...kvargs.Option) (*kvargs.Parser, error) {
	opts = append([]kvargs.Option{kvargs.WithLogf(logf)}, opts...)
	return kvargs.LoadFile(path, ftdetect.Unknown, opts...)
}

// parseTokens runs p over tokens. A help token prints the usage text and
// reports done.
func parseTokens(p *kvargs.Parser, tokens []string) (args *kvargs.Args, done bool, err error) {
	args, err = p.ParseTokens(tokens)
	if errors.Is(err, kvargs.ErrHelp) {
		msg, _ := p.HelpMessage()
		fmt.Fprint(stdout, msg)
		return nil, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return args, false, nil
}

func handleCheck(ctx context.Context, args []string) error {
	flags, args, err := cli.ParseCheck(args)
	if err != nil {
		return err
	}
	p, err := loadSchema(args[0])
	if err != nil {
		return err
	}
	tokens := args[1:]
	if flags.Stdin || (len(tokens) == 0 && !isTerminalFn(stdinFd)) {
		fromStdin, err := readTokens(stdin)
		if err != nil {
			return err
		}
		tokens = append(tokens, fromStdin...)
	}
	parsed, done, err := parseTokens(p, tokens)
	if err != nil || done {
		return err
	}
	switch flags.Format {
	case cli.FormatJSON:
		b, err := json.MarshalIndent(parsed, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s\n", b)
		return nil
	case cli.FormatEnv:
		return env.Marshal(stdout, parsed)
	default:
		return printTable(stdout, p, parsed)
	}
}

// readTokens reads one token per line, skipping blank lines and # comments.
func readTokens(r io.Reader) ([]string, error) {
	var tokens []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens = append(tokens, line)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tokens from stdin: %w", err)
	}
	return tokens, nil
}

func printTable(w io.Writer, p *kvargs.Parser, parsed *kvargs.Args) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVALUE\tTYPE\tSOURCE")
	for _, name := range parsed.Keys() {
		v := parsed.Get(name)
		value := "-"
		if v != nil {
			value = fmt.Sprint(v)
		}
		source := color.YellowString("undeclared")
		kind := "raw"
		if a, ok := p.Lookup(name); ok {
			kind = a.Kind().String()
			source = color.GreenString("declared")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, value, kind, source)
	}
	return tw.Flush()
}

func handleConvert(ctx context.Context, args []string) error {
	flags, args, err := cli.ParseConvert(args)
	if err != nil {
		return err
	}
	src, dst := args[0], args[1]
	ft := ftdetect.Unknown
	if flags.To != "" {
		if ft, err = ftdetect.ParseFileType(flags.To); err != nil {
			return err
		}
	}
	p, err := loadSchema(src)
	if err != nil {
		return err
	}
	if !flags.Check {
		if !flags.Force && isTerminalFn(stdinFd) {
			if _, err := os.Stat(dst); err == nil {
				ok, err := cmdutil.Confirm(stdin, stdout, fmt.Sprintf("%s exists, overwrite?", dst))
				if err != nil {
					return err
				}
				if !ok {
					return errors.New("aborted")
				}
			}
		}
		if err := kvargs.SaveFile(p, dst, ft); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s %s -> %s\n", color.GreenString("converted"), src, dst)
		return nil
	}

	// Render into a scratch copy with the same name and compare files.
	tmp, err := os.MkdirTemp("", "kvargs-check-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)
	candidate := filepath.Join(tmp, filepath.Base(dst))
	if err := kvargs.SaveFile(p, candidate, ft); err != nil {
		return err
	}
	same, err := fileutil.Identical(candidate, dst)
	if err != nil {
		return err
	}
	if !same {
		return fmt.Errorf("%s is out of date with %s", dst, src)
	}
	fmt.Fprintf(stdout, "%s %s\n", color.GreenString("up to date"), dst)
	return nil
}

func handleUsage(ctx context.Context, args []string) error {
	flags, args, err := cli.ParseUsage(args)
	if err != nil {
		return err
	}
	prog := flags.Program
	if prog == "" {
		prog = schemaProgram(args[0])
	}
	p, err := loadSchema(args[0], kvargs.WithProgram(prog))
	if err != nil {
		return err
	}
	msg, ok := p.HelpMessage()
	if !ok {
		return fmt.Errorf("help is disabled in %s", args[0])
	}
	fmt.Fprint(stdout, msg)
	return nil
}

// schemaProgram derives a program name from a schema path:
// "greet.schema.yaml.zst" becomes "greet".
func schemaProgram(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return base
}

func handleEnv(ctx context.Context, args []string) error {
	args, err := cli.ParsePositional("env", args, 2)
	if err != nil {
		return err
	}
	p, err := loadSchema(args[0])
	if err != nil {
		return err
	}
	parsed, done, err := parseTokens(p, args[2:])
	if err != nil || done {
		return err
	}
	if err := env.Write(args[1], parsed); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s %d values to %s\n", color.GreenString("wrote"), parsed.Len(), args[1])
	return nil
}

func handleCompress(ctx context.Context, args []string) error {
	args, err := cli.ParsePositional("compress", args, 2)
	if err != nil {
		return err
	}
	return codecutil.ZstdCompress(args[0], args[1])
}

func handleDecompress(ctx context.Context, args []string) error {
	args, err := cli.ParsePositional("decompress", args, 2)
	if err != nil {
		return err
	}
	return codecutil.ZstdDecompress(args[0], args[1])
}
