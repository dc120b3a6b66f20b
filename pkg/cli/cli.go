// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shayne/yargs"
)

type CommandInfo struct {
	Name        string
	Description string
	Usage       string
	Examples    []string
	Hidden      bool
	Aliases     []string
}

type GlobalFlags struct {
	Verbose bool
	NoColor bool
}

type CheckFlags struct {
	Format string
	Stdin  bool
}

type ConvertFlags struct {
	To    string
	Check bool
	Force bool
}

type UsageFlags struct {
	Program string
}

type globalFlagsParsed struct {
	Verbose bool `flag:"verbose" short:"v" help:"Log skipped and undeclared tokens"`
	NoColor bool `flag:"no-color" help:"Disable coloured output (NO_COLOR)"`
}

type checkFlagsParsed struct {
	Format string `flag:"format" default:"table" help:"Output format (table|json|env)"`
	Stdin  bool   `flag:"stdin" help:"Read name=value tokens from stdin, one per line"`
}

type convertFlagsParsed struct {
	To    string `flag:"to" help:"Output format (json|yaml|toml); default from DST extension"`
	Check bool   `flag:"check" help:"Fail if DST differs instead of writing it"`
	Force bool   `flag:"force" short:"f" help:"Overwrite DST without asking"`
}

type usageFlagsParsed struct {
	Program string `flag:"prog" help:"Program name shown in the usage line"`
}

// Output formats accepted by check.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatEnv   = "env"
)

var commandInfos = map[string]CommandInfo{
	"check": {
		Name:        "check",
		Description: "Parse name=value tokens against a schema and print the result",
		Usage:       "SCHEMA [name=value...] [--format=table|json|env]",
		Examples: []string{
			"kvargs check schema.yaml name=Ada times=3",
			"kvargs check schema.toml --format=json -- name=Ada",
			"printf 'name=Ada\\n' | kvargs check schema.json --stdin",
		},
	},
	"convert": {
		Name:        "convert",
		Description: "Re-encode a schema file in another format",
		Usage:       "SRC DST [--to=json|yaml|toml] [--check] [--force]",
		Examples: []string{
			"kvargs convert schema.json schema.toml",
			"kvargs convert schema.yaml schema.json.zst",
		},
		Aliases: []string{"conv"},
	},
	"usage": {
		Name:        "usage",
		Description: "Print the help message generated from a schema",
		Usage:       "SCHEMA [--prog=NAME]",
	},
	"env": {
		Name:        "env",
		Description: "Parse tokens against a schema and write the result as an env file",
		Usage:       "SCHEMA OUT [name=value...]",
		Examples:    []string{"kvargs env schema.yaml app.env name=Ada"},
	},
	"compress": {
		Name:        "compress",
		Description: "Compress a schema file with zstd",
		Usage:       "SRC DST",
	},
	"decompress": {
		Name:        "decompress",
		Description: "Decompress a zstd schema file",
		Usage:       "SRC DST",
	},
}

func CommandNames() []string {
	names := make([]string, 0, len(commandInfos))
	for name := range commandInfos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func CommandInfos() map[string]CommandInfo {
	return commandInfos
}

// HelpConfig returns the yargs help metadata for the kvargs binary.
func HelpConfig() yargs.HelpConfig {
	subcommands := make(map[string]yargs.SubCommandInfo, len(commandInfos))
	for name, info := range commandInfos {
		subcommands[name] = toSubCommandInfo(name, info)
	}
	return yargs.HelpConfig{
		Command: yargs.CommandInfo{
			Name:        "kvargs",
			Description: "Validate name=value arguments against JSON, YAML or TOML schemas.",
			Examples: []string{
				"kvargs check schema.yaml name=Ada",
				"kvargs convert schema.json schema.toml",
				"kvargs usage schema.toml",
			},
		},
		SubCommands: subcommands,
	}
}

func toSubCommandInfo(name string, info CommandInfo) yargs.SubCommandInfo {
	return yargs.SubCommandInfo{
		Name:        name,
		Description: info.Description,
		Usage:       info.Usage,
		Examples:    info.Examples,
		Hidden:      info.Hidden,
		Aliases:     info.Aliases,
	}
}

// GlobalFlagsExample is passed to yargs for help generation.
func GlobalFlagsExample() any {
	return globalFlagsParsed{}
}

// ParseGlobal consumes the global flags from anywhere in args and returns the
// rest untouched.
func ParseGlobal(args []string) (GlobalFlags, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return GlobalFlags{}, nil, err
	}
	flags := GlobalFlags{Verbose: result.Flags.Verbose, NoColor: result.Flags.NoColor}
	return flags, result.RemainingArgs, nil
}

func ParseCheck(args []string) (CheckFlags, []string, error) {
	parsed, err := parseCommandFlags[checkFlagsParsed]("check", args)
	if err != nil {
		return CheckFlags{}, nil, err
	}
	flags := CheckFlags{Format: parsed.Flags.Format, Stdin: parsed.Flags.Stdin}
	switch flags.Format {
	case FormatTable, FormatJSON, FormatEnv:
	default:
		return CheckFlags{}, nil, fmt.Errorf("invalid --format %q (want table, json or env)", flags.Format)
	}
	if err := RequireArgsAtLeast("check", parsed.Args, 1); err != nil {
		return CheckFlags{}, nil, err
	}
	return flags, parsed.Args, nil
}

func ParseConvert(args []string) (ConvertFlags, []string, error) {
	parsed, err := parseCommandFlags[convertFlagsParsed]("convert", args)
	if err != nil {
		return ConvertFlags{}, nil, err
	}
	if err := RequireArgsExactly("convert", parsed.Args, 2); err != nil {
		return ConvertFlags{}, nil, err
	}
	flags := ConvertFlags{To: parsed.Flags.To, Check: parsed.Flags.Check, Force: parsed.Flags.Force}
	return flags, parsed.Args, nil
}

func ParseUsage(args []string) (UsageFlags, []string, error) {
	parsed, err := parseCommandFlags[usageFlagsParsed]("usage", args)
	if err != nil {
		return UsageFlags{}, nil, err
	}
	if err := RequireArgsExactly("usage", parsed.Args, 1); err != nil {
		return UsageFlags{}, nil, err
	}
	return UsageFlags{Program: parsed.Flags.Program}, parsed.Args, nil
}

// ParsePositional parses a command without flags of its own.
func ParsePositional(cmd string, args []string, min int) ([]string, error) {
	parsed, err := parseCommandFlags[struct{}](cmd, args)
	if err != nil {
		return nil, err
	}
	if err := RequireArgsAtLeast(cmd, parsed.Args, min); err != nil {
		return nil, err
	}
	return parsed.Args, nil
}

type parsedFlags[T any] struct {
	Flags T
	Args  []string
}

// parseCommandFlags strips the command name, parses the flags of T and
// returns the positional args followed by anything after "--".
func parseCommandFlags[T any](cmd string, args []string) (parsedFlags[T], error) {
	args = stripCommand(cmd, args)
	parseArgs, extraArgs := splitArgsAtDoubleDash(args)
	result, err := yargs.ParseFlags[T](parseArgs)
	if err != nil {
		return parsedFlags[T]{}, err
	}
	argsOut := append([]string{}, result.Args...)
	if len(result.RemainingArgs) > 0 {
		argsOut = append(argsOut, result.RemainingArgs...)
	}
	argsOut = append(argsOut, extraArgs...)
	return parsedFlags[T]{Flags: result.Flags, Args: argsOut}, nil
}

// stripCommand drops the command name yargs leaves at the front of handler
// args. Aliases are already rewritten to the canonical name by then.
func stripCommand(cmd string, args []string) []string {
	if len(args) > 0 && args[0] == cmd {
		return args[1:]
	}
	return args
}

func splitArgsAtDoubleDash(args []string) ([]string, []string) {
	for i, arg := range args {
		if arg == "--" {
			if i+1 < len(args) {
				return args[:i], args[i+1:]
			}
			return args[:i], nil
		}
	}
	return args, nil
}

func RequireArgsAtLeast(subcmd string, args []string, count int) error {
	if len(args) < count {
		return fmt.Errorf("'%s' requires at least %d argument(s), got %d", subcmd, count, len(args))
	}
	return nil
}

func RequireArgsExactly(subcmd string, args []string, count int) error {
	if len(args) != count {
		return fmt.Errorf("'%s' requires %d argument(s), got %d: %s", subcmd, count, len(args), strings.Join(args, " "))
	}
	return nil
}
