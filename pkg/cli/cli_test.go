// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseGlobal(t *testing.T) {
	flags, rest, err := ParseGlobal([]string{"check", "-v", "schema.yaml", "--no-color", "name=Ada"})
	if err != nil {
		t.Fatalf("ParseGlobal failed: %v", err)
	}
	if !flags.Verbose || !flags.NoColor {
		t.Errorf("flags = %+v, want verbose and no-color", flags)
	}
	if got := strings.Join(rest, " "); got != "check schema.yaml name=Ada" {
		t.Errorf("rest = %q", got)
	}
}

func TestParseCheck(t *testing.T) {
	flags, args, err := ParseCheck([]string{"check", "schema.yaml", "--format", "json", "name=Ada", "times=3"})
	if err != nil {
		t.Fatalf("ParseCheck failed: %v", err)
	}
	if flags.Format != FormatJSON {
		t.Errorf("Format = %q, want %q", flags.Format, FormatJSON)
	}
	want := []string{"schema.yaml", "name=Ada", "times=3"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
}

func TestParseCheckDefaults(t *testing.T) {
	flags, args, err := ParseCheck([]string{"check", "schema.toml"})
	if err != nil {
		t.Fatalf("ParseCheck failed: %v", err)
	}
	if flags.Format != FormatTable || flags.Stdin {
		t.Errorf("flags = %+v, want table without stdin", flags)
	}
	if len(args) != 1 || args[0] != "schema.toml" {
		t.Errorf("args = %v", args)
	}
}

func TestParseCheckDoubleDash(t *testing.T) {
	_, args, err := ParseCheck([]string{"check", "schema.json", "--", "--weird=1", "name=x"})
	if err != nil {
		t.Fatalf("ParseCheck failed: %v", err)
	}
	want := []string{"schema.json", "--weird=1", "name=x"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
}

func TestParseCheckErrors(t *testing.T) {
	if _, _, err := ParseCheck([]string{"check"}); err == nil {
		t.Error("ParseCheck without schema succeeded")
	}
	if _, _, err := ParseCheck([]string{"check", "s.json", "--format=xml"}); err == nil {
		t.Error("ParseCheck with --format=xml succeeded")
	}
	if _, _, err := ParseCheck([]string{"check", "s.json", "--bogus"}); err == nil {
		t.Error("ParseCheck with unknown flag succeeded")
	}
}

func TestParseConvert(t *testing.T) {
	flags, args, err := ParseConvert([]string{"convert", "--to", "toml", "a.json", "b.out"})
	if err != nil {
		t.Fatalf("ParseConvert failed: %v", err)
	}
	if flags.To != "toml" || flags.Check {
		t.Errorf("flags = %+v", flags)
	}
	if got := strings.Join(args, " "); got != "a.json b.out" {
		t.Errorf("args = %q", got)
	}
	if _, _, err := ParseConvert([]string{"convert", "a.json"}); err == nil {
		t.Error("ParseConvert with one path succeeded")
	}
}

func TestParseUsage(t *testing.T) {
	flags, args, err := ParseUsage([]string{"usage", "--prog=greet", "schema.yaml"})
	if err != nil {
		t.Fatalf("ParseUsage failed: %v", err)
	}
	if flags.Program != "greet" || len(args) != 1 || args[0] != "schema.yaml" {
		t.Errorf("flags = %+v, args = %v", flags, args)
	}
}

func TestParsePositional(t *testing.T) {
	args, err := ParsePositional("compress", []string{"compress", "a.json", "a.json.zst"}, 2)
	if err != nil {
		t.Fatalf("ParsePositional failed: %v", err)
	}
	if got := strings.Join(args, " "); got != "a.json a.json.zst" {
		t.Errorf("args = %q", got)
	}
	if _, err := ParsePositional("compress", []string{"compress", "a.json"}, 2); err == nil {
		t.Error("ParsePositional with too few args succeeded")
	}
}

func TestHelpConfigCoversCommands(t *testing.T) {
	cfg := HelpConfig()
	if cfg.Command.Name != "kvargs" {
		t.Errorf("Command.Name = %q", cfg.Command.Name)
	}
	for _, name := range CommandNames() {
		sub, ok := cfg.SubCommands[name]
		if !ok {
			t.Errorf("HelpConfig missing %q", name)
			continue
		}
		if sub.Description == "" {
			t.Errorf("%q has no description", name)
		}
	}
	if got := cfg.SubCommands["convert"].Aliases; !reflect.DeepEqual(got, []string{"conv"}) {
		t.Errorf("convert aliases = %v", got)
	}
}
