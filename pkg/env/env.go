// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yeetrun/kvargs/pkg/fileutil"
	"github.com/yeetrun/kvargs/pkg/kvargs"
)

// Write writes an environment file with the given name containing args.
func Write(name string, args *kvargs.Args) error {
	var buf bytes.Buffer
	if err := Marshal(&buf, args); err != nil {
		return fmt.Errorf("failed to marshal env: %v", err)
	}
	if err := fileutil.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %v", err)
	}
	return nil
}

// Marshal writes one NAME=value line per argument in parse order. Names are
// upper-cased and nil values are skipped. Values containing whitespace,
// quotes or newlines are double-quoted.
func Marshal(o io.Writer, args *kvargs.Args) error {
	for _, k := range args.Keys() {
		v := args.Get(k)
		if v == nil {
			continue
		}
		if _, err := fmt.Fprintf(o, "%s=%s\n", strings.ToUpper(k), quote(fmt.Sprint(v))); err != nil {
			return err
		}
	}
	return nil
}

func quote(s string) string {
	if !strings.ContainsAny(s, " \t\n\"'#$\\") {
		return s
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, `$`, `\$`)
	return `"` + r.Replace(s) + `"`
}
