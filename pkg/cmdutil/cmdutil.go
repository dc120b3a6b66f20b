// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yeetrun/kvargs/pkg/coerce"
)

// Confirm writes msg to w and reads a single answer line from r. Any of the
// truthy tokens (y, yes, t, true) confirms; everything else, including an
// empty line or EOF, declines.
func Confirm(r io.Reader, w io.Writer, msg string) (bool, error) {
	fmt.Fprintf(w, "%s [y/N]: ", msg)

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	ok, err := coerce.ParseBool(strings.TrimSpace(line))
	if err != nil {
		return false, nil
	}
	return ok, nil
}
