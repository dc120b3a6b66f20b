// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kvargs

import (
	"fmt"
	"strings"
)

// HelpMessage returns the generated help text. It reports false when help is
// disabled on the parser.
//
// The layout is the description, a usage line listing every argument as
// name=<value>, then one right-aligned "name  :  description" line per
// argument. The description line is always emitted, so a parser without a
// description yields a message starting with an empty line ("\nUsage: ...").
func (p *Parser) HelpMessage() (string, bool) {
	if !p.help {
		return "", false
	}
	var header, body strings.Builder
	fmt.Fprintf(&header, "%s\nUsage: %s", p.description, p.program)
	body.WriteString("\n")
	for _, arg := range p.arguments {
		fmt.Fprintf(&header, " %s=<value>", arg.name)
		fmt.Fprintf(&body, "%12s  :  %s\n", arg.name, arg.description)
	}
	return header.String() + body.String(), true
}
