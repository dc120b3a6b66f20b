// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/yeetrun/kvargs/pkg/coerce"
	"github.com/yeetrun/kvargs/pkg/kvargs"
)

func main() {
	p := kvargs.MustNew(kvargs.WithProgramDescription("Prints a greeting every interval."))
	p.AddArgument(kvargs.MustArgument("name", kvargs.WithDescription("Who to greet"), kvargs.WithDefault("World")))
	p.AddArgument(kvargs.MustArgument("times", kvargs.WithDescription("Greetings to print, 0 for forever"), kvargs.WithKind(coerce.Int), kvargs.WithDefault(0)))
	p.AddArgument(kvargs.MustArgument("every", kvargs.WithDescription("Seconds between greetings"), kvargs.WithKind(coerce.Float), kvargs.WithDefault(2.0)))

	args, err := p.Parse(os.Args[1:])
	if errors.Is(err, kvargs.ErrHelp) {
		msg, _ := p.HelpMessage()
		fmt.Print(msg)
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	name, _ := args.String("name")
	times, _ := args.Int("times")
	every, _ := args.Float("every")
	for i := 0; times == 0 || i < times; i++ {
		fmt.Printf("Hello, %s!\n", name)
		time.Sleep(time.Duration(every * float64(time.Second)))
	}
}
