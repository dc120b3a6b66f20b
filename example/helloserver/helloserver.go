// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/yeetrun/kvargs/pkg/coerce"
	"github.com/yeetrun/kvargs/pkg/kvargs"
)

func main() {
	p := kvargs.MustNew(
		kvargs.WithProgramDescription("Serves a greeting and the parsed arguments."),
		kvargs.WithLogf(log.Printf),
	)
	p.AddArgument(kvargs.MustArgument("port", kvargs.WithDescription("Listen port"), kvargs.WithKind(coerce.Int), kvargs.WithDefault(8080)))
	p.AddArgument(kvargs.MustArgument("greeting", kvargs.WithDescription("Response body"), kvargs.WithDefault("Hello, world!")))

	args, err := p.Parse(os.Args[1:])
	if errors.Is(err, kvargs.ErrHelp) {
		msg, _ := p.HelpMessage()
		fmt.Print(msg)
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	port, _ := args.Int("port")
	greeting, _ := args.String("greeting")

	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/args" {
			w.Header().Set("Content-Type", "application/json")
			body, _ := args.MarshalJSON()
			w.Write(body)
			return
		}
		fmt.Fprintln(w, greeting)
	})))
}
