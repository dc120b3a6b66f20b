// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kvargs parses name=value command-line arguments against a declared
// schema.
//
// # Basic Usage
//
//	p := kvargs.MustNew(
//	    kvargs.WithProgramDescription("Greets people"),
//	    kvargs.WithArguments(
//	        kvargs.MustArgument("name", kvargs.WithDescription("Who to greet"), kvargs.Required()),
//	        kvargs.MustArgument("times", kvargs.WithKind(coerce.Int)),
//	        kvargs.MustArgument("loud", kvargs.WithParser(kvargs.Lenient(coerce.BoolValue))),
//	    ),
//	)
//
//	args, err := p.Parse(os.Args[1:]) // greet name=Ada times=3 loud=yes
//	if errors.Is(err, kvargs.ErrHelp) {
//	    msg, _ := p.HelpMessage()
//	    fmt.Print(msg)
//	    return
//	}
//	if err != nil {
//	    log.Fatal(err)
//	}
//	times, _ := args.Int("times")
//
// # Matching
//
// Each token is matched against the parser format, DefaultFormat unless
// WithFormat was used. The first capture group is the name and the second the
// value. Tokens that do not match are ignored. Names that match but are not
// declared are kept as raw strings in the result.
//
// A declared argument runs its custom ParserFunc first and then its
// coerce.Kind. Omitted optional arguments are recorded with their default
// (nil unless WithDefault was given); omitted required arguments fail with a
// *MissingArgumentError.
//
// # Schema Files
//
// A schema can be written to and read from JSON, YAML or TOML:
//
//	description: Greets people
//	format: ^([A-Za-z0-9_]+)=(.*)$
//	help: true
//	arguments:
//	  - name: name
//	    description: Who to greet
//	    required: true
//	    type: null
//	  - name: times
//	    description: null
//	    required: false
//	    type: int
//
// Custom parser functions, defaults and parsed values are not serialized. Use
// Parser.SetParser to attach parsers after LoadFile.
package kvargs
