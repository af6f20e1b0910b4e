// Copyright 2026 The Whenever Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The whenever command interprets a Starlark file with the datetime
// module predeclared. With no arguments, it starts a read-eval-print
// loop (REPL).
package main // import "github.com/whenever-go/whenever/cmd/whenever"

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.starlark.net/repl"
	"go.starlark.net/starlark"

	"github.com/whenever-go/whenever/starlarkdatetime"
)

// flags
var (
	showenv  = flag.Bool("showenv", false, "on success, print final global environment")
	execprog = flag.String("c", "", "execute program `prog`")
)

func main() {
	os.Exit(doMain())
}

func doMain() int {
	log.SetPrefix("whenever: ")
	log.SetFlags(0)
	flag.Parse()

	thread := &starlark.Thread{Load: repl.MakeLoad()}
	globals := make(starlark.StringDict)

	starlark.Universe[starlarkdatetime.ModuleName] = starlarkdatetime.Module

	switch {
	case flag.NArg() == 1 || *execprog != "":
		var (
			filename string
			src      interface{}
			err      error
		)
		if *execprog != "" {
			// Execute provided program.
			filename = "cmdline"
			src = *execprog
		} else {
			// Execute specified file.
			filename = flag.Arg(0)
		}
		thread.Name = "exec " + filename
		globals, err = starlark.ExecFile(thread, filename, src, nil)
		if err != nil {
			repl.PrintError(err)
			return 1
		}
	case flag.NArg() == 0:
		fmt.Println("Welcome to whenever (go.starlark.net)")
		thread.Name = "REPL"
		repl.REPL(thread, globals)
	default:
		log.Print("want at most one Starlark file name")
		return 1
	}

	// Print the global environment.
	if *showenv {
		for _, name := range globals.Keys() {
			if !strings.HasPrefix(name, "_") {
				fmt.Fprintf(os.Stderr, "%s = %s\n", name, globals[name])
			}
		}
	}

	return 0
}
