// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Program jparse parses a JSON document and prints it back as compact JSON,
// or reports a diagnostic with the line and text of the first defect.
//
// Usage:
//
//	jparse file.json
//	generator | jparse
//
// With no file argument, input is read from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/jparse/ast"
)

var doCheck = flag.Bool("check", false, "Report only whether the input parses")

func main() {
	flag.Parse()

	input, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "jparse: %v\n", err)
		os.Exit(1)
	}
	v, err := ast.Parse(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jparse: %v\n", err)
		os.Exit(1)
	}
	if !*doCheck {
		fmt.Println(v.JSON())
	}
}

func readInput(args []string) (string, error) {
	switch len(args) {
	case 0:
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	case 1:
		data, err := os.ReadFile(args[0])
		return string(data), err
	}
	return "", fmt.Errorf("extra arguments after %q", args[0])
}
