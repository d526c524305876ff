// abidec: Ethereum ABI calldata decoder and annotator
// Copyright 2026 abidec Authors
// SPDX-License-Identifier: BSD-3-Clause

// abilayout derives the type layout strings the abidec decoder consumes
// from Go struct definitions, so callers can keep their payload shapes as
// plain Go types and generate the textual layout instead of maintaining it
// by hand.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/tools/go/packages"
)

var typeFlag = flag.String("type", "", "Comma separated list of struct type names (default all structs in the package)")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: abilayout [options] [package]\n\nDefaults to the package in the current directory.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	pattern := "."
	if flag.NArg() > 0 {
		pattern = flag.Arg(0)
	}
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports |
			packages.NeedDeps | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		fatalf("failed to load package: %v", err)
	}
	if len(pkgs) != 1 {
		fatalf("failed to load package: %d packages found", len(pkgs))
	}
	if len(pkgs[0].Errors) > 0 {
		fatalf("failed to load package: %v", pkgs[0].Errors[0])
	}
	var names []string
	if *typeFlag != "" {
		names = strings.Split(*typeFlag, ",")
	}
	layouts, err := parsePackage(pkgs[0].Types, names)
	if err != nil {
		fatalf("failed to derive layouts: %v", err)
	}
	for _, layout := range layouts {
		fmt.Printf("%s: %s\n", layout.name, layout.layout)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
