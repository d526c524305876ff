// abidec: Ethereum ABI calldata decoder and annotator
// Copyright 2026 abidec Authors
// SPDX-License-Identifier: BSD-3-Clause

// abidump reads an ABI encoded calldata dump and prints one annotated line
// per 32-byte word, driven by a caller supplied type layout. The input may
// be raw binary, hexadecimal text and/or snappy compressed (dump archives
// are commonly stored compressed).
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gluwa/abidec"
	"github.com/golang/snappy"
)

var (
	layoutFlag = flag.String("layout", "", "Comma separated type layout driving the walk")
	hexFlag    = flag.Bool("hex", false, "Treat the input as hexadecimal text instead of raw binary")
	snapFlag   = flag.Bool("snappy", false, "Decompress the input with snappy before decoding")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: abidump [options] [dumpfile]\n\nReads from stdin if no dump file is given.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	input := io.Reader(os.Stdin)
	if flag.NArg() > 0 {
		file, err := os.Open(flag.Arg(0))
		if err != nil {
			fatalf("failed to open dump: %v", err)
		}
		defer file.Close()
		input = file
	}
	blob, err := io.ReadAll(input)
	if err != nil {
		fatalf("failed to read dump: %v", err)
	}
	if *snapFlag {
		if blob, err = snappy.Decode(nil, blob); err != nil {
			fatalf("failed to decompress dump: %v", err)
		}
	}
	if *hexFlag {
		cleaned := strings.Map(dropSpace, string(blob))
		cleaned = strings.TrimPrefix(cleaned, "0x")
		if blob, err = hex.DecodeString(cleaned); err != nil {
			fatalf("failed to parse hex dump: %v", err)
		}
	}
	chunks, err := abidec.Decode(blob, *layoutFlag)
	if err != nil {
		fatalf("failed to decode dump: %v", err)
	}
	for _, chunk := range chunks {
		var flags string
		if chunk.Dynamic {
			flags += " dynamic"
		}
		if chunk.Offset {
			flags += " offset"
		}
		fmt.Printf("%4d  %s  %-12s %s%s\n", chunk.Index, chunk.Word.Hex(), chunk.Kind, chunk.Label, flags)
	}
}

// dropSpace maps whitespace to rune deletion for hex input cleaning.
func dropSpace(r rune) rune {
	switch r {
	case ' ', '\t', '\r', '\n':
		return -1
	}
	return r
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
