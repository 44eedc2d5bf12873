// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Program charpos prints the characters of text files along with the line and
// column at which each one occurs. It is a debugging aid for lexer authors.
package main

import (
	"bufio"
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar"
	"github.com/golang/glog"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/sync/errgroup"
)

const (
	stdinArg   = "-"
	usageWidth = 80
)

const description = `charpos reads each input and prints every character with the position it occupies, as line:column with both counted from 1. Only '\n' starts a new line; '\r' is an ordinary character. Inputs are file paths or doublestar glob patterns such as "testdata/**/*.txt". With no inputs, or with the input "-", standard input is read.`

var cfg = registerFlags(flag.CommandLine)

type config struct {
	format       string
	documentName string
}

func registerFlags(fs *flag.FlagSet) *config {
	cfg := &config{}
	fs.StringVar(&cfg.format, "format", "text", "output format: text, json-lines or summary")
	fs.StringVar(&cfg.documentName, "document_name", "<stdin>", "name printed for standard input")
	return cfg
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [flags] [input ...]\n\n", os.Args[0])
	fmt.Fprintf(out, "%s\n\n", wordwrap.WrapString(description, usageWidth))
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	err := run(context.Background(), cfg, flag.Args(), os.Stdin, os.Stdout)
	glog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal charpos error: %v\n", err)
		os.Exit(1)
	}
}

// input is a single document to scan.
type input struct {
	path string // stdinArg for standard input
	name string // printed in the output
}

func run(ctx context.Context, cfg *config, args []string, stdin io.Reader, stdout io.Writer) error {
	f, err := parseFormat(cfg.format)
	if err != nil {
		return err
	}
	inputs, err := expandInputs(args, cfg.documentName)
	if err != nil {
		return err
	}

	outputs := make([]bytes.Buffer, len(inputs))
	eg, ctx := errgroup.WithContext(ctx)
	for i, in := range inputs {
		i, in := i, in
		eg.Go(func() error {
			return scanInput(ctx, in, stdin, f, &outputs[i])
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	for i := range outputs {
		if _, err := outputs[i].WriteTo(stdout); err != nil {
			return fmt.Errorf("error writing output for %s: %w", inputs[i].name, err)
		}
	}
	return nil
}

// expandInputs turns command line arguments into the list of documents to
// scan, expanding glob patterns. Matches of a single pattern are sorted.
func expandInputs(args []string, stdinName string) ([]input, error) {
	if len(args) == 0 {
		args = []string{stdinArg}
	}
	var inputs []input
	sawStdin := false
	for _, arg := range args {
		switch {
		case arg == stdinArg:
			if sawStdin {
				return nil, fmt.Errorf("standard input may only be given once")
			}
			sawStdin = true
			inputs = append(inputs, input{stdinArg, stdinName})
		case strings.ContainsAny(arg, "*?[{"):
			matches, err := doublestar.Glob(arg)
			if err != nil {
				return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("pattern %q matched no files", arg)
			}
			sort.Strings(matches)
			glog.V(1).Infof("pattern %q matched %d files", arg, len(matches))
			for _, m := range matches {
				inputs = append(inputs, input{m, m})
			}
		default:
			inputs = append(inputs, input{arg, arg})
		}
	}
	return inputs, nil
}

func scanInput(ctx context.Context, in input, stdin io.Reader, f format, w io.Writer) error {
	var r io.Reader = stdin
	if in.path != stdinArg {
		file, err := os.Open(in.path)
		if err != nil {
			return err
		}
		defer file.Close()
		r = file
	}
	if err := f.write(ctx, in.name, bufio.NewReader(r), w); err != nil {
		return fmt.Errorf("error scanning %s: %w", in.name, err)
	}
	glog.Infof("finished scanning %s", in.name)
	return nil
}
