//go:build !js

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"genesis/pkg/compiler"
	"genesis/pkg/intern"
	"genesis/pkg/utils"
)

func main() {
	inPath := flag.String("in", "", "input source file path")
	outPath := flag.String("out", "", "token dump path (default: stdout, or input with .tok extension when -write is set)")
	write := flag.Bool("write", false, "write the dump next to the input file")
	skipSpace := flag.Bool("skip-ws", false, "discard whitespace instead of emitting it as tokens")
	wrap := flag.Bool("wrap-overflow", false, "let oversized integer literals wrap modulo 2^64")
	indexed := flag.Bool("index", false, "use a hash index in the string table")
	maxTokens := flag.Int("max-tokens", 0, "fail after this many tokens (0 = unlimited)")
	showNames := flag.Bool("names", false, "print the string table after the tokens")
	verbosity := flag.Int("v", 0, "log verbosity")
	flag.Parse()

	logger := utils.NewLogger(*verbosity).WithName("genesis")

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "nothing to do: provide -in <file>")
		flag.Usage()
		os.Exit(2)
	}

	src, fullPath, err := utils.LoadSource(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read input file %q: %v\n", *inPath, err)
		os.Exit(1)
	}

	internOpts := []intern.Option{intern.WithLogger(logger)}
	if *indexed {
		internOpts = append(internOpts, intern.WithIndex())
	}
	names := intern.New(internOpts...)
	kw, err := compiler.InternKeywords(names)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to intern keywords: %v\n", err)
		os.Exit(1)
	}

	lexOpts := []compiler.Option{compiler.WithLogger(logger), compiler.WithMaxTokens(*maxTokens)}
	if *skipSpace {
		lexOpts = append(lexOpts, compiler.WithSkipWhitespace())
	}
	if *wrap {
		lexOpts = append(lexOpts, compiler.WithWrapOverflow())
	}

	tokens, err := compiler.Tokenize(src, names, lexOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexing %s failed: %v\n", fullPath, err)
		os.Exit(1)
	}

	output := *outPath
	if output == "" && *write {
		output = defaultOutputPath(*inPath)
	}

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create %q: %v\n", output, err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	bw := bufio.NewWriter(w)
	if err := dumpTokens(bw, tokens.Slice(), names, kw); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write tokens: %v\n", err)
		os.Exit(1)
	}
	if *showNames {
		if err := dumpNames(bw, names); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write names: %v\n", err)
			os.Exit(1)
		}
	}
	if err := bw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write tokens: %v\n", err)
		os.Exit(1)
	}

	if output != "" {
		fmt.Printf("lexed %d tokens, %d names -> %s\n", tokens.Len(), names.Count(), output)
	}
}

func defaultOutputPath(inPath string) string {
	ext := filepath.Ext(inPath)
	if ext == "" {
		return inPath + ".tok"
	}
	return strings.TrimSuffix(inPath, ext) + ".tok"
}

// dumpTokens writes one line per token. Keyword identifiers are marked with '*'.
func dumpTokens(w io.Writer, tokens []compiler.Token, names *intern.Interner, kw compiler.Keywords) error {
	for _, tok := range tokens {
		mark := ""
		if kw.Is(tok) {
			mark = "*"
		}
		if _, err := fmt.Fprintf(w, "%s  %s%s\n", tok, compiler.Lexeme(tok, names), mark); err != nil {
			return err
		}
	}
	return nil
}

func dumpNames(w io.Writer, names *intern.Interner) error {
	for h, e := range names.Entries() {
		if _, err := fmt.Fprintf(w, "#%-4d %3d  %s\n", h, e.Length, e.Content); err != nil {
			return err
		}
	}
	return nil
}
