package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/go-logr/logr"

	"genesis/pkg/compiler"
	"genesis/pkg/intern"
	"genesis/pkg/utils"
)

var errQuit = errors.New("quit")

// session lexes one input line at a time. All lines share a single string
// table, so a name typed twice keeps its handle.
type session struct {
	lexer *compiler.Lexer
	names *intern.Interner
	kw    compiler.Keywords
	out   io.Writer
	log   logr.Logger
}

func newSession(out io.Writer, logger logr.Logger, opts ...compiler.Option) (*session, error) {
	names := intern.New(intern.WithIndex(), intern.WithLogger(logger))
	kw, err := compiler.InternKeywords(names)
	if err != nil {
		return nil, err
	}
	opts = append(opts, compiler.WithLogger(logger))
	return &session{
		lexer: compiler.NewLexer(nil, names, opts...),
		names: names,
		kw:    kw,
		out:   out,
		log:   logger.WithName("console"),
	}, nil
}

// handle runs a console command or lexes line. It returns errQuit on ":quit".
func (s *session) handle(line string) error {
	switch strings.TrimSpace(line) {
	case ":quit", ":q":
		return errQuit
	case ":names":
		for h, e := range s.names.Entries() {
			fmt.Fprintf(s.out, "#%-4d %s\n", h, e.Content)
		}
		return nil
	case ":count":
		fmt.Fprintf(s.out, "%d names\n", s.names.Count())
		return nil
	}

	s.lexer.Reset([]byte(line))
	for tok, err := range s.lexer.All() {
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			return nil
		}
		if tok.Type == compiler.EOF {
			break
		}
		mark := ""
		if s.kw.Is(tok) {
			mark = " (keyword)"
		}
		fmt.Fprintf(s.out, "  %-10s %s%s\n", tok.Type, compiler.Lexeme(tok, s.names), mark)
	}
	s.log.V(1).Info("line lexed", "bytes", len(line), "names", s.names.Count())
	return nil
}

func (s *session) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(s.out, "> ")
	for scanner.Scan() {
		if err := s.handle(scanner.Text()); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
		fmt.Fprint(s.out, "> ")
	}
	return scanner.Err()
}

func main() {
	skipSpace := flag.Bool("skip-ws", true, "discard whitespace instead of emitting it as tokens")
	verbosity := flag.Int("v", 0, "log verbosity")
	flag.Parse()

	logger := utils.NewLogger(*verbosity)

	var opts []compiler.Option
	if *skipSpace {
		opts = append(opts, compiler.WithSkipWhitespace())
	}

	s, err := newSession(os.Stdout, logger, opts...)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	// An optional file seeds the string table before the prompt opens.
	if flag.NArg() > 0 {
		src, fullPath, err := utils.LoadSource(flag.Arg(0))
		if err != nil {
			log.Fatalf("Failed to read source file: %v", err)
		}
		if _, err := compiler.Tokenize(src, s.names, opts...); err != nil {
			log.Fatalf("Lexing %s failed: %v", fullPath, err)
		}
		fmt.Printf("loaded %s: %d names\n", fullPath, s.names.Count())
	}

	if err := s.run(os.Stdin); err != nil {
		log.Fatalf("Console failed: %v", err)
	}
}
