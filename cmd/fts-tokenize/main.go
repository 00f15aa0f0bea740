package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"

	"github.com/k0kubun/fts-tokenize/tokenizer"
	"github.com/k0kubun/fts-tokenize/util"
)

var version string

type options struct {
	Algorithm string `long:"algorithm" description:"Word-boundary algorithm (simple or tr29)" value-name:"name" default:"simple"`
	MaxLen    uint   `long:"maxlen" description:"Maximum token length in bytes" value-name:"n" default:"30"`
	File      string `long:"file" description:"Read input from the file, rather than stdin" value-name:"path" default:"-"`
	Debug     bool   `long:"debug" description:"Pretty-print each token alongside its raw bytes"`
	Version   bool   `long:"version" description:"Show this version"`
}

func parseOptions(args []string) *options {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[options]"
	if _, err := parser.ParseArgs(args); err != nil {
		os.Exit(1)
	}
	return &opts
}

func main() {
	util.InitSlog()

	opts := parseOptions(os.Args[1:])
	if opts.Version {
		fmt.Println(version)
		return
	}

	tok, err := tokenizer.New("algorithm", opts.Algorithm, "maxlen", fmt.Sprint(opts.MaxLen))
	if err != nil {
		log.Fatal(err)
	}

	var in io.Reader = os.Stdin
	switch {
	case opts.File != "-" && opts.File != "":
		f, err := os.Open(opts.File)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	case term.IsTerminal(int(os.Stdin.Fd())):
		slog.Debug("reading from an interactive terminal, press ctrl-d to flush")
	}

	if err := run(tok, in, os.Stdout, opts.Debug); err != nil {
		log.Fatal(err)
	}
}

// run drives tok over everything bufio.Scanner can read from r,
// writing one token per line to w (or, in debug mode, a pp-formatted
// dump of each token's bytes).
func run(tok *tokenizer.Tokenizer, r io.Reader, w io.Writer, debug bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(tok.SplitFunc())

	printer := pp.New()
	printer.SetOutput(w)

	n := 0
	for scanner.Scan() {
		n++
		token := scanner.Bytes()
		if debug {
			printer.Println(map[string]any{
				"n":     n,
				"token": string(token),
				"bytes": token,
			})
			continue
		}
		if _, err := fmt.Fprintln(w, string(token)); err != nil {
			return err
		}
	}
	return scanner.Err()
}
