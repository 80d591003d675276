// SPDX-License-Identifier: MIT

// Command arithlex lexes arithmetic expressions from an interactive shell or from files.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/arith"
	"gitlab.com/fisherprime/arith/lexer"
)

const (
	prompt        = "basic > "
	shellFilename = "<stdin>"
)

type options struct {
	debug   bool
	dump    bool
	watch   bool
	workers int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options

	fs := flag.NewFlagSet("arithlex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	fs.BoolVar(&opts.dump, "dump", false, "dump the lexed tokens")
	fs.BoolVar(&opts.watch, "watch", false, "lex the file argument whenever it changes")
	fs.IntVar(&opts.workers, "workers", 0, "concurrent lexers for file arguments (default: CPU count)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: arithlex [flags] [file ...]\n\nWithout files, expressions are read from stdin.\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	if opts.debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg := &arith.Config{Logger: logger, Debug: opts.debug, Workers: opts.workers}
	cfg.Validate()

	p := printer{out: stdout, dump: opts.dump}

	switch {
	case opts.watch:
		if fs.NArg() != 1 {
			fmt.Fprintln(stderr, "arithlex: -watch takes exactly one file")
			return 2
		}

		err := arith.Watch(ctx, cfg, fs.Arg(0), func(r arith.Result) { p.result(r) })
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.WithError(err).Error("watch stopped")
			return 1
		}

		return 0
	case fs.NArg() > 0:
		return lexFiles(ctx, cfg, p, fs.Args())
	default:
		return shell(ctx, cfg, p, stdin)
	}
}

func lexFiles(ctx context.Context, cfg *arith.Config, p printer, paths []string) int {
	sources, err := arith.ReadSources(paths...)
	if err != nil {
		cfg.Logger.WithError(err).Error("read failed")
		return 1
	}

	results, err := arith.LexAll(ctx, cfg, sources)
	if err != nil {
		cfg.Logger.WithError(err).Error("lex failed")
		return 1
	}

	status := 0
	for _, r := range results {
		if !p.result(r) {
			status = 1
		}
	}

	return status
}

// shell lexes stdin line by line until EOF.
func shell(ctx context.Context, cfg *arith.Config, p printer, stdin io.Reader) int {
	scanner := bufio.NewScanner(stdin)

	for {
		fmt.Fprint(p.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(p.out)
			break
		}

		tokens, err := arith.Run(ctx, shellFilename, scanner.Text(), cfg.Options()...)
		if errors.Is(err, context.Canceled) {
			return 0
		}
		p.tokens(tokens, err)
	}

	if err := scanner.Err(); err != nil {
		cfg.Logger.WithError(err).Error("stdin read failed")
		return 1
	}

	return 0
}

type printer struct {
	out  io.Writer
	dump bool
}

// result prints a file's Result, reporting success.
func (p printer) result(r arith.Result) bool {
	fmt.Fprintf(p.out, "%s: ", r.Source.Filename)
	return p.tokens(r.Tokens, r.Err)
}

func (p printer) tokens(tokens lexer.Tokens, err error) bool {
	if err != nil {
		fmt.Fprintln(p.out, err)
		return false
	}

	fmt.Fprintln(p.out, tokens)
	if p.dump {
		spew.Fdump(p.out, tokens)
	}

	return true
}
