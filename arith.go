// SPDX-License-Identifier: MIT

// Package arith drives the lexer of a small arithmetic expression language.
package arith

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/arith/lexer"
)

type (
	// Config defines configuration options for the package's drivers.
	Config struct {
		// Logger for driver & lexer messages.
		//
		// Preferring a public field to allow for sharing.
		Logger  logrus.FieldLogger
		Debug   bool
		Workers int
	}

	// Source is a named text to lex.
	Source struct {
		Filename string
		Text     string
	}

	// Result holds the outcome of lexing a Source.
	//
	// Only one of Tokens & Err is populated.
	Result struct {
		Source Source
		Tokens lexer.Tokens
		Err    error
	}
)

// Driver errors.
var (
	ErrReadSource = errors.New("failed to read source")
	ErrPool       = errors.New("worker pool failure")
	ErrPanicked   = errors.New("recovery from panic")
)

var defWorkers = runtime.NumCPU()

// DefConfig obtains the package's default [Config].
func DefConfig() *Config {
	return &Config{
		Logger:  logrus.New(),
		Workers: defWorkers,
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
	if c.Workers < 1 {
		c.Workers = defWorkers
	}
}

// Options obtains the lexer options matching the Config.
func (c *Config) Options() []lexer.Option {
	return []lexer.Option{lexer.WithLogger(c.Logger), lexer.WithDebug(c.Debug)}
}

// Failed reports whether lexing failed.
func (r Result) Failed() bool { return r.Err != nil }

// Run lexes text, filename only labels diagnostics.
func Run(ctx context.Context, filename, text string, opts ...lexer.Option) (tokens lexer.Tokens, err error) {
	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	default:
		return lexer.New(filename, text, opts...).MakeTokens()
	}
}

// LexAll lexes sources concurrently on a worker pool.
//
// Results are ordered as sources, err only reports failures of the pool itself.
func LexAll(ctx context.Context, cfg *Config, sources []Source) (results []Result, err error) {
	if cfg == nil {
		cfg = DefConfig()
	}
	cfg.Validate()

	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	default:
	}

	results = make([]Result, len(sources))
	if len(sources) < 1 {
		return
	}

	pool, err := ants.NewPool(cfg.Workers,
		ants.WithLogger(cfg.Logger),
		ants.WithPanicHandler(func(r interface{}) {
			cfg.Logger.Errorf("%v: %v", ErrPanicked, r)
		}),
	)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrPool, err)
		return
	}
	defer pool.Release()

	wg := new(sync.WaitGroup)
	for index := range sources {
		index := index
		results[index].Source = sources[index]

		wg.Add(1)
		if err = pool.Submit(func() {
			defer wg.Done()
			results[index] = lex(ctx, cfg, sources[index])
		}); err != nil {
			wg.Done()
			wg.Wait()
			err = fmt.Errorf("%w: %v", ErrPool, err)

			return
		}
	}
	wg.Wait()

	if cfg.Debug {
		cfg.Logger.Debugf("lexed %d sources: %s", len(results), spew.Sprint(results))
	}

	return
}

// ReadSources loads files as Sources.
func ReadSources(paths ...string) (sources []Source, err error) {
	sources = make([]Source, 0, len(paths))

	for _, path := range paths {
		var src Source
		if src, err = readSource(path); err != nil {
			return
		}
		sources = append(sources, src)
	}

	return
}

func readSource(path string) (src Source, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("%w (%s): %v", ErrReadSource, path, err)
		return
	}

	// Newlines are not whitespace to the lexer; tolerate the terminator most editors append.
	text := strings.TrimSuffix(string(data), "\n")
	text = strings.TrimSuffix(text, "\r")

	return Source{Filename: path, Text: text}, nil
}

func lex(ctx context.Context, cfg *Config, src Source) Result {
	tokens, err := Run(ctx, src.Filename, src.Text, cfg.Options()...)
	if err != nil {
		cfg.Logger.WithField("file", src.Filename).Debug("lex failed")
	}

	return Result{Source: src, Tokens: tokens, Err: err}
}
