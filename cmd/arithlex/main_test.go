// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_shell(t *testing.T) {
	tests := []struct {
		name       string
		stdin      string
		wantOutput string
	}{
		{
			name:       "expressions",
			stdin:      "3 + 4 * 2\n(1 - 2)\n",
			wantOutput: "basic > [INT:3, PLUS, INT:4, MUL, INT:2]\nbasic > [LPAREN, INT:1, MINUS, INT:2, RPAREN]\nbasic > \n",
		},
		{
			name:       "illegal character",
			stdin:      "5 $ 3\n",
			wantOutput: "basic > Illegal Character: '$'\nFile <stdin>, line 1\nbasic > \n",
		},
		{
			name:       "empty line",
			stdin:      "\n",
			wantOutput: "basic > []\nbasic > \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			status := run(context.Background(), nil, strings.NewReader(tt.stdin), &stdout, &stderr)
			if status != 0 {
				t.Errorf("run() = %d, want 0; stderr: %s", status, stderr.String())
			}
			if got := stdout.String(); got != tt.wantOutput {
				t.Errorf("run() output = %q, want %q", got, tt.wantOutput)
			}
		})
	}
}

func TestRun_files(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	bad := filepath.Join(dir, "bad.txt")

	if err := os.WriteFile(good, []byte("3.14\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("1..2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if status := run(context.Background(), []string{good}, nil, &stdout, &stderr); status != 0 {
		t.Errorf("run() = %d, want 0; stderr: %s", status, stderr.String())
	}
	if got, want := stdout.String(), good+": [FLOAT:3.14]\n"; got != want {
		t.Errorf("run() output = %q, want %q", got, want)
	}

	stdout.Reset()
	if status := run(context.Background(), []string{"-workers", "2", good, bad}, nil, &stdout, &stderr); status != 1 {
		t.Errorf("run() = %d, want 1", status)
	}
	if got, want := stdout.String(), good+": [FLOAT:3.14]\n"+bad+": Illegal Character: '.'\nFile "+bad+", line 1\n"; got != want {
		t.Errorf("run() output = %q, want %q", got, want)
	}
}

func TestRun_dump(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if status := run(context.Background(), []string{"-dump"}, strings.NewReader("7\n"), &stdout, &stderr); status != 0 {
		t.Fatalf("run() = %d, want 0", status)
	}
	if !strings.Contains(stdout.String(), "lexer.Tokens") {
		t.Errorf("run() output lacks a dump: %q", stdout.String())
	}
}

func TestRun_flags(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if status := run(context.Background(), []string{"-watch"}, nil, &stdout, &stderr); status != 2 {
		t.Errorf("run() = %d, want 2", status)
	}
	if status := run(context.Background(), []string{"-nope"}, nil, &stdout, &stderr); status != 2 {
		t.Errorf("run() = %d, want 2", status)
	}
	if status := run(context.Background(), []string{"-h"}, nil, &stdout, &stderr); status != 0 {
		t.Errorf("run() = %d, want 0", status)
	}
}
