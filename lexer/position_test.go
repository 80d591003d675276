// SPDX-License-Identifier: MIT
package lexer

import (
	"reflect"
	"testing"
)

func TestPosition_Advance(t *testing.T) {
	type fields struct {
		index, line, column int
	}

	tests := []struct {
		name  string
		chars []Char
		want  fields
	}{
		{
			name:  "first advance",
			chars: []Char{None},
			want:  fields{0, 0, 0},
		},
		{
			name:  "same line",
			chars: []Char{None, Some('1'), Some('+')},
			want:  fields{2, 0, 2},
		},
		{
			name:  "past a newline",
			chars: []Char{None, Some('1'), Some('\n')},
			want:  fields{2, 1, 0},
		},
		{
			name:  "after a newline",
			chars: []Char{None, Some('\n'), Some('2'), Some('3')},
			want:  fields{3, 1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPosition("f", "")
			for _, c := range tt.chars {
				if got := p.Advance(c); got != p {
					t.Fatalf("Position.Advance() = %p, want the receiver %p", got, p)
				}
			}

			got := fields{p.Index, p.Line, p.Column}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Position.Advance() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPosition_Copy(t *testing.T) {
	p := NewPosition("f", "1+2")
	p.Advance(None)

	snapshot := p.Copy()
	p.Advance(Some('1')).Advance(Some('+'))

	want := Position{Index: 0, Column: 0, Filename: "f", Text: "1+2"}
	if !reflect.DeepEqual(snapshot, want) {
		t.Errorf("Position.Copy() = %+v, want %+v", snapshot, want)
	}
	if p.Index != 2 {
		t.Errorf("Position.Index = %d, want 2", p.Index)
	}
}

func TestPosition_String(t *testing.T) {
	p := Position{Index: 4, Line: 1, Column: 2, Filename: "expr.txt"}
	if got, want := p.String(), "expr.txt:2:3"; got != want {
		t.Errorf("Position.String() = %q, want %q", got, want)
	}
}

func TestChar(t *testing.T) {
	if None.Present() {
		t.Error("None.Present() = true")
	}
	if None.Is(0) {
		t.Error("None.Is(0) = true")
	}

	c := Some('7')
	if b, ok := c.Byte(); !ok || b != '7' {
		t.Errorf("Char.Byte() = %q, %v", b, ok)
	}
	if !c.Is('7') || c.Is('8') {
		t.Errorf("Char.Is() mismatch for %+v", c)
	}
}
