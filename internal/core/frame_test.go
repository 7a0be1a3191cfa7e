package core

import (
	"strings"
	"testing"
)

func TestNewFrame(t *testing.T) {
	f := NewFrame()

	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if !f.Get(x, y).Empty() {
				t.Errorf("New frame should be empty, got %q at (%d, %d)", f.Get(x, y).Glyph, x, y)
			}
		}
	}
	if f.Count() != 0 {
		t.Errorf("Count() = %d, expected 0", f.Count())
	}
}

func TestFrameSetGet(t *testing.T) {
	f := NewFrame()

	f.SetGlyph(5, 5, 'X', ColorRed)
	got := f.Get(5, 5)
	if got.Glyph != 'X' || got.Color != ColorRed {
		t.Errorf("Get(5, 5) = %+v, expected X/red", got)
	}

	// Out of bounds should be silent
	f.SetGlyph(-1, 0, 'A', ColorDefault)
	f.SetGlyph(Cols, 0, 'A', ColorDefault)
	f.SetGlyph(0, -1, 'A', ColorDefault)
	f.SetGlyph(0, Rows, 'A', ColorDefault)

	if f.Count() != 1 {
		t.Errorf("Off-grid writes should be no-ops, Count() = %d", f.Count())
	}
	if !f.Get(-1, 0).Empty() || !f.Get(Cols, 0).Empty() {
		t.Error("Out of bounds Get should return the empty cell")
	}
}

func TestFrameValueSemantics(t *testing.T) {
	a := NewFrame()
	a.SetGlyph(1, 1, 'A', ColorGreen)

	b := a // copy
	if a != b {
		t.Fatal("Copied frames should compare equal")
	}

	b.SetGlyph(2, 2, 'B', ColorGreen)
	if a == b {
		t.Error("Frames differing in one cell should not compare equal")
	}
	if !a.Get(2, 2).Empty() {
		t.Error("Writing to a copy must not change the original")
	}
}

func TestFrameDrawText(t *testing.T) {
	f := NewFrame()
	f.DrawText(2, 1, "Hello", ColorWhite)

	for i, ch := range "Hello" {
		if f.Get(2+i, 1).Glyph != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, f.Get(2+i, 1).Glyph)
		}
	}

	// Text should be clipped at the right edge
	f.DrawText(Cols-2, 0, "Hello", ColorWhite)
	if f.Get(Cols-2, 0).Glyph != 'H' || f.Get(Cols-1, 0).Glyph != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestFrameString(t *testing.T) {
	f := NewFrame()
	f.DrawText(0, 0, "AB", ColorDefault)

	lines := strings.Split(f.String(), "\n")
	if len(lines) != Rows {
		t.Fatalf("String() has %d lines, expected %d", len(lines), Rows)
	}
	if !strings.HasPrefix(lines[0], "AB ") {
		t.Errorf("First line = %q, expected prefix %q", lines[0], "AB ")
	}
	if len(lines[1]) != Cols {
		t.Errorf("Line length = %d, expected %d", len(lines[1]), Cols)
	}
}

type mark struct {
	x, y  int
	glyph rune
}

func (m mark) Draw(dst *Frame) {
	dst.SetGlyph(m.x, m.y, m.glyph, ColorDefault)
}

func TestDrawAllLastWins(t *testing.T) {
	f := NewFrame()
	DrawAll(&f, mark{3, 3, 'A'}, mark{3, 3, 'B'}, mark{-4, 3, 'C'})

	if got := f.Get(3, 3).Glyph; got != 'B' {
		t.Errorf("Overlapping draw should keep the last glyph, got %q", got)
	}
	if f.Count() != 1 {
		t.Errorf("Count() = %d, expected 1", f.Count())
	}
}
