package lattice

import (
	"testing"
)

func TestBuffer_SetCellDepth(t *testing.T) {
	tests := map[string]struct {
		writes   []Cell
		wantRune rune
	}{
		"higher depth wins within layer": {
			writes: []Cell{
				{Rune: 'a', Layer: 1, Depth: 5},
				{Rune: 'b', Layer: 1, Depth: 2},
			},
			wantRune: 'a',
		},
		"equal depth latest wins": {
			writes: []Cell{
				{Rune: 'a', Layer: 1, Depth: 3},
				{Rune: 'b', Layer: 1, Depth: 3},
			},
			wantRune: 'b',
		},
		"higher depth replaces lower": {
			writes: []Cell{
				{Rune: 'a', Layer: 1, Depth: 1},
				{Rune: 'b', Layer: 1, Depth: 4},
			},
			wantRune: 'b',
		},
		"different layer always lands": {
			writes: []Cell{
				{Rune: 'a', Layer: 2, Depth: 9},
				{Rune: 'b', Layer: 3, Depth: -5},
			},
			wantRune: 'b',
		},
		"negative depth within layer dropped": {
			writes: []Cell{
				{Rune: 'a', Layer: 1, Depth: 0},
				{Rune: 'b', Layer: 1, Depth: -1},
			},
			wantRune: 'a',
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewBuffer(4, 1)
			for _, c := range tc.writes {
				buf.SetCell(1, 0, c)
			}
			if got := buf.Cell(1, 0).Rune; got != tc.wantRune {
				t.Errorf("Cell(1, 0).Rune = %q, want %q", got, tc.wantRune)
			}
		})
	}
}

func TestBuffer_SetCellOutOfBounds(t *testing.T) {
	buf := NewBuffer(3, 2)
	buf.SetCell(-1, 0, NewCell('x', NewStyle()))
	buf.SetCell(3, 0, NewCell('x', NewStyle()))
	buf.SetCell(0, -1, NewCell('x', NewStyle()))
	buf.SetCell(0, 2, NewCell('x', NewStyle()))

	if got := buf.StringTrimmed(); got != "\n" {
		t.Errorf("StringTrimmed() = %q, want empty rows", got)
	}
}

func TestBuffer_WideChar(t *testing.T) {
	buf := NewBuffer(5, 1)
	buf.SetRune(1, 0, '世', NewStyle())

	if got := buf.Cell(1, 0).Width; got != 2 {
		t.Errorf("Cell(1, 0).Width = %d, want 2", got)
	}
	if !buf.Cell(2, 0).IsContinuation() {
		t.Error("Cell(2, 0).IsContinuation() = false, want true")
	}
	if got := buf.Line(0); got != " 世" {
		t.Errorf("Line(0) = %q, want %q", got, " 世")
	}
}

func TestBuffer_WideCharTearing(t *testing.T) {
	tests := map[string]struct {
		overwriteX int
		want       string
	}{
		"overwrite primary clears continuation": {overwriteX: 1, want: " x"},
		"overwrite continuation clears primary": {overwriteX: 2, want: "  x"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewBuffer(5, 1)
			buf.SetRune(1, 0, '世', NewStyle())
			buf.SetRune(tc.overwriteX, 0, 'x', NewStyle())

			if got := buf.Line(0); got != tc.want {
				t.Errorf("Line(0) = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBuffer_WideCharBlockedContinuation(t *testing.T) {
	buf := NewBuffer(5, 1)
	buf.SetCell(2, 0, Cell{Rune: 'X', Width: 1, Layer: 1, Depth: 5})

	// The continuation column is held by a higher-depth cell of the same
	// layer, so the wide char degrades to a space instead of tearing it.
	buf.SetCell(1, 0, Cell{Rune: '世', Width: 2, Layer: 1, Depth: 0})
	if got := buf.Cell(2, 0).Rune; got != 'X' {
		t.Errorf("Cell(2, 0).Rune = %q, want untouched 'X'", got)
	}
	if got := buf.Cell(1, 0); got.Rune != ' ' || got.Width != 1 {
		t.Errorf("Cell(1, 0) = %+v, want degraded narrow space", got)
	}

	// From another layer the wide write still lands whole.
	buf.SetCell(1, 0, Cell{Rune: '世', Width: 2, Layer: 2, Depth: 0})
	if got := buf.Cell(1, 0).Rune; got != '世' {
		t.Errorf("Cell(1, 0).Rune = %q, want wide char", got)
	}
	if !buf.Cell(2, 0).IsContinuation() {
		t.Error("Cell(2, 0).IsContinuation() = false, want continuation")
	}
}

func TestBuffer_WideCharLastColumn(t *testing.T) {
	buf := NewBuffer(3, 1)
	buf.SetRune(2, 0, '世', NewStyle())

	if got := buf.Cell(2, 0).Rune; got != ' ' {
		t.Errorf("Cell(2, 0).Rune = %q, want space", got)
	}
}

func TestBuffer_SetText(t *testing.T) {
	tests := map[string]struct {
		x, y  int
		text  string
		clip  Rect
		want  string
		width int
	}{
		"unclipped": {
			x: 0, y: 0, text: "hello",
			clip:  NewRect(0, 0, 10, 1),
			want:  "hello",
			width: 5,
		},
		"clipped right": {
			x: 0, y: 0, text: "hello",
			clip:  NewRect(0, 0, 3, 1),
			want:  "hel",
			width: 3,
		},
		"clipped left": {
			x: 0, y: 0, text: "hello",
			clip:  NewRect(2, 0, 8, 1),
			want:  "  llo",
			width: 3,
		},
		"row outside clip": {
			x: 0, y: 0, text: "hello",
			clip:  NewRect(0, 1, 10, 1),
			want:  "",
			width: 0,
		},
		"wide char not split at clip edge": {
			x: 0, y: 0, text: "a世b",
			clip:  NewRect(0, 0, 2, 1),
			want:  "a",
			width: 1,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewBuffer(10, 2)
			got := buf.SetText(tc.x, tc.y, tc.text, NewCell(' ', NewStyle()), tc.clip)
			if got != tc.width {
				t.Errorf("SetText() = %d, want %d", got, tc.width)
			}
			if line := buf.Line(tc.y); line != tc.want {
				t.Errorf("Line(%d) = %q, want %q", tc.y, line, tc.want)
			}
		})
	}
}

func TestBuffer_Diff(t *testing.T) {
	buf := NewBuffer(4, 2)
	buf.SetRune(1, 0, 'a', NewStyle())
	buf.SetRune(3, 1, 'b', NewStyle())

	changes := buf.Diff()
	if len(changes) != 2 {
		t.Fatalf("len(Diff()) = %d, want 2", len(changes))
	}
	if changes[0].X != 1 || changes[0].Y != 0 || changes[0].Cell.Rune != 'a' {
		t.Errorf("changes[0] = %+v, want 'a' at (1, 0)", changes[0])
	}
	if changes[1].X != 3 || changes[1].Y != 1 || changes[1].Cell.Rune != 'b' {
		t.Errorf("changes[1] = %+v, want 'b' at (3, 1)", changes[1])
	}

	buf.Swap()
	if got := len(buf.Diff()); got != 0 {
		t.Errorf("len(Diff()) after Swap = %d, want 0", got)
	}
}

func TestBuffer_DiffIgnoresOwnership(t *testing.T) {
	buf := NewBuffer(2, 1)
	buf.SetCell(0, 0, Cell{Rune: 'a', Width: 1, Layer: 1, Node: 7, Depth: 2})
	buf.Swap()

	// Same glyph written by a different node at a different depth is not a
	// visible change.
	buf.SetCell(0, 0, Cell{Rune: 'a', Width: 1, Layer: 1, Node: 9, Depth: 5})
	if got := len(buf.Diff()); got != 0 {
		t.Errorf("len(Diff()) = %d, want 0", got)
	}
}

func TestBuffer_ClearResetsDepth(t *testing.T) {
	buf := NewBuffer(2, 1)
	buf.SetCell(0, 0, Cell{Rune: 'a', Width: 1, Depth: 10})
	buf.Clear()

	// After Clear a depth-0 write must land again.
	buf.SetCell(0, 0, Cell{Rune: 'b', Width: 1, Depth: 0})
	if got := buf.Cell(0, 0).Rune; got != 'b' {
		t.Errorf("Cell(0, 0).Rune = %q, want 'b'", got)
	}
}

func TestBuffer_Resize(t *testing.T) {
	buf := NewBuffer(4, 2)
	buf.SetString(0, 0, "abcd", NewStyle())
	buf.SetString(0, 1, "efgh", NewStyle())

	buf.Resize(2, 3)
	if w, h := buf.Size(); w != 2 || h != 3 {
		t.Fatalf("Size() = (%d, %d), want (2, 3)", w, h)
	}
	if got := buf.StringTrimmed(); got != "ab\nef\n" {
		t.Errorf("StringTrimmed() = %q, want %q", got, "ab\nef\n")
	}
}

func TestBuffer_Fill(t *testing.T) {
	buf := NewBuffer(5, 3)
	buf.Fill(NewRect(1, 1, 3, 2), '#', NewStyle())

	want := "\n ###\n ###"
	if got := buf.StringTrimmed(); got != want {
		t.Errorf("StringTrimmed() = %q, want %q", got, want)
	}
}
