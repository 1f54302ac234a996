package source

import "testing"

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{"disjoint", NewSpan(2, 4), NewSpan(8, 10), Span{2, 10}},
		{"nested", NewSpan(2, 10), NewSpan(4, 6), Span{2, 10}},
		{"empty right", NewSpan(2, 4), Span{}, Span{2, 4}},
		{"empty left", Span{}, NewSpan(5, 7), Span{5, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Errorf("Cover(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSpanEmptyAndLen(t *testing.T) {
	if !NewSpan(3, 3).Empty() {
		t.Error("zero-length span must be empty")
	}
	if NewSpan(5, 2).Len() != 0 {
		t.Error("clamped span must have zero length")
	}
	if got := NewSpan(3, 8).Len(); got != 5 {
		t.Errorf("Len = %d, want 5", got)
	}
}

func TestSpanShiftRight(t *testing.T) {
	sp := NewSpan(1, 5).ShiftRight(9)
	if sp != (Span{10, 14}) {
		t.Errorf("ShiftRight = %v, want [10,14)", sp)
	}
}

func TestFileLine(t *testing.T) {
	f := NewVirtual("test.sb", []byte("first\nsecond\r\nthird"))
	if got := f.Line(2); got != "second" {
		t.Errorf("Line(2) = %q, want %q", got, "second")
	}
	if got := f.NumLines(); got != 3 {
		t.Errorf("NumLines = %d, want 3", got)
	}
	if got := f.Line(9); got != "" {
		t.Errorf("out-of-range line = %q, want empty", got)
	}
}
