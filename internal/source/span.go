package source

import "fmt"

// Span is a half-open [Start, End) range of column offsets within a single
// source line. Columns are zero-based and reset at every newline, so a span
// is only meaningful together with the line number it belongs to (see Loc).
type Span struct {
	Start uint32
	End   uint32
}

// NewSpan constructs a span; End below Start is clamped to an empty span.
func NewSpan(start, end uint32) Span {
	if end < start {
		end = start
	}
	return Span{Start: start, End: end}
}

// Empty reports whether the span highlights nothing.
func (s Span) Empty() bool {
	return s.End <= s.Start
}

// Len returns the number of columns covered.
func (s Span) Len() uint32 {
	if s.Empty() {
		return 0
	}
	return s.End - s.Start
}

// Cover returns the smallest span containing both s and other.
// Empty operands do not widen the result.
func (s Span) Cover(other Span) Span {
	if s.Empty() {
		return other
	}
	if other.Empty() {
		return s
	}
	out := s
	if other.Start < out.Start {
		out.Start = other.Start
	}
	if other.End > out.End {
		out.End = other.End
	}
	return out
}

// ShiftRight translates the span n columns to the right. Used when tokens
// scanned from an embedded fragment are mapped back onto the enclosing line.
func (s Span) ShiftRight(n uint32) Span {
	return Span{Start: s.Start + n, End: s.End + n}
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Loc pins a span to its line. Lines are one-based.
type Loc struct {
	Line uint32
	Span Span
}

func (l Loc) String() string {
	return fmt.Sprintf("%d:%s", l.Line, l.Span)
}
