// Package location carries source positions through every syntactic and
// semantic object (§3).
package location

import "fmt"

// Position is a single point in a source file.
type Position struct {
	Line   int // 1-based
	Column int // 1-based, in runes
	Offset int // 0-based byte offset
}

// Location is the (filename, begin, end) triple every token, syntax node and
// symbol carries.
type Location struct {
	Filename string
	Begin    Position
	End      Position
}

// New builds a Location spanning [begin, end) in filename.
func New(filename string, begin, end Position) Location {
	return Location{Filename: filename, Begin: begin, End: end}
}

// Point builds a zero-width Location at p, used for synthesized nodes
// (e.g. an AutoType inheriting its neighbour's location).
func Point(filename string, p Position) Location {
	return Location{Filename: filename, Begin: p, End: p}
}

// Merge returns the smallest Location spanning both a and b. Used when a
// composite CST node's span is reconstructed from its first and last child.
func Merge(a, b Location) Location {
	begin, end := a.Begin, b.End
	if b.Begin.Offset < a.Begin.Offset {
		begin = b.Begin
	}
	if a.End.Offset > end.Offset {
		end = a.End
	}
	return Location{Filename: a.Filename, Begin: begin, End: end}
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Filename, l.Begin.Line, l.Begin.Column)
}
