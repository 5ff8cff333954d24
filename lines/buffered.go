package lines

import (
	"fmt"
	"slices"
)

// Buffered vends lines from a fixed in-memory sequence
type Buffered struct {
	lines  []string
	cursor int
}

var _ Source = new(Buffered)

func NewBuffered(lines []string) *Buffered {
	return &Buffered{
		lines: slices.Clone(lines),
	}
}

// FromText splits blob on Delimiter
func FromText(blob string) *Buffered {
	return &Buffered{
		lines: Split(blob),
	}
}

func (b *Buffered) ReadLine() (string, error) {
	if b.cursor >= len(b.lines) {
		return "", fmt.Errorf("read line %d of %d: %w", b.cursor+1, len(b.lines), ErrOutOfInput)
	}
	line := b.lines[b.cursor]
	b.cursor++
	return line, nil
}

func (b *Buffered) Remaining() int {
	return len(b.lines) - b.cursor
}
