package lines

import (
	"errors"
	"strings"
)

// Delimiter separates records in a captured blob
const Delimiter = "|"

var (
	ErrOutOfInput   = errors.New("out of input")
	ErrStreamClosed = errors.New("stream closed")
	// ErrDelimiterInLine is returned for a live line that could not be
	// replayed from its transcript
	ErrDelimiterInLine = errors.New("delimiter in line")
)

// Source vends one text line per call
type Source interface {
	ReadLine() (string, error)
}

func Split(blob string) []string {
	return strings.Split(blob, Delimiter)
}

func Join(lines []string) string {
	return strings.Join(lines, Delimiter)
}
