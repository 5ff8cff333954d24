package lines

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Live reads from an interactive stream and logs every line it vends.
// The bufio.Reader outlives the Live; one Live covers one decode call.
type Live struct {
	reader *bufio.Reader
	log    []string
}

var _ Source = new(Live)

func NewLive(reader *bufio.Reader) *Live {
	return &Live{
		reader: reader,
	}
}

func (l *Live) ReadLine() (string, error) {
	line, err := l.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read line: %w", err)
		}
		if line == "" {
			return "", fmt.Errorf("read line %d: %w", len(l.log)+1, ErrStreamClosed)
		}
		// unterminated last line
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if strings.Contains(line, Delimiter) {
		return "", fmt.Errorf("read line %d: %q: %w", len(l.log)+1, line, ErrDelimiterInLine)
	}
	l.log = append(l.log, line)
	return line, nil
}

// Lines returns the lines read so far, in order
func (l *Live) Lines() []string {
	return slices.Clone(l.log)
}
