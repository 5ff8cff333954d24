package states

import (
	"fmt"

	"github.com/reusee/turnbot/lines"
	"github.com/reusee/turnbot/tokens"
	"github.com/reusee/turnbot/vecs"
)

// Reader provides the primitive token readers. Every primitive consumes
// exactly one line, including when the line fails to parse.
type Reader struct {
	source lines.Source
	n      int
}

func NewReader(source lines.Source) *Reader {
	return &Reader{
		source: source,
	}
}

// Consumed reports how many lines have been read
func (r *Reader) Consumed() int {
	return r.n
}

func (r *Reader) Line() (string, error) {
	line, err := r.source.ReadLine()
	if err != nil {
		return "", err
	}
	r.n++
	return line, nil
}

func (r *Reader) Int() (int, error) {
	line, err := r.Line()
	if err != nil {
		return 0, err
	}
	n, err := tokens.ParseInt(line)
	if err != nil {
		return 0, r.wrap(err)
	}
	return n, nil
}

func (r *Reader) Ints() ([]int, error) {
	line, err := r.Line()
	if err != nil {
		return nil, err
	}
	ns, err := tokens.ParseInts(line)
	if err != nil {
		return nil, r.wrap(err)
	}
	return ns, nil
}

func (r *Reader) Vec() (vecs.Vec, error) {
	line, err := r.Line()
	if err != nil {
		return vecs.Vec{}, err
	}
	v, err := vecs.Parse(line)
	if err != nil {
		return vecs.Vec{}, r.wrap(err)
	}
	return v, nil
}

func (r *Reader) wrap(err error) error {
	return fmt.Errorf("line %d: %w", r.n, err)
}
