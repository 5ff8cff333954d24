// Package sample is the starting grammar for a new game: it keeps the
// first lines of the init and of every turn verbatim. Replace the fields
// with typed ones once the protocol is known.
package sample

import (
	"github.com/reusee/turnbot/states"
)

const (
	InitLines  = 3
	StateLines = 3
)

type Init struct {
	Lines []string
}

type State struct {
	Lines []string
}

type Grammar struct{}

var _ states.Grammar[Init, State] = Grammar{}

func (Grammar) ReadInit(r *states.Reader) (ret Init, err error) {
	ret.Lines, err = readLines(r, InitLines)
	return
}

func (Grammar) ReadState(init Init, r *states.Reader) (ret State, err error) {
	ret.Lines, err = readLines(r, StateLines)
	return
}

func readLines(r *states.Reader, n int) ([]string, error) {
	ret := make([]string, 0, n)
	for range n {
		line, err := r.Line()
		if err != nil {
			return nil, err
		}
		ret = append(ret, line)
	}
	return ret, nil
}
