// Package arena is an example grammar: units on a bounded board, one of
// them ours, and a target to reach.
//
// Init:
//
//	<width> <height>
//	<my unit id>
//	<speed>
//
// Turn:
//
//	<unit count N>
//	<id 1> ... <id N>
//	<x> <y>          (N lines, one per id in order)
//	<target x> <target y>
package arena

import (
	"fmt"

	"github.com/reusee/turnbot/states"
	"github.com/reusee/turnbot/vecs"
)

type Init struct {
	Width  int
	Height int
	MyID   int
	Speed  int
}

type Unit struct {
	ID  int
	Pos vecs.Vec
}

type State struct {
	Init   Init
	Units  []Unit
	Target vecs.Vec
}

// Unit finds a unit by id
func (s State) Unit(id int) (Unit, bool) {
	for _, unit := range s.Units {
		if unit.ID == id {
			return unit, true
		}
	}
	return Unit{}, false
}

type Grammar struct{}

var _ states.Grammar[Init, State] = Grammar{}

func (Grammar) ReadInit(r *states.Reader) (ret Init, err error) {
	size, err := r.Ints()
	if err != nil {
		return ret, err
	}
	if len(size) != 2 {
		return ret, fmt.Errorf("board size: expecting 2 ints, got %d", len(size))
	}
	ret.Width, ret.Height = size[0], size[1]
	if ret.MyID, err = r.Int(); err != nil {
		return ret, err
	}
	if ret.Speed, err = r.Int(); err != nil {
		return ret, err
	}
	return ret, nil
}

func (Grammar) ReadState(init Init, r *states.Reader) (ret State, err error) {
	ret.Init = init
	n, err := r.Int()
	if err != nil {
		return ret, err
	}
	if n < 0 {
		return ret, fmt.Errorf("negative unit count: %d", n)
	}
	ids, err := r.Ints()
	if err != nil {
		return ret, err
	}
	if len(ids) != n {
		return ret, fmt.Errorf("unit ids: expecting %d, got %d", n, len(ids))
	}
	ret.Units = make([]Unit, 0, n)
	for _, id := range ids {
		pos, err := r.Vec()
		if err != nil {
			return ret, err
		}
		ret.Units = append(ret.Units, Unit{
			ID:  id,
			Pos: pos,
		})
	}
	if ret.Target, err = r.Vec(); err != nil {
		return ret, err
	}
	return ret, nil
}
