package states

import (
	"errors"
	"fmt"

	"github.com/reusee/turnbot/lines"
)

var ErrUnconsumedInput = errors.New("unconsumed input")

// Decoder runs a Grammar over line sources
type Decoder[Init, State any] struct {
	Grammar Grammar[Init, State]
}

func NewDecoder[Init, State any](grammar Grammar[Init, State]) Decoder[Init, State] {
	return Decoder[Init, State]{
		Grammar: grammar,
	}
}

// ReadInit must be called once before any ReadState
func (d Decoder[Init, State]) ReadInit(source lines.Source) (ret Init, err error) {
	init, err := d.Grammar.ReadInit(NewReader(source))
	if err != nil {
		return ret, fmt.Errorf("read init: %w", err)
	}
	return init, nil
}

func (d Decoder[Init, State]) ReadState(init Init, source lines.Source) (ret State, err error) {
	state, err := d.Grammar.ReadState(init, NewReader(source))
	if err != nil {
		return ret, fmt.Errorf("read state: %w", err)
	}
	return state, nil
}

// ReadInitText decodes a captured init transcript
func (d Decoder[Init, State]) ReadInitText(text string) (ret Init, err error) {
	source := lines.FromText(text)
	init, err := d.ReadInit(source)
	if err != nil {
		return ret, err
	}
	if err := checkDrained(text, source); err != nil {
		return ret, fmt.Errorf("read init: %w", err)
	}
	return init, nil
}

// ReadStateText decodes a captured turn transcript
func (d Decoder[Init, State]) ReadStateText(init Init, text string) (ret State, err error) {
	source := lines.FromText(text)
	state, err := d.ReadState(init, source)
	if err != nil {
		return ret, err
	}
	if err := checkDrained(text, source); err != nil {
		return ret, fmt.Errorf("read state: %w", err)
	}
	return state, nil
}

// ReadText decodes separate init and turn transcripts, each over its own source
func (d Decoder[Init, State]) ReadText(initText, stateText string) (init Init, state State, err error) {
	init, err = d.ReadInitText(initText)
	if err != nil {
		return
	}
	state, err = d.ReadStateText(init, stateText)
	if err != nil {
		var zero Init
		return zero, state, err
	}
	return
}

// ReadCombinedText decodes one blob holding the init transcript followed by
// a turn transcript, both read from the same source
func (d Decoder[Init, State]) ReadCombinedText(text string) (init Init, state State, err error) {
	source := lines.FromText(text)
	init, err = d.ReadInit(source)
	if err != nil {
		return
	}
	state, err = d.ReadState(init, source)
	if err != nil {
		var zero Init
		return zero, state, err
	}
	if err = checkDrained(text, source); err != nil {
		var zeroInit Init
		var zeroState State
		return zeroInit, zeroState, fmt.Errorf("read state: %w", err)
	}
	return
}

// An empty blob is both zero lines and one empty line; either reading drains it
func checkDrained(text string, source *lines.Buffered) error {
	if text == "" {
		return nil
	}
	if n := source.Remaining(); n > 0 {
		return fmt.Errorf("%d lines left: %w", n, ErrUnconsumedInput)
	}
	return nil
}
