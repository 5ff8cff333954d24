package transcripts

import (
	"errors"
	"io"
)

type Sink interface {
	Emit(Transcript) error
}

type SinkFunc func(Transcript) error

var _ Sink = SinkFunc(nil)

func (s SinkFunc) Emit(t Transcript) error {
	return s(t)
}

// Sinks emits to every sink in order and joins their errors
type Sinks []Sink

var _ Sink = Sinks{}

func (s Sinks) Emit(t Transcript) error {
	var errs []error
	for _, sink := range s {
		if err := sink.Emit(t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WriterSink writes each transcript as one delimiter-joined line.
// Only emission order ties a line to its turn.
type WriterSink struct {
	W io.Writer
}

var _ Sink = WriterSink{}

func (w WriterSink) Emit(t Transcript) error {
	_, err := io.WriteString(w.W, t.String()+"\n")
	return err
}

// Discard drops every transcript
var Discard Sink = SinkFunc(func(Transcript) error {
	return nil
})
