package transcripts

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func TestTranscriptString(t *testing.T) {
	consumed := []string{"Some input", "copy pasted from", "error stream"}
	transcript := New(PhaseState, 1, consumed)
	if str := transcript.String(); str != "Some input|copy pasted from|error stream" {
		t.Fatalf("got %q", str)
	}
	consumed[0] = "changed"
	if transcript.Lines[0] != "Some input" {
		t.Fatal("transcript shares the consumed slice")
	}
}

func TestWriterSink(t *testing.T) {
	buf := new(bytes.Buffer)
	sink := WriterSink{W: buf}
	if err := sink.Emit(New(PhaseInit, 0, []string{"a", "b"})); err != nil {
		t.Fatal(err)
	}
	if err := sink.Emit(New(PhaseState, 1, []string{"c"})); err != nil {
		t.Fatal(err)
	}
	if str := buf.String(); str != "a|b\nc\n" {
		t.Fatalf("got %q", str)
	}
}

func TestSinks(t *testing.T) {
	var n int
	errFoo := errors.New("foo")
	sinks := Sinks{
		SinkFunc(func(Transcript) error {
			n++
			return errFoo
		}),
		SinkFunc(func(Transcript) error {
			n++
			return nil
		}),
		Discard,
	}
	err := sinks.Emit(New(PhaseInit, 0, nil))
	if !errors.Is(err, errFoo) {
		t.Fatalf("got %v", err)
	}
	if n != 2 {
		t.Fatalf("got %v", n)
	}
}

func TestRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	recorder := NewRecorder(path)

	if err := recorder.Emit(New(PhaseInit, 0, []string{"Some", "init", "data"})); err != nil {
		t.Fatal(err)
	}
	if err := recorder.Emit(New(PhaseState, 1, []string{"Some input", "copy pasted from", "error stream"})); err != nil {
		t.Fatal(err)
	}
	if err := recorder.Emit(New(PhaseState, 2, []string{"x: y", "#z"})); err != nil {
		t.Fatal(err)
	}

	fixture, err := LoadFixture(path)
	if err != nil {
		t.Fatal(err)
	}
	if fixture.Init != "Some|init|data" {
		t.Fatalf("got %q", fixture.Init)
	}
	if fixture.Session != recorder.Session {
		t.Fatalf("got %q", fixture.Session)
	}
	if _, err := uuid.Parse(fixture.Session); err != nil {
		t.Fatal(err)
	}
	if len(fixture.Turns) != 2 {
		t.Fatalf("got %v", fixture.Turns)
	}
	if fixture.Turns[0] != "Some input|copy pasted from|error stream" {
		t.Fatalf("got %q", fixture.Turns[0])
	}
	if fixture.Turns[1] != "x: y|#z" {
		t.Fatalf("got %q", fixture.Turns[1])
	}

	if got := recorder.Fixture(); got.Init != fixture.Init || len(got.Turns) != 2 {
		t.Fatalf("got %+v", got)
	}

	err = recorder.Emit(Transcript{Phase: "bad"})
	if err == nil {
		t.Fatal("should error")
	}
}

func TestLoadFixtureMissing(t *testing.T) {
	_, err := LoadFixture(filepath.Join(t.TempDir(), "none.yaml"))
	if err == nil {
		t.Fatal("should error")
	}
}
