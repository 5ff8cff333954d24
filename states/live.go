package states

import (
	"bufio"
	"errors"
	"io"

	"github.com/reusee/turnbot/lines"
	"github.com/reusee/turnbot/syncs"
	"github.com/reusee/turnbot/transcripts"
)

// Live decodes from an interactive stream. Each call reads through a fresh
// lines.Live and emits exactly the lines it consumed to Sink, on success
// and on failure alike.
type Live[Init, State any] struct {
	Decoder Decoder[Init, State]
	Sink    transcripts.Sink

	input *bufio.Reader
	turn  int
}

func NewLive[Init, State any](
	decoder Decoder[Init, State],
	input io.Reader,
	sink transcripts.Sink,
) *Live[Init, State] {
	reader, ok := input.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(input)
	}
	if sink == nil {
		sink = transcripts.Discard
	}
	return &Live[Init, State]{
		Decoder: decoder,
		Sink:    sink,
		input:   reader,
	}
}

// Turn reports how many states have been read
func (l *Live[Init, State]) Turn() int {
	return l.turn
}

func (l *Live[Init, State]) ReadInit() (ret Init, err error) {
	source := lines.NewLive(l.input)
	defer func() {
		if err != nil {
			var zero Init
			ret = zero
		}
	}()
	emit := l.capture(source, transcripts.PhaseInit, 0, &err)
	defer emit.Cancel()
	return l.Decoder.ReadInit(source)
}

func (l *Live[Init, State]) ReadState(init Init) (ret State, err error) {
	l.turn++
	source := lines.NewLive(l.input)
	defer func() {
		if err != nil {
			var zero State
			ret = zero
		}
	}()
	emit := l.capture(source, transcripts.PhaseState, l.turn, &err)
	defer emit.Cancel()
	return l.Decoder.ReadState(init, source)
}

func (l *Live[Init, State]) capture(
	source *lines.Live,
	phase transcripts.Phase,
	turn int,
	errp *error,
) *syncs.Cancelable {
	return syncs.NewCancelable(func() {
		consumed := source.Lines()
		if len(consumed) == 0 && *errp != nil {
			// nothing was read, nothing to replay
			return
		}
		if err := l.Sink.Emit(transcripts.New(phase, turn, consumed)); err != nil {
			*errp = errors.Join(*errp, err)
		}
	})
}
