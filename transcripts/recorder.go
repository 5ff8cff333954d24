package transcripts

import (
	"fmt"

	"github.com/google/uuid"
)

// Recorder collects transcripts into a Fixture and rewrites the file after
// every emit, so an interrupted session still leaves a replayable file
type Recorder struct {
	Path string
	// Session is stamped into the fixture to match it with log records
	Session string
	fixture Fixture
}

var _ Sink = new(Recorder)

func NewRecorder(path string) *Recorder {
	return &Recorder{
		Path:    path,
		Session: uuid.NewString(),
	}
}

func (r *Recorder) Emit(t Transcript) error {
	switch t.Phase {
	case PhaseInit:
		r.fixture = Fixture{
			Session: r.Session,
			Init:    t.String(),
		}
	case PhaseState:
		r.fixture.Turns = append(r.fixture.Turns, t.String())
	default:
		return fmt.Errorf("unknown phase: %s", t.Phase)
	}
	return SaveFixture(r.Path, &r.fixture)
}

func (r *Recorder) Fixture() Fixture {
	ret := r.fixture
	ret.Turns = append([]string(nil), r.fixture.Turns...)
	return ret
}
