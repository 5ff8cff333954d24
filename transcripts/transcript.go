package transcripts

import (
	"slices"

	"github.com/reusee/turnbot/lines"
)

type Phase string

const (
	PhaseInit  Phase = "init"
	PhaseState Phase = "state"
)

// Transcript is the verbatim list of lines consumed by one decode call
type Transcript struct {
	Phase Phase
	// Turn counts state reads from 1; zero for init
	Turn  int
	Lines []string
}

func New(phase Phase, turn int, consumed []string) Transcript {
	return Transcript{
		Phase: phase,
		Turn:  turn,
		Lines: slices.Clone(consumed),
	}
}

func (t Transcript) String() string {
	return lines.Join(t.Lines)
}
