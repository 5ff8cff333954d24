package logs

import (
	"io"
	"os"
)

// Writer is the diagnostic channel. Logs and transcripts go here so the
// primary output only ever carries commands.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
