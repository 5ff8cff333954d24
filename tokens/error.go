package tokens

import "fmt"

// FormatError reports a token that does not match the numeric grammar
type FormatError struct {
	Kind string
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bad %s %q: %v", e.Kind, e.Text, e.Err)
	}
	return fmt.Sprintf("bad %s %q", e.Kind, e.Text)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
