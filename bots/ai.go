package bots

import "context"

// AI maps a decoded state to a command. The command text is opaque to the
// decoding core and written as is.
type AI[State any] interface {
	GetCommand(ctx context.Context, state State) (string, error)
}

type Func[State any] func(ctx context.Context, state State) (string, error)

var _ AI[any] = Func[any](nil)

func (f Func[State]) GetCommand(ctx context.Context, state State) (string, error) {
	return f(ctx, state)
}

// Const always answers command
func Const[State any](command string) Func[State] {
	return func(context.Context, State) (string, error) {
		return command, nil
	}
}
