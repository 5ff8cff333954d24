package scripts

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/turnbot/bots"
	"github.com/reusee/turnbot/debugs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// EntryPoint is the function a script must define
const EntryPoint = "get_command"

// AI delegates the command choice to a starlark script. The script's
// get_command(state) receives the state converted by debugs.ToStarlarkValue
// and must return a string.
type AI[State any] struct {
	name string
	fn   starlark.Callable
	// Print receives the output of print() in the script
	Print func(msg string)
}

var _ bots.AI[any] = new(AI[any])

func Load[State any](path string) (*AI[State], error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Compile[State](path, src)
}

func Compile[State any](name string, src []byte) (*AI[State], error) {
	ai := &AI[State]{
		name: name,
	}
	thread := ai.thread()
	globals, err := starlark.ExecFileOptions(
		&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		},
		thread, name, src, nil,
	)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", name, err)
	}
	fn, ok := globals[EntryPoint].(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("script %s: %s is not defined as a function", name, EntryPoint)
	}
	ai.fn = fn
	return ai, nil
}

func (a *AI[State]) GetCommand(ctx context.Context, state State) (string, error) {
	arg, err := debugs.ToStarlarkValue(state)
	if err != nil {
		return "", err
	}
	thread := a.thread()
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	defer stop()
	ret, err := starlark.Call(thread, a.fn, starlark.Tuple{arg}, nil)
	if err != nil {
		return "", fmt.Errorf("script %s: %w", a.name, err)
	}
	command, ok := starlark.AsString(ret)
	if !ok {
		return "", fmt.Errorf("script %s: %s returned %s, want string", a.name, EntryPoint, ret.Type())
	}
	return command, nil
}

func (a *AI[State]) thread() *starlark.Thread {
	return &starlark.Thread{
		Name: a.name,
		Print: func(_ *starlark.Thread, msg string) {
			if a.Print != nil {
				a.Print(msg)
			}
		},
	}
}
