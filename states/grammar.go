package states

// Grammar is a concrete protocol. Implementations compose the primitives of
// Reader in a fixed order; they never touch the line source directly.
type Grammar[Init, State any] interface {
	ReadInit(r *Reader) (Init, error)
	ReadState(init Init, r *Reader) (State, error)
}
