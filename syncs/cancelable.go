package syncs

import "sync"

// Cancelable runs its cleanup exactly once, on the first Cancel.
// Pair with defer to cover every exit path.
type Cancelable struct {
	once   sync.Once
	cancel func()
}

func NewCancelable(cancel func()) *Cancelable {
	return &Cancelable{
		cancel: cancel,
	}
}

func (c *Cancelable) Cancel() {
	c.once.Do(func() {
		if c.cancel != nil {
			c.cancel()
		}
	})
}
