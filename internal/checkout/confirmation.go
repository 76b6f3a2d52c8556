package checkout

import (
	"sync"
	"time"
)

// Confirmation is the single asynchronous task between order placement and
// the cart clear. The clear runs exactly once: the delayed timer and an
// early Finish cannot both apply it, and abandoning the session cannot leave
// it half done.
type Confirmation struct {
	cart  Cart
	timer *time.Timer
	once  sync.Once
	done  chan struct{}
}

func newConfirmation(cart Cart, delay time.Duration) *Confirmation {
	c := &Confirmation{
		cart: cart,
		done: make(chan struct{}),
	}
	c.timer = time.AfterFunc(delay, c.fire)
	return c
}

func (c *Confirmation) fire() {
	c.once.Do(func() {
		c.cart.Clear()
		close(c.done)
	})
}

// Finish completes the pending clear immediately instead of waiting for the
// timer. Used when the session is abandoned mid-delay; calling it after the
// timer fired is a no-op.
func (c *Confirmation) Finish() {
	c.timer.Stop()
	c.fire()
}

// Done is closed once the cart has been cleared
func (c *Confirmation) Done() <-chan struct{} {
	return c.done
}
