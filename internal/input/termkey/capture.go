package termkey

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keycodec/internal/input/key"
)

// ErrScreenClosed is returned by Capture when the screen stops delivering
// events before the handler or context ends the capture.
var ErrScreenClosed = errors.New("screen closed")

// Handler receives each captured key event. Returning false stops the
// capture.
type Handler func(ev key.Event) bool

// Capture reads key events from screen and passes them to fn until fn
// returns false or ctx is cancelled. Keys with no key.Event counterpart
// are skipped. The screen must already be initialized.
func Capture(ctx context.Context, screen tcell.Screen, fn Handler) error {
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		select {
		case <-ctx.Done():
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-stop:
		}
	}()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return ErrScreenClosed
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return err
			}
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			kev, ok := FromTcell(ev)
			if !ok {
				continue
			}
			if !fn(kev) {
				return nil
			}
		}
	}
}
