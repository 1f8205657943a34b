package services

import (
	"sync"
	"time"
)

// progressTicker calls tick on a fixed interval until stopped. Once Stop has
// returned, tick is never called again.
type progressTicker struct {
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func startProgressTicker(interval time.Duration, tick func()) *progressTicker {
	t := &progressTicker{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go func() {
		defer close(t.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-t.stop:
				return
			case <-ticker.C:
				// both channels may be ready; stop wins
				select {
				case <-t.stop:
					return
				default:
				}
				tick()
			}
		}
	}()
	return t
}

// Stop is idempotent and waits for the ticking goroutine to exit.
func (t *progressTicker) Stop() {
	t.stopOnce.Do(func() { close(t.stop) })
	<-t.done
}
