//go:build unix

package viewport

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// watchResize forwards SIGWINCH to notify until the returned stop is called.
func watchResize(_ Surface, notify func()) func() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGWINCH)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-sig:
				notify()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sig)
			close(done)
		})
	}
}
