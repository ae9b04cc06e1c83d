//go:build !unix

package viewport

import "sync"

// watchResize polls the width since there is no SIGWINCH.
func watchResize(s Surface, notify func()) func() {
	done := make(chan struct{})
	go pollWidth(s, pollInterval, notify, done)

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
