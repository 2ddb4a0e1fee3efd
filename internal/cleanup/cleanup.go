// Package cleanup runs registered functions when a command exits.
package cleanup

import "sync"

var (
	registered []func()
	mu         sync.Mutex
)

// Register adds fn to the functions called by [Run].
func Register(fn func()) {
	mu.Lock()
	defer mu.Unlock()
	registered = append(registered, fn)
}

// Run calls every registered function in reverse order of registration
// and then forgets them, so each is called at most once.
func Run() {
	mu.Lock()
	fns := registered
	registered = nil
	mu.Unlock()
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
