package view

import "sync"

// Loader guards asynchronous fetches against stale delivery. Every Begin
// invalidates tokens handed out earlier, and Shutdown invalidates all of
// them, so a response that lands after the screen moved on is discarded
// instead of applied to dead state.
type Loader struct {
	mu     sync.Mutex
	gen    uint64
	closed bool
}

// Token identifies one in-flight fetch.
type Token struct {
	loader *Loader
	gen    uint64
}

// Begin starts a new fetch generation and returns its token.
func (l *Loader) Begin() Token {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	return Token{loader: l, gen: l.gen}
}

// Apply runs fn only if tok is still the live generation. It reports whether
// fn ran.
func (l *Loader) Apply(tok Token, fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || tok.gen != l.gen {
		return false
	}
	fn()
	return true
}

// Shutdown marks the owner as gone; every outstanding token becomes stale.
func (l *Loader) Shutdown() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
}
