package app

import "sync"

// lazy builds a value on first use and caches it together with its error.
type lazy[T any] struct {
	once sync.Once
	mu   sync.Mutex
	val  T
	err  error
}

func (l *lazy[T]) get(build func() (T, error)) (T, error) {
	l.once.Do(func() {
		val, err := build()

		l.mu.Lock()
		l.val, l.err = val, err
		l.mu.Unlock()
	})

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.val, l.err
}

// peek returns the cached value without building it.
func (l *lazy[T]) peek() T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.val
}

// must is get for builders that cannot fail.
func (l *lazy[T]) must(build func() T) T {
	val, _ := l.get(func() (T, error) { return build(), nil })
	return val
}
