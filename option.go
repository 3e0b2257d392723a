package gocalc

import "fmt"

// Option holds either a value (Just) or nothing. It is the only failure
// channel of the parser and the VM.
type Option[T any] struct {
	v  T
	ok bool
}

func Just[T any](v T) Option[T] {
	return Option[T]{v: v, ok: true}
}

func Nothing[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsJust() bool {
	return o.ok
}

func (o Option[T]) IsNothing() bool {
	return !o.ok
}

// FromJust returns the held value. It panics on Nothing.
func (o Option[T]) FromJust() T {
	if !o.ok {
		panic("gocalc: FromJust on Nothing")
	}
	return o.v
}

func (o Option[T]) Get() (T, bool) {
	return o.v, o.ok
}

func (o Option[T]) String() string {
	if !o.ok {
		return "nothing"
	}
	return fmt.Sprint(o.v)
}
