// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfut

import (
	"io"
)

// Source is a poll-style sequence of T.
//
// Next returns (item, nil) for each item, (zero, io.EOF) once the sequence
// has ended, and (zero, iox.ErrWouldBlock) while no item is available yet.
// Any other error is final. Next must not be called concurrently.
type Source[T any] interface {
	Next() (T, error)
}

// Stream is the asynchronous sequence type of the kube client.
// It owns exactly one Source and follows the ownership rules of [Future].
// Failures other than io.EOF and iox.ErrWouldBlock are always [*Error].
type Stream[T any] struct {
	src Source[T]
}

// NewStream wraps src. If src is a *Stream[T] it is returned unchanged.
func NewStream[T any](src Source[T]) *Stream[T] {
	if s, ok := src.(*Stream[T]); ok {
		return s
	}
	return &Stream[T]{src: src}
}

// Next forwards to the owned source.
func (s *Stream[T]) Next() (T, error) {
	return s.src.Next()
}

// sliceSource yields a fixed list of items.
type sliceSource[T any] struct {
	items []T
}

func (s *sliceSource[T]) Next() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, io.EOF
	}
	v := s.items[0]
	s.items = s.items[1:]
	return v, nil
}

// Items returns a stream yielding items in order, then io.EOF.
func Items[T any](items ...T) *Stream[T] {
	return &Stream[T]{src: &sliceSource[T]{items: items}}
}

// collectPoller drains a source into a slice.
type collectPoller[T any] struct {
	src Source[T]
	acc []T
}

func (c *collectPoller[T]) Poll() ([]T, error) {
	for {
		v, err := c.src.Next()
		switch {
		case err == nil:
			c.acc = append(c.acc, v)
		case err == io.EOF:
			return c.acc, nil
		default:
			return nil, err
		}
	}
}

// Collect returns a future resolving to every item of s once s ends.
// A failure of s fails the future; iox.ErrWouldBlock keeps it pending.
func Collect[T any](s *Stream[T]) *Future[[]T] {
	return &Future[[]T]{p: &collectPoller[T]{src: s}}
}

// mapSource maps each item of a source through a future constructor.
type mapSource[T, U any] struct {
	src     Source[T]
	fn      func(T) *Future[U]
	pending *Future[U]
}

func (m *mapSource[T, U]) Next() (U, error) {
	if m.pending == nil {
		v, err := m.src.Next()
		if err != nil {
			var zero U
			return zero, err
		}
		m.pending = m.fn(v)
	}
	u, err := m.pending.Poll()
	if isPending(err) {
		return u, err
	}
	m.pending = nil
	return u, err
}

// AndThenEach returns a stream whose items are the results of fn applied to each
// item of s, in order. A failed item fails the stream at that position.
func AndThenEach[T, U any](s *Stream[T], fn func(T) *Future[U]) *Stream[U] {
	return &Stream[U]{src: &mapSource[T, U]{src: s, fn: fn}}
}
