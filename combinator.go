// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfut

// mapPoller applies fn once the inner poller resolves.
type mapPoller[T, U any] struct {
	inner Poller[T]
	fn    func(T) U
}

func (m *mapPoller[T, U]) Poll() (U, error) {
	v, err := m.inner.Poll()
	if err != nil {
		var zero U
		return zero, err
	}
	return m.fn(v), nil
}

// Map returns a future resolving to fn applied to the value of f.
// Failures of f pass through unchanged.
func Map[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	return &Future[U]{p: &mapPoller[T, U]{inner: f, fn: fn}}
}

// andThenPoller polls first until it resolves, then the future returned by fn.
// The second future is polled in the same Poll call that resolved the first.
type andThenPoller[T, U any] struct {
	first  Poller[T]
	fn     func(T) *Future[U]
	second *Future[U]
}

func (a *andThenPoller[T, U]) Poll() (U, error) {
	if a.second == nil {
		v, err := a.first.Poll()
		if err != nil {
			var zero U
			return zero, err
		}
		a.second = a.fn(v)
		a.first, a.fn = nil, nil
	}
	return a.second.Poll()
}

// AndThen chains fn after f. fn runs once, with the value of f, and the
// future it returns determines the outcome.
func AndThen[T, U any](f *Future[T], fn func(T) *Future[U]) *Future[U] {
	return &Future[U]{p: &andThenPoller[T, U]{first: f, fn: fn}}
}

// Pair holds the results of [Join].
type Pair[A, B any] struct {
	First  A
	Second B
}

// joinPoller interleaves two pollers on the caller's goroutine.
type joinPoller[A, B any] struct {
	a     Poller[A]
	b     Poller[B]
	out   Pair[A, B]
	aDone bool
	bDone bool
}

func (j *joinPoller[A, B]) Poll() (Pair[A, B], error) {
	var blocked error
	if !j.aDone {
		v, err := j.a.Poll()
		switch {
		case err == nil:
			j.out.First, j.aDone = v, true
		case isPending(err):
			blocked = err
		default:
			return Pair[A, B]{}, err
		}
	}
	if !j.bDone {
		v, err := j.b.Poll()
		switch {
		case err == nil:
			j.out.Second, j.bDone = v, true
		case isPending(err):
			blocked = err
		default:
			return Pair[A, B]{}, err
		}
	}
	if blocked != nil {
		return Pair[A, B]{}, blocked
	}
	return j.out, nil
}

// Join returns a future resolving once both a and b resolve.
// The first failure observed fails the join and abandons the other side.
func Join[A, B any](a *Future[A], b *Future[B]) *Future[Pair[A, B]] {
	return &Future[Pair[A, B]]{p: &joinPoller[A, B]{a: a, b: b}}
}
