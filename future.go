// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfut

// Poller is a poll-style computation yielding a T.
//
// Poll is non-blocking: it returns iox.ErrWouldBlock while the computation
// cannot make progress, and the caller polls again later. Any other return
// is final. Poll must not be called concurrently.
type Poller[T any] interface {
	Poll() (T, error)
}

// PollFunc adapts an ordinary function to the [Poller] interface.
type PollFunc[T any] func() (T, error)

// Poll calls f.
func (f PollFunc[T]) Poll() (T, error) { return f() }

// Future is the asynchronous value type of the kube client.
//
// A Future owns exactly one Poller and hides the combinator chain that built
// it. Failures other than iox.ErrWouldBlock are always [*Error].
//
// A Future may be handed to another goroutine, but only one goroutine may
// poll it at a time. Dropping an unfinished Future abandons its computation.
type Future[T any] struct {
	p Poller[T]
}

// New wraps p. The poller must already report failures as [*Error].
// If p is a *Future[T] it is returned unchanged.
func New[T any](p Poller[T]) *Future[T] {
	if f, ok := p.(*Future[T]); ok {
		return f
	}
	return &Future[T]{p: p}
}

// Poll forwards to the owned poller.
func (f *Future[T]) Poll() (T, error) {
	return f.p.Poll()
}

// settled is a computation whose outcome is known at construction.
type settled[T any] struct {
	v   T
	err error
}

func (s *settled[T]) Poll() (T, error) { return s.v, s.err }

// Ready returns a future resolved to v on its first poll.
func Ready[T any](v T) *Future[T] {
	return &Future[T]{p: &settled[T]{v: v}}
}

// Fail returns a future failed with err on its first poll.
// err must not be nil.
func Fail[T any](err *Error) *Future[T] {
	if err == nil {
		panic("kfut: Fail with nil error")
	}
	return &Future[T]{p: &settled[T]{err: err}}
}

// Resolve lifts a synchronous result into a future.
// A non-nil err is converted with [Wrap].
func Resolve[T any](v T, err error) *Future[T] {
	if err != nil {
		return Fail[T](Wrap(err))
	}
	return Ready(v)
}
