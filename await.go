// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfut

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Await is the effect operation for awaiting a poll-style computation.
// Perform(Await[T]{Poller: p}) suspends until p settles and resumes with
// Right(value) or Left(error).
type Await[T any] struct {
	kont.Phantom[kont.Either[error, T]]
	Poller Poller[T]
}

// DispatchAwait polls the awaited computation once.
// Non-blocking: returns iox.ErrWouldBlock while the poller is pending.
func (a Await[T]) DispatchAwait() (kont.Resumed, error) {
	v, err := a.Poller.Poll()
	if isPending(err) {
		return nil, err
	}
	if err != nil {
		return kont.Left[error, T](err), nil
	}
	return kont.Right[error, T](v), nil
}

// awaiter is the structural interface for await operations.
// DispatchAwait returns iox.ErrWouldBlock when the awaited computation
// cannot make progress yet.
type awaiter interface {
	DispatchAwait() (kont.Resumed, error)
}

// errorDispatcher is the structural interface of kont's error effect
// operations for error type E.
type errorDispatcher[E any] interface {
	DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
}

// isPending reports whether err is the poll-style not-ready signal.
func isPending(err error) bool {
	return err != nil && iox.IsWouldBlock(err)
}
