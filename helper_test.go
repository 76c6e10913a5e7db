// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfut_test

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"

	"code.hybscloud.com/kfut"
)

// pendingPoller reports iox.ErrWouldBlock a fixed number of times before
// settling. polls counts every call.
type pendingPoller[T any] struct {
	pending int
	v       T
	err     error
	polls   int
}

func (p *pendingPoller[T]) Poll() (T, error) {
	p.polls++
	if p.pending > 0 {
		p.pending--
		var zero T
		return zero, iox.ErrWouldBlock
	}
	return p.v, p.err
}

// pollAll polls p until it settles, counting the not-ready polls.
func pollAll[T any](p kfut.Poller[T]) (v T, blocked int, err error) {
	for {
		v, err = p.Poll()
		if !iox.IsWouldBlock(err) {
			return v, blocked, err
		}
		blocked++
	}
}

// stepExpr drives m to completion via the Step+Advance loop.
// Retries on iox.ErrWouldBlock (awaited poller not ready yet).
func stepExpr[E, T any](m kont.Expr[T]) kont.Either[E, T] {
	result, susp := kfut.Step[E](m)
	for susp != nil {
		var err error
		result, susp, err = kfut.Advance(susp)
		if err != nil {
			continue
		}
	}
	return result
}

// drain reads src until the first error, which is returned as is.
func drain[T any](src kfut.Source[T]) ([]T, error) {
	var out []T
	for {
		v, err := src.Next()
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
}
