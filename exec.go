// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfut

import (
	"code.hybscloud.com/kont"
)

// awaitErrorHandler handles both await and error effects.
// Await ops back off on iox.ErrWouldBlock. Error ops short-circuit on Throw.
type awaitErrorHandler[E, T any] struct {
	cfg    *config
	errCtx *kont.ErrorContext[E]
}

// Dispatch implements kont.Handler for the composed Await+Error handler.
func (h awaitErrorHandler[E, T]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if aop, ok := op.(awaiter); ok {
		return awaitWait(h.cfg, aop), true
	}
	if eop, ok := op.(errorDispatcher[E]); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[E, T](h.errCtx.Err), false
		}
		return v, true
	}
	panic("kfut: unhandled effect in Exec")
}

// awaitWait blocks until DispatchAwait succeeds, backing off on
// iox.ErrWouldBlock.
func awaitWait(c *config, aop awaiter) kont.Resumed {
	bo := c.backoff()
	for {
		v, err := aop.DispatchAwait()
		if err == nil {
			return v
		}
		bo.Wait()
	}
}

// Exec runs a suspension-style computation to completion on the calling
// goroutine. Returns Either[E, T]: Right on success, Left on Throw.
// Blocks on iox.ErrWouldBlock via adaptive backoff, without spawning
// goroutines or creating channels.
func Exec[E, T any](m kont.Eff[T], opts ...Option) kont.Either[E, T] {
	wrapped := kont.Map[kont.Resumed, T, kont.Either[E, T]](m, func(v T) kont.Either[E, T] {
		return kont.Right[E, T](v)
	})
	c := newConfig(opts)
	var errCtx kont.ErrorContext[E]
	h := awaitErrorHandler[E, T]{cfg: &c, errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// ExecExpr is [Exec] for Expr-world computations.
func ExecExpr[E, T any](m kont.Expr[T], opts ...Option) kont.Either[E, T] {
	wrapped := kont.ExprMap(m, func(v T) kont.Either[E, T] {
		return kont.Right[E, T](v)
	})
	c := newConfig(opts)
	var errCtx kont.ErrorContext[E]
	h := awaitErrorHandler[E, T]{cfg: &c, errCtx: &errCtx}
	return kont.HandleExpr(wrapped, h)
}
