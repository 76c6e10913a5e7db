// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfut

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a suspension-style computation until the first effect
// suspension. Returns (Either[E, T], nil) on completion, or
// (zero, suspension) if pending.
func Step[E, T any](m kont.Expr[T]) (kont.Either[E, T], *kont.Suspension[kont.Either[E, T]]) {
	wrapped := kont.ExprMap(m, func(v T) kont.Either[E, T] {
		return kont.Right[E, T](v)
	})
	return kont.StepExpr(wrapped)
}

// Advance dispatches the suspended operation once.
//
// Await operations poll their computation: on iox.ErrWouldBlock the
// suspension is returned unconsumed together with the error, and may be
// advanced again later. Error operations are eager: a Throw discards the
// suspension and returns Left.
func Advance[E, T any](susp *kont.Suspension[kont.Either[E, T]]) (kont.Either[E, T], *kont.Suspension[kont.Either[E, T]], error) {
	if aop, ok := susp.Op().(awaiter); ok {
		v, err := aop.DispatchAwait()
		if err != nil {
			var zero kont.Either[E, T]
			return zero, susp, err
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	if eop, ok := susp.Op().(errorDispatcher[E]); ok {
		var ctx kont.ErrorContext[E]
		v, _ := eop.DispatchError(&ctx)
		if ctx.HasErr {
			susp.Discard()
			return kont.Left[E, T](ctx.Err), nil, nil
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	panic("kfut: unhandled effect in Advance")
}
