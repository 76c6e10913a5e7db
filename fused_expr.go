// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfut

import (
	"code.hybscloud.com/kont"
)

// identityResume is the identity resume function for EffectFrame construction.
func identityResume(v kont.Erased) kont.Erased { return v }

func awaitBindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(kont.Either[error, T]) kont.Expr[B])
	result := f(current.(kont.Either[error, T]))
	return kont.Erased(result.Value), result.Frame
}

// ExprAwaitBind awaits p and passes the outcome to f as Right(value) or
// Left(error). Fuses ExprPerform(Await[T]{Poller: p}) + ExprBind.
func ExprAwaitBind[T, B any](p Poller[T], f func(kont.Either[error, T]) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = awaitBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Await[T]{Poller: p}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}
