// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfut

import (
	"code.hybscloud.com/kont"
)

// AwaitBind awaits p and passes its value to f.
// Fuses Upgrade + Bind. A failure of p is thrown unchanged.
func AwaitBind[T, B any](p Poller[T], f func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(Upgrade(p), f)
}

// AwaitThen awaits p, discards its value and continues with next.
func AwaitThen[T, B any](p Poller[T], next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(Upgrade(p), next)
}

// AwaitEither awaits p without throwing: the failure, if any, is returned
// as Left for the caller to inspect.
func AwaitEither[T any](p Poller[T]) kont.Eff[kont.Either[error, T]] {
	return kont.Perform(Await[T]{Poller: p})
}
