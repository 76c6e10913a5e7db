// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfut

import (
	"io"

	"code.hybscloud.com/kont"
)

// Fold consumes src in a suspension-style computation, combining each item
// into acc with f, and returns the final accumulator once src ends.
// Each item is awaited; a failure of src is thrown unchanged.
func Fold[T, A any](src Source[T], acc A, f func(A, T) A) kont.Eff[A] {
	return kont.Bind(AwaitEither[T](PollFunc[T](src.Next)), func(r kont.Either[error, T]) kont.Eff[A] {
		if err, ok := r.GetLeft(); ok {
			if err == io.EOF {
				return kont.Pure(acc)
			}
			return kont.ThrowError[error, A](err)
		}
		v, _ := r.GetRight()
		return Fold(src, f(acc, v), f)
	})
}
