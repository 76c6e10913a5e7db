// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfut_test

import (
	"io"
	"testing"

	"code.hybscloud.com/kfut"
)

func sum(acc, n int) int { return acc + n }

func TestFold(t *testing.T) {
	result := kfut.Exec[error, int](kfut.Fold[int, int](kfut.Items(1, 2, 3, 4), 0, sum))
	if v, ok := result.GetRight(); !ok || v != 10 {
		t.Fatalf("got (%d, %v), want 10", v, ok)
	}
}

func TestFoldEmpty(t *testing.T) {
	result := kfut.Exec[error, int](kfut.Fold[int, int](kfut.Items[int](), 7, sum))
	if v, ok := result.GetRight(); !ok || v != 7 {
		t.Fatalf("got (%d, %v), want 7", v, ok)
	}
}

func TestFoldFailure(t *testing.T) {
	e := kfut.IOError(io.ErrUnexpectedEOF)
	s := kfut.AndThenEach(kfut.Items(1, 2, 3), func(n int) *kfut.Future[int] {
		if n == 3 {
			return kfut.Fail[int](e)
		}
		return kfut.Ready(n)
	})
	result := kfut.Exec[error, int](kfut.Fold[int, int](s, 0, sum))
	if err, ok := result.GetLeft(); !ok || err != e {
		t.Fatalf("got (%v, %v)", err, ok)
	}
}

func TestFoldDowngraded(t *testing.T) {
	// Fold over a stuttering source, driven as a poll-style future.
	src := &stutterSource[int]{items: []int{5, 6}}
	c := kfut.Downgrade[error, int](kfut.Fold[int, int](src, 0, sum))
	v, blocked, err := pollAll[int](c)
	if err != nil || v != 11 || blocked != 2 {
		t.Fatalf("got (%d, %d, %v)", v, blocked, err)
	}
}
