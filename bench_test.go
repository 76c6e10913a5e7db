// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfut_test

import (
	"testing"

	"code.hybscloud.com/kont"

	"code.hybscloud.com/kfut"
)

var benchPayload = []byte(`{"a":1}`)

// BenchmarkParseJSON measures decoding a small payload with logging disabled.
func BenchmarkParseJSON(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		if _, err := kfut.ParseJSON[object](benchPayload).Poll(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAndThenMap measures a two-stage combinator chain.
func BenchmarkAndThenMap(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		f := kfut.Map(kfut.AndThen(kfut.Ready(benchPayload), kfut.ParseJSON[object]), func(o object) int {
			return o.A
		})
		if _, err := f.Poll(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkUpgradeExec measures awaiting a ready future through Exec.
func BenchmarkUpgradeExec(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		kfut.Exec[error, int](kfut.Upgrade[int](kfut.Ready(1)))
	}
}

// BenchmarkDowngradePoll measures a suspension-style computation driven
// through Poll.
func BenchmarkDowngradePoll(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		m := kfut.AwaitBind[int, int](kfut.Ready(1), func(n int) kont.Eff[int] {
			return kont.Pure(n + 1)
		})
		if _, err := kfut.Downgrade[error, int](m).Poll(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkExprAwaitBind measures the fused Expr-world await.
func BenchmarkExprAwaitBind(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		m := kfut.ExprAwaitBind[int, int](kfut.Ready(1), func(r kont.Either[error, int]) kont.Expr[int] {
			v, _ := r.GetRight()
			return kont.ExprReturn(v)
		})
		kfut.ExecExpr[error, int](m)
	}
}

// BenchmarkPipe measures a send/next round-trip.
func BenchmarkPipe(b *testing.B) {
	skipRace(b)
	b.ReportAllocs()
	tx, rx := kfut.Pipe[int](4)
	for b.Loop() {
		_ = tx.Send(1)
		_, _ = rx.Next()
	}
}
