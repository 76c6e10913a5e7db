// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfut

import (
	"code.hybscloud.com/kont"
)

// Upgrade converts a poll-style computation to a suspension-style one.
// The result suspends on Await while p is pending. A failure of p is thrown
// unchanged through kont's error effect with error type error.
func Upgrade[T any](p Poller[T]) kont.Eff[T] {
	return kont.Bind(kont.Perform(Await[T]{Poller: p}), settle[T])
}

// UpgradeExpr is [Upgrade] for Expr-world code.
func UpgradeExpr[T any](p Poller[T]) kont.Expr[T] {
	return kont.Reify(Upgrade(p))
}

func settle[T any](r kont.Either[error, T]) kont.Eff[T] {
	if err, ok := r.GetLeft(); ok {
		return kont.ThrowError[error, T](err)
	}
	v, _ := r.GetRight()
	return kont.Pure(v)
}

// Downgrade converts a suspension-style computation to a poll-style one.
// The computation may perform Await operations and throw errors of type E;
// a thrown E is returned unchanged by Poll. Computations built with
// [Upgrade] throw with error type error, so E is error for them.
func Downgrade[E error, T any](m kont.Eff[T]) *Compat[E, T] {
	return &Compat[E, T]{eff: m, cont: true}
}

// DowngradeExpr is [Downgrade] for Expr-world code.
func DowngradeExpr[E error, T any](m kont.Expr[T]) *Compat[E, T] {
	return &Compat[E, T]{expr: m}
}

// Compat drives a suspension-style computation through the poll-style
// protocol. Nothing is evaluated before the first Poll.
type Compat[E error, T any] struct {
	eff     kont.Eff[T]
	expr    kont.Expr[T]
	cont    bool
	susp    *kont.Suspension[kont.Either[E, T]]
	result  kont.Either[E, T]
	started bool
}

// Poll advances the computation until it completes or an awaited
// computation reports iox.ErrWouldBlock, which is returned as is.
// After completion Poll keeps returning the same outcome.
func (c *Compat[E, T]) Poll() (T, error) {
	if !c.started {
		c.started = true
		expr := c.expr
		if c.cont {
			expr = kont.Reify(c.eff)
		}
		var none kont.Eff[T]
		c.eff, c.expr = none, kont.Expr[T]{}
		c.result, c.susp = Step[E](expr)
	}
	for c.susp != nil {
		var err error
		c.result, c.susp, err = Advance[E](c.susp)
		if err != nil {
			var zero T
			return zero, err
		}
	}
	if e, ok := c.result.GetLeft(); ok {
		var zero T
		return zero, e
	}
	v, _ := c.result.GetRight()
	return v, nil
}
