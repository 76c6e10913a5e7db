// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfut

import (
	"time"

	"code.hybscloud.com/iox"
)

// Option configures the blocking drivers [Wait], [Exec] and [ExecExpr].
type Option func(c *config)

type config struct {
	base time.Duration
	max  time.Duration
}

// WithBackoff sets the base and maximum sleep of the backoff used between
// not-ready polls. Non-positive values keep the iox.Backoff defaults.
func WithBackoff(base, max time.Duration) Option {
	return func(c *config) {
		c.base = base
		c.max = max
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, o := range opts {
		o(&c)
	}
	return c
}

// backoff returns a fresh iox.Backoff configured from c.
func (c *config) backoff() iox.Backoff {
	var bo iox.Backoff
	bo.SetBase(c.base)
	bo.SetMax(c.max)
	return bo
}
