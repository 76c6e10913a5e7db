// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfut

// Wait polls p on the calling goroutine until it settles, backing off with
// iox.Backoff while it reports iox.ErrWouldBlock.
func Wait[T any](p Poller[T], opts ...Option) (T, error) {
	c := newConfig(opts)
	bo := c.backoff()
	for {
		v, err := p.Poll()
		if !isPending(err) {
			return v, err
		}
		bo.Wait()
	}
}

// WaitNext is [Wait] for one item of a source. It returns io.EOF once the
// source has ended.
func WaitNext[T any](src Source[T], opts ...Option) (T, error) {
	return Wait[T](PollFunc[T](src.Next), opts...)
}
