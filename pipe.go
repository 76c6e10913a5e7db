// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfut

import (
	"errors"
	"io"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// ErrClosed is returned by [Sender.Send] after the pipe has been closed.
var ErrClosed = errors.New("kfut: send on closed pipe")

// pipe holds the queue and close state of a Pipe in a single allocation.
// The queue is a single-producer single-consumer bounded ring.
type pipe[T any] struct {
	q      lfq.SPSC[T]
	closed atomix.Uint32
	err    error
}

// Sender is the producing side of a [Pipe].
// Only one goroutine may use a Sender.
type Sender[T any] struct {
	p *pipe[T]
}

// Pipe creates a bounded stream fed by the returned Sender.
//
// Send is non-blocking: it returns iox.ErrWouldBlock while the queue is full.
// The stream reports iox.ErrWouldBlock while the queue is empty and the pipe
// is open. Items sent before Close or Fail are delivered before the stream
// ends.
func Pipe[T any](capacity int) (*Sender[T], *Stream[T]) {
	p := &pipe[T]{}
	p.q.Init(capacity)
	return &Sender[T]{p: p}, &Stream[T]{src: p}
}

// Send enqueues v.
func (s *Sender[T]) Send(v T) error {
	if s.p.closed.Load() != 0 {
		return ErrClosed
	}
	return s.p.q.Enqueue(&v)
}

// Close ends the stream with io.EOF once queued items are drained.
func (s *Sender[T]) Close() {
	s.close(io.EOF)
}

// Fail ends the stream with err once queued items are drained.
func (s *Sender[T]) Fail(err *Error) {
	if err == nil {
		panic("kfut: Fail with nil error")
	}
	s.close(err)
}

func (s *Sender[T]) close(err error) {
	if s.p.closed.Load() != 0 {
		return
	}
	s.p.err = err
	s.p.closed.Add(1)
}

// Next implements Source for the consuming side.
func (p *pipe[T]) Next() (T, error) {
	v, err := p.q.Dequeue()
	if err == nil {
		return v, nil
	}
	if p.closed.Load() == 0 {
		var zero T
		return zero, iox.ErrWouldBlock
	}
	// Items may have been queued between the first Dequeue and Close.
	if v, err := p.q.Dequeue(); err == nil {
		return v, nil
	}
	var zero T
	return zero, p.err
}
