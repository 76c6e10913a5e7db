// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfut

import (
	"bytes"
	"io"

	"code.hybscloud.com/iox"
)

// linesChunk is the read size of a Lines source.
const linesChunk = 4096

// lineSource splits a reader into newline-delimited frames.
type lineSource struct {
	r   io.Reader
	buf []byte
	err error // terminal: io.EOF or *Error
}

// Lines returns a stream of the newline-delimited frames read from r, as
// used by watch responses. Empty frames are skipped, a trailing "\r" is
// dropped, and a final frame without a newline is still delivered at io.EOF.
//
// r may be non-blocking: iox.ErrWouldBlock from r leaves the stream pending
// without losing buffered bytes, and iox.ErrMore counts as progress. Other
// read failures end the stream with an I/O [*Error]; complete frames read
// before the failure are delivered first, a trailing partial frame is not.
func Lines(r io.Reader) *Stream[[]byte] {
	return &Stream[[]byte]{src: &lineSource{r: r}}
}

func (l *lineSource) Next() ([]byte, error) {
	for {
		if frame, ok := l.frame(); ok {
			return frame, nil
		}
		if l.err != nil {
			// An unterminated frame is complete only at a clean end of input.
			if l.err == io.EOF && len(l.buf) > 0 {
				frame := trimFrame(l.buf)
				l.buf = nil
				if len(frame) > 0 {
					return frame, nil
				}
			}
			l.buf = nil
			return nil, l.err
		}
		if !l.fill() {
			return nil, iox.ErrWouldBlock
		}
	}
}

// frame pops the next non-empty complete frame from the buffer.
func (l *lineSource) frame() ([]byte, bool) {
	for {
		i := bytes.IndexByte(l.buf, '\n')
		if i < 0 {
			return nil, false
		}
		frame := trimFrame(l.buf[:i])
		l.buf = l.buf[i+1:]
		if len(frame) > 0 {
			return frame, true
		}
	}
}

// fill reads once from r. It reports false when no progress was made and
// the caller should report not-ready.
func (l *lineSource) fill() bool {
	var chunk [linesChunk]byte
	n, err := l.r.Read(chunk[:])
	l.buf = append(l.buf, chunk[:n]...)
	switch {
	case iox.IsNonFailure(err):
		return n > 0
	case err == io.EOF:
		l.err = io.EOF
	default:
		l.err = IOError(err)
	}
	return true
}

func trimFrame(b []byte) []byte {
	b = bytes.TrimSuffix(b, []byte{'\r'})
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
