// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfut

import (
	"encoding/base64"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/joeycumines/logiface"
)

// logger is the diagnostic logger. A nil logger disables logging.
var logger atomic.Pointer[logiface.Logger[logiface.Event]]

// SetLogger installs l as the diagnostic logger of the package.
// Passing nil disables logging.
func SetLogger(l *logiface.Logger[logiface.Event]) {
	logger.Store(l)
}

// logResponse logs a raw payload at debug level, before it is decoded.
// Text payloads are decoded lossily as UTF-8; protobuf payloads are logged
// as base64. Nothing is converted unless debug logging is enabled.
func logResponse(codec Codec, b []byte) {
	e := logger.Load().Debug()
	if !e.Enabled() {
		return
	}
	e = e.Str("codec", string(codec))
	if codec == CodecProtobuf {
		e = e.Base64("response", b, base64.StdEncoding)
	} else {
		e = e.Str("response", lossyString(b))
	}
	e.Log("actual response")
}

// lossyString converts b to a string, replacing each maximal invalid UTF-8
// subsequence with one U+FFFD.
func lossyString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b) + 8)
	for len(b) > 0 {
		r, n := utf8.DecodeRune(b)
		if r == utf8.RuneError && n <= 1 {
			sb.WriteRune(utf8.RuneError)
			b = b[invalidPrefix(b):]
			continue
		}
		sb.Write(b[:n])
		b = b[n:]
	}
	return sb.String()
}

// invalidPrefix returns the length of the maximal subpart at the start of b,
// which does not begin a valid encoding: a lead byte followed by as many
// continuation bytes as could still extend it, or 1.
func invalidPrefix(b []byte) int {
	n, lo, hi := 0, byte(0x80), byte(0xBF)
	switch c := b[0]; {
	case c >= 0xC2 && c <= 0xDF:
		n = 2
	case c == 0xE0:
		n, lo = 3, 0xA0
	case c == 0xED:
		n, hi = 3, 0x9F
	case c >= 0xE1 && c <= 0xEF:
		n = 3
	case c == 0xF0:
		n, lo = 4, 0x90
	case c >= 0xF1 && c <= 0xF3:
		n = 4
	case c == 0xF4:
		n, hi = 4, 0x8F
	default:
		return 1
	}
	i := 1
	for ; i < n && i < len(b); i++ {
		c := b[i]
		if i == 1 && (c < lo || c > hi) || i > 1 && (c < 0x80 || c > 0xBF) {
			break
		}
	}
	return i
}
