// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfut

import (
	"encoding/json"
	"errors"

	"google.golang.org/protobuf/proto"
)

// Kind classifies an [*Error]. The set is closed.
type Kind uint8

const (
	// KindDecode means a codec could not decode a payload.
	KindDecode Kind = iota + 1
	// KindIO means the I/O subsystem failed.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Codec names the codec behind a [KindDecode] error.
type Codec string

const (
	CodecJSON     Codec = "JSON"
	CodecProtobuf Codec = "protobuf"
)

// Error is the error type reported by every fallible operation in kfut.
//
// Decode errors keep the codec's error for display only. I/O errors keep
// their cause as a chain link, so errors.Is and errors.As walk through it.
type Error struct {
	kind  Kind
	codec Codec
	err   error
}

// JSONError converts a JSON codec failure.
func JSONError(err error) *Error {
	return &Error{kind: KindDecode, codec: CodecJSON, err: err}
}

// ProtoError converts a protobuf codec failure.
func ProtoError(err error) *Error {
	return &Error{kind: KindDecode, codec: CodecProtobuf, err: err}
}

// IOError converts an I/O failure, keeping err as the cause.
func IOError(err error) *Error {
	return &Error{kind: KindIO, err: err}
}

// Wrap converts err at a conversion boundary.
//
// A nil err yields nil. An *Error found in the chain is returned as is.
// encoding/json syntax and type errors become JSON decode errors, errors of
// the protobuf module become protobuf decode errors, and anything else is
// an I/O error.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		targetErr *json.InvalidUnmarshalError
	)
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.As(err, &targetErr) {
		return JSONError(err)
	}
	if errors.Is(err, proto.Error) {
		return ProtoError(err)
	}
	return IOError(err)
}

// The accessors are safe on a nil *Error, which has no kind.

// Kind returns the failure kind.
func (e *Error) Kind() Kind {
	if e == nil {
		return 0
	}
	return e.kind
}

// Codec returns the codec of a decode error, or "" for I/O errors.
func (e *Error) Codec() Codec {
	if e == nil {
		return ""
	}
	return e.codec
}

// Err returns the underlying codec or I/O error.
func (e *Error) Err() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := "<nil>"
	if e.err != nil {
		msg = e.err.Error()
	}
	if e.kind == KindDecode {
		return string(e.codec) + " coding error: " + msg
	}
	return "I/O error: " + msg
}

// Unwrap returns the cause of an I/O error. Decode errors end the chain.
func (e *Error) Unwrap() error {
	if e == nil || e.kind != KindIO {
		return nil
	}
	return e.err
}

// IsDecode reports whether err is, or wraps, a decode [*Error].
func IsDecode(err error) bool { return kindOf(err) == KindDecode }

// IsIO reports whether err is, or wraps, an I/O [*Error].
func IsIO(err error) bool { return kindOf(err) == KindIO }

func kindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return 0
}
