// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfut

import (
	"bytes"
	"encoding/json"
	"errors"
)

// errNullPayload reports an error payload that decoded from JSON null.
var errNullPayload = errors.New("null error payload")

// Payload is implemented by decoded response bodies that describe a failure.
// IntoError must return a non-nil error.
type Payload interface {
	IntoError() *Error
}

// ParseJSON decodes b as JSON into a T and returns a future resolving to it.
//
// With debug logging enabled, the payload is logged before decoding,
// whatever the outcome. Decoding is synchronous: the future settles on its
// first poll, failing with a JSON decode [*Error] on malformed input.
func ParseJSON[T any](b []byte) *Future[T] {
	logResponse(CodecJSON, b)
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return Fail[T](JSONError(err))
	}
	return Ready(v)
}

// ParseJSONAsErr decodes b as the error payload P and returns a future of U
// failed with the converted payload. If b does not decode as P, the future
// fails with the decode error instead. A JSON null body carries no payload
// and fails as a JSON decode error, whatever P is.
func ParseJSONAsErr[P Payload, U any](b []byte) *Future[U] {
	return AndThen(ParseJSON[P](b), func(p P) *Future[U] {
		if isJSONNull(b) {
			return Fail[U](JSONError(errNullPayload))
		}
		return Fail[U](p.IntoError())
	})
}

func isJSONNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}

// DecodeJSON returns a stream decoding each chunk of chunks with
// [ParseJSON]. A malformed chunk fails the stream at that position.
func DecodeJSON[T any](chunks *Stream[[]byte]) *Stream[T] {
	return AndThenEach(chunks, ParseJSON[T])
}
