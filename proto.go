// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfut

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// Message constrains P to be a pointer to M implementing proto.Message.
type Message[M any] interface {
	*M
	proto.Message
}

// ParseProto decodes b in the protobuf wire format and returns a future
// resolving to the message. With debug logging enabled, the payload is
// logged as base64 before decoding.
//
//	f := kfut.ParseProto[wrapperspb.StringValue](b)
func ParseProto[M any, P Message[M]](b []byte) *Future[P] {
	logResponse(CodecProtobuf, b)
	m := P(new(M))
	if err := proto.Unmarshal(b, m); err != nil {
		return Fail[P](ProtoError(err))
	}
	return Ready(m)
}

// ParseProtoJSON decodes b with the protobuf JSON mapping. Failures are JSON
// decode errors.
func ParseProtoJSON[M any, P Message[M]](b []byte) *Future[P] {
	logResponse(CodecJSON, b)
	m := P(new(M))
	if err := protojson.Unmarshal(b, m); err != nil {
		return Fail[P](JSONError(err))
	}
	return Ready(m)
}
