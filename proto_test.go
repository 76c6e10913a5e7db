// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfut_test

import (
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"code.hybscloud.com/kfut"
)

func TestParseProto(t *testing.T) {
	b, err := proto.Marshal(wrapperspb.String("pod-a"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	m, err := kfut.ParseProto[wrapperspb.StringValue](b).Poll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.GetValue() != "pod-a" {
		t.Fatalf("got %q, want %q", m.GetValue(), "pod-a")
	}
}

func TestParseProtoMalformed(t *testing.T) {
	_, err := kfut.ParseProto[wrapperspb.StringValue]([]byte{0xff}).Poll()
	if !kfut.IsDecode(err) {
		t.Fatalf("expected decode error, got %v", err)
	}
	if got := kfut.Wrap(err).Codec(); got != kfut.CodecProtobuf {
		t.Fatalf("codec got %q", got)
	}
}

func TestParseProtoJSON(t *testing.T) {
	m, err := kfut.ParseProtoJSON[wrapperspb.Int64Value]([]byte(`"42"`)).Poll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.GetValue() != 42 {
		t.Fatalf("got %d, want 42", m.GetValue())
	}

	_, err = kfut.ParseProtoJSON[wrapperspb.Int64Value]([]byte(`{"value":`)).Poll()
	if !kfut.IsDecode(err) {
		t.Fatalf("expected decode error, got %v", err)
	}
	if got := kfut.Wrap(err).Codec(); got != kfut.CodecJSON {
		t.Fatalf("codec got %q", got)
	}
}
