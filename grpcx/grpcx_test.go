// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grpcx_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"code.hybscloud.com/kfut"
	"code.hybscloud.com/kfut/grpcx"
	"code.hybscloud.com/kfut/meta"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"nil", nil, codes.OK},
		{"plain", errors.New("x"), codes.Unknown},
		{"decode", kfut.JSONError(errors.New("x")), codes.Internal},
		{"io", kfut.IOError(io.ErrUnexpectedEOF), codes.Unavailable},
		{"canceled", kfut.IOError(context.Canceled), codes.Canceled},
		{"deadline", kfut.IOError(fmt.Errorf("dial: %w", context.DeadlineExceeded)), codes.DeadlineExceeded},
		{"wrapped", fmt.Errorf("list: %w", kfut.JSONError(errors.New("x"))), codes.Internal},
		{"bad request", meta.Status{Code: 400}.IntoError(), codes.InvalidArgument},
		{"unprocessable", meta.Status{Code: 422}.IntoError(), codes.InvalidArgument},
		{"unauthorized", meta.Status{Code: 401}.IntoError(), codes.Unauthenticated},
		{"forbidden", meta.Status{Code: 403}.IntoError(), codes.PermissionDenied},
		{"not found", meta.Status{Code: 404}.IntoError(), codes.NotFound},
		{"conflict", meta.Status{Code: 409}.IntoError(), codes.AlreadyExists},
		{"throttled", meta.Status{Code: 429}.IntoError(), codes.ResourceExhausted},
		{"internal", meta.Status{Code: 500}.IntoError(), codes.Internal},
		{"unavailable", meta.Status{Code: 503}.IntoError(), codes.Unavailable},
		{"timeout", meta.Status{Code: 504}.IntoError(), codes.DeadlineExceeded},
		{"teapot", meta.Status{Code: 418}.IntoError(), codes.Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, grpcx.Code(tt.err))
		})
	}
}

func TestStatus(t *testing.T) {
	assert.Nil(t, grpcx.Status(nil))

	err := meta.Status{Code: 404, Message: "not found"}.IntoError()
	s := grpcx.Status(err)
	require.NotNil(t, s)
	assert.Equal(t, codes.NotFound, s.Code())
	assert.Equal(t, "I/O error: 404 not found", s.Message())
}

func TestUnaryServerInterceptor(t *testing.T) {
	interceptor := grpcx.UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/kube.v1.Pods/Get"}

	t.Run("success", func(t *testing.T) {
		resp, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", resp)
	})

	t.Run("kfut error", func(t *testing.T) {
		_, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
			return nil, kfut.JSONError(errors.New("bad payload"))
		})
		require.Error(t, err)
		s, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.Internal, s.Code())
		assert.Contains(t, s.Message(), "JSON coding error")
	})

	t.Run("other error", func(t *testing.T) {
		plain := errors.New("boom")
		_, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
			return nil, plain
		})
		assert.Same(t, plain, err)
	})
}
