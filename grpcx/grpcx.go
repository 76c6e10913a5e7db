// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package grpcx projects kfut errors onto gRPC statuses, for services that
// expose kube client results over gRPC.
package grpcx

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"code.hybscloud.com/kfut"
	"code.hybscloud.com/kfut/meta"
)

// Code maps err to a gRPC code.
//
//   - nil: OK
//   - decode errors: Internal
//   - I/O errors carrying a meta.Status: derived from the HTTP status code
//   - I/O errors caused by context cancellation or deadline: Canceled, DeadlineExceeded
//   - other I/O errors: Unavailable
//   - errors outside the taxonomy: Unknown
func Code(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	var e *kfut.Error
	if !errors.As(err, &e) {
		return codes.Unknown
	}
	switch e.Kind() {
	case kfut.KindDecode:
		return codes.Internal
	case kfut.KindIO:
		if s, ok := meta.As(e); ok {
			return httpCode(s.Code)
		}
		switch {
		case errors.Is(e, context.Canceled):
			return codes.Canceled
		case errors.Is(e, context.DeadlineExceeded):
			return codes.DeadlineExceeded
		}
		return codes.Unavailable
	}
	return codes.Unknown
}

func httpCode(code int) codes.Code {
	switch code {
	case 400, 422:
		return codes.InvalidArgument
	case 401:
		return codes.Unauthenticated
	case 403:
		return codes.PermissionDenied
	case 404:
		return codes.NotFound
	case 409:
		return codes.AlreadyExists
	case 429:
		return codes.ResourceExhausted
	case 500:
		return codes.Internal
	case 503:
		return codes.Unavailable
	case 504:
		return codes.DeadlineExceeded
	}
	return codes.Unknown
}

// Status returns the gRPC status for err, with err's message.
// A nil err yields nil.
func Status(err error) *status.Status {
	if err == nil {
		return nil
	}
	return status.New(Code(err), err.Error())
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// kfut errors returned by handlers to gRPC status errors. Other errors are
// returned as-is.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		var e *kfut.Error
		if !errors.As(err, &e) {
			return nil, err
		}
		return nil, Status(err).Err()
	}
}
