// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package meta holds the API payloads shared by every resource, starting with
// the Status body returned by the API server for failed requests.
package meta

import (
	"errors"
	"strconv"

	"code.hybscloud.com/kfut"
)

// Status is the body of a failed API request.
type Status struct {
	Kind       string `json:"kind,omitempty"`
	APIVersion string `json:"apiVersion,omitempty"`
	Status     string `json:"status,omitempty"`
	Message    string `json:"message,omitempty"`
	Reason     string `json:"reason,omitempty"`
	Code       int    `json:"code,omitempty"`
}

// Error implements the error interface.
func (s Status) Error() string {
	msg := s.Message
	if msg == "" {
		msg = s.Reason
	}
	if s.Code == 0 {
		return msg
	}
	return strconv.Itoa(s.Code) + " " + msg
}

// IntoError converts s into an I/O [kfut.Error] with a *Status as the cause,
// so errors.As recovers it from any future failed with it.
func (s Status) IntoError() *kfut.Error {
	return kfut.IOError(&s)
}

// Reason values set by the API server.
const (
	ReasonNotFound      = "NotFound"
	ReasonAlreadyExists = "AlreadyExists"
	ReasonConflict      = "Conflict"
	ReasonInvalid       = "Invalid"
	ReasonForbidden     = "Forbidden"
	ReasonUnauthorized  = "Unauthorized"
)

// IsNotFound reports whether err carries a Status with reason NotFound or
// code 404.
func IsNotFound(err error) bool {
	s, ok := As(err)
	return ok && (s.Reason == ReasonNotFound || s.Code == 404)
}

// As returns the Status carried by err, if any.
func As(err error) (*Status, bool) {
	var s *Status
	if !errors.As(err, &s) {
		return nil, false
	}
	return s, true
}
