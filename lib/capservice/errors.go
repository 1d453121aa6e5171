// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

package capservice

import (
	"errors"
	"fmt"
)

// ServiceError is a structured error response from the capability
// service: any non-2xx status, with the server's "detail" text when
// the body carried the documented JSON shape. Callers use errors.As
// (or the IsServiceError helper) to extract it:
//
//	var serviceErr *capservice.ServiceError
//	if errors.As(err, &serviceErr) {
//	    show(serviceErr.Detail)
//	}
type ServiceError struct {
	// Detail is the server's human-readable failure description.
	// Empty when the error body was not the documented shape; callers
	// should fall back to generic text.
	Detail string `json:"detail"`
	// StatusCode is the HTTP status of the response.
	StatusCode int `json:"-"`
}

func (e *ServiceError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("capability service: status %d", e.StatusCode)
	}
	return fmt.Sprintf("capability service: %s (%d)", e.Detail, e.StatusCode)
}

// IsServiceError extracts the *ServiceError from an error chain.
// Returns nil, false when the chain holds none (transport and decode
// failures).
func IsServiceError(err error) (*ServiceError, bool) {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return nil, false
}
