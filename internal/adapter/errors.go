// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthFailed is returned when no session token could be obtained.
	ErrAuthFailed = errors.New("backend authentication failed")
	// ErrNotAuthenticated is returned by Token before a successful login.
	ErrNotAuthenticated = errors.New("session not authenticated")
	// ErrCredentialsRejected means the backend answered but refused the
	// credentials. It is never retried.
	ErrCredentialsRejected = errors.New("credentials rejected")
	// ErrRemoteCallFailed matches every *RemoteCallError.
	ErrRemoteCallFailed = errors.New("remote call failed")
	// ErrRecordNotFound is returned by lookups that expect one record.
	ErrRecordNotFound = errors.New("record not found")
	// ErrUnexpectedResponse means a result could not be decoded.
	ErrUnexpectedResponse = errors.New("unexpected backend response")

	// HTTP-level failures of the transport.
	ErrEndpointNotFound   = errors.New("backend endpoint not found")
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrUnexpectedStatus   = errors.New("unexpected backend http status")
)

// RemoteCallError is the final error of a remote call that exhausted its
// attempts. It matches both ErrRemoteCallFailed and the last underlying error.
type RemoteCallError struct {
	Model    string
	Method   string
	Attempts int
	Err      error
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("%s.%s failed after %d attempt(s): %v", e.Model, e.Method, e.Attempts, e.Err)
}

func (e *RemoteCallError) Unwrap() []error {
	return []error{ErrRemoteCallFailed, e.Err}
}

// RPCError is a fault returned in a JSON-RPC error member.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"data"`
}

func (e *RPCError) Error() string {
	if e.Data.Message != "" {
		return fmt.Sprintf("rpc fault %d: %s: %s", e.Code, e.Message, e.Data.Message)
	}
	return fmt.Sprintf("rpc fault %d: %s", e.Code, e.Message)
}
