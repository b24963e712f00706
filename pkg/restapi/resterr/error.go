/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	SystemError  ErrorCode = "system-error"
	BadRequest   ErrorCode = "bad-request"
	InvalidValue ErrorCode = "invalid-value"
	DataNotFound ErrorCode = "data-not-found"
	Conflict     ErrorCode = "conflict"
	StorageError ErrorCode = "storage-error"
	SigningError ErrorCode = "signing-error"
	Unauthorized ErrorCode = "unauthorized"
)

func (c ErrorCode) Name() string {
	return string(c)
}

type CustomError struct {
	Code            ErrorCode
	IncorrectValue  string
	FailedOperation string
	ErrorComponent  Component
	Err             error
}

func NewSystemError(component Component, failedOperation string, err error) *CustomError {
	return &CustomError{
		Code:            SystemError,
		FailedOperation: failedOperation,
		ErrorComponent:  component,
		Err:             err,
	}
}

func NewValidationError(code ErrorCode, incorrectValue string, err error) *CustomError {
	return &CustomError{
		Code:           code,
		IncorrectValue: incorrectValue,
		Err:            err,
	}
}

func NewCustomError(code ErrorCode, err error) *CustomError {
	return &CustomError{
		Code: code,
		Err:  err,
	}
}

func NewUnauthorizedError(err error) *CustomError {
	return &CustomError{
		Code: Unauthorized,
		Err:  err,
	}
}

func (e *CustomError) Error() string {
	if e.IncorrectValue != "" {
		return fmt.Sprintf("%s[%s]: %v", e.Code, e.IncorrectValue, e.Err)
	}

	if e.ErrorComponent != "" || e.FailedOperation != "" {
		return fmt.Sprintf("%s[%s, %s]: %v", e.Code, e.ErrorComponent, e.FailedOperation, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// HTTPCodeMsg maps the error to its HTTP status code and response body.
func (e *CustomError) HTTPCodeMsg() (int, interface{}) {
	var code int

	switch e.Code {
	case SystemError:
		code = http.StatusInternalServerError
	case DataNotFound:
		code = http.StatusNotFound
	case Unauthorized:
		code = http.StatusUnauthorized
	case BadRequest, InvalidValue, Conflict, StorageError, SigningError:
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}

	m := map[string]interface{}{
		"code":    e.Code.Name(),
		"message": e.Err.Error(),
	}

	if e.IncorrectValue != "" {
		m["incorrectValue"] = e.IncorrectValue
	}

	if e.ErrorComponent != "" {
		m["component"] = string(e.ErrorComponent)
	}

	if e.FailedOperation != "" {
		m["operation"] = e.FailedOperation
	}

	return code, m
}

// GetErrorDetails unwraps err to the underlying CustomError details, falling
// back to the plain error message.
func GetErrorDetails(err error) (string, string, Component) {
	var customErr *CustomError

	if errors.As(err, &customErr) {
		return customErr.Err.Error(), customErr.Code.Name(), customErr.ErrorComponent
	}

	return err.Error(), "", ""
}
