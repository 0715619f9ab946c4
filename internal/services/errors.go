// Package services defines the business logic of the content gateway.
// This file centralizes the service-level error types so that they can be
// consistently returned by service methods and checked by callers.
//
// Only two failure kinds leave the gateway: *ValidationError (caller input
// was incomplete; no provider call was made) and *ProviderError (the single
// provider call failed or timed out; it is never retried). Translation into
// HTTP status codes happens in the handler layer.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tbourn/go-content-gateway/internal/domain"
)

// ErrHistoryDisabled is returned by history reads when the audit log is off.
var ErrHistoryDisabled = errors.New("generation history is disabled")

// FieldError describes one rejected input field.
type FieldError struct {
	Field  string `json:"field"  example:"niche"`
	Reason string `json:"reason" example:"is required"`
}

func (f FieldError) String() string { return f.Field + " " + f.Reason }

// ValidationError reports every missing or invalid field of a request.
type ValidationError struct {
	Kind   domain.Kind
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, "; ")
}

// Missing lists the names of fields rejected for being empty.
func (e *ValidationError) Missing() []string {
	var out []string
	for _, f := range e.Fields {
		if f.Reason == reasonRequired {
			out = append(out, f.Field)
		}
	}
	return out
}

// ProviderError wraps a failed provider call.
type ProviderError struct {
	Kind     domain.Kind
	Provider string
	Model    string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s generation failed (%s/%s): %v", e.Kind, e.Provider, e.Model, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Timeout reports whether the call hit the configured provider deadline.
func (e *ProviderError) Timeout() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// AsProviderError unwraps err into a *ProviderError.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	ok := errors.As(err, &pe)
	return pe, ok
}

const (
	reasonRequired = "is required"
)

// fieldCollector accumulates FieldErrors in request field order.
type fieldCollector struct {
	fields []FieldError
}

func (fc *fieldCollector) require(name, v string) {
	if v == "" {
		fc.add(name, reasonRequired)
	}
}

func (fc *fieldCollector) add(name, reason string) {
	fc.fields = append(fc.fields, FieldError{Field: name, Reason: reason})
}

func (fc *fieldCollector) err(kind domain.Kind) error {
	if len(fc.fields) == 0 {
		return nil
	}
	return &ValidationError{Kind: kind, Fields: fc.fields}
}
