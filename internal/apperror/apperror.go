// Package apperror defines the failure kinds surfaced by the marketplace
// services and how they map onto HTTP status codes.
package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies a failure.
type Kind int

const (
	Internal Kind = iota
	Validation
	DuplicateEmail
	InvalidCredentials
	Unauthenticated
	TokenInvalid
	TokenExpired
	NotFound
	Forbidden
	InvalidTransition
	InvalidStatus
	ReasonRequired
	ProfileIncomplete
	AddressRequired
	EmptyOrder
	BuyerNotFound
)

var kindNames = map[Kind]string{
	Internal:           "Internal",
	Validation:         "ValidationError",
	DuplicateEmail:     "DuplicateEmail",
	InvalidCredentials: "InvalidCredentials",
	Unauthenticated:    "Unauthenticated",
	TokenInvalid:       "TokenInvalid",
	TokenExpired:       "TokenExpired",
	NotFound:           "NotFound",
	Forbidden:          "Forbidden",
	InvalidTransition:  "InvalidTransition",
	InvalidStatus:      "InvalidStatus",
	ReasonRequired:     "ReasonRequired",
	ProfileIncomplete:  "ProfileIncomplete",
	AddressRequired:    "AddressRequired",
	EmptyOrder:         "EmptyOrder",
	BuyerNotFound:      "BuyerNotFound",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Error is a classified failure. Message is safe to show to clients; Err is
// the underlying cause and is only ever logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies an existing error.
func Wrap(kind Kind, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of err, or Internal for unclassified errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Internal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// PublicMessage returns the client-facing message for err. Unclassified and
// internal errors collapse to the fallback so causes never leak.
func PublicMessage(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != Internal {
		return appErr.Message
	}
	return fallback
}

// HTTPStatus maps a kind onto its response status.
func HTTPStatus(kind Kind) int {
	switch kind {
	case Validation, DuplicateEmail, InvalidTransition, InvalidStatus,
		ReasonRequired, ProfileIncomplete, AddressRequired, EmptyOrder:
		return http.StatusBadRequest
	case InvalidCredentials, Unauthenticated, TokenInvalid, TokenExpired:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound, BuyerNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
