// Package apperr defines the error kinds returned by the stores and use cases.
// Callers branch on Kind; the CLI prints the message and lets the operator retry.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is the category of a failure.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation marks malformed input (customer fields, dates, numbers).
	KindValidation
	// KindNotFound marks an article missing from the catalog.
	KindNotFound
	// KindInsufficientStock marks a quantity above the live stock.
	KindInsufficientStock
	// KindEmptyCart marks a commit with no lines.
	KindEmptyCart
	// KindPersistence marks a failed durable read or write.
	KindPersistence
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation_error"
	case KindNotFound:
		return "not_found"
	case KindInsufficientStock:
		return "insufficient_stock"
	case KindEmptyCart:
		return "empty_cart"
	case KindPersistence:
		return "persistence_error"
	case KindInternal:
		return "internal_error"
	default:
		return "unknown_error"
	}
}

// Error is a typed failure. Article is set when the failure concerns one product.
type Error struct {
	Kind    Kind
	Message string
	Article string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation creates a validation error.
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// NotFound creates a not found error for an article.
func NotFound(article string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("article %q not found", article), Article: article}
}

// InsufficientStock creates an error naming the article whose stock cannot cover requested.
func InsufficientStock(article string, requested, available int64) *Error {
	return &Error{
		Kind:    KindInsufficientStock,
		Message: fmt.Sprintf("insufficient stock for %q: requested %d, available %d", article, requested, available),
		Article: article,
	}
}

// EmptyCart creates an empty cart error.
func EmptyCart() *Error {
	return New(KindEmptyCart, "cart is empty")
}

// Persistence wraps a storage failure.
func Persistence(message string, err error) *Error {
	return Wrap(KindPersistence, message, err)
}

// GetKind extracts the kind from anywhere in the error chain.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && GetKind(err) == kind
}
