// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrLoginExists signals a login uniqueness violation on application creation.
	ErrLoginExists = errors.New("login exists")
	// ErrApplicationNotFound signals a missing application.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrDocumentNotFound signals an unknown static document name.
	ErrDocumentNotFound = errors.New("document not found")
)
