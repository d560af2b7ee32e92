package locale

import (
	"context"
	"errors"
	"fmt"

	"i18next-typesafe/core/catalog"
)

// ErrNotFound is returned when a language has no document.
var ErrNotFound = errors.New("locale not found")

// ParseError reports a document that exists but is not a valid catalog.
type ParseError struct {
	// Path names the file, object or table row set that failed.
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Source loads translation documents by language code.
type Source interface {
	// Load returns the document for lang, ErrNotFound when it does not exist
	// and a *ParseError when it is malformed.
	Load(ctx context.Context, lang string) (*catalog.Document, error)
	// Location describes where lang is read from, for messages.
	Location(lang string) string
}

func notFound(location string) error {
	return fmt.Errorf("%s: %w", location, ErrNotFound)
}
