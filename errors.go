package assetexpl

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("not found")
	// ErrInvalidComposition is matched by every *InvalidCompositionError.
	ErrInvalidComposition = errors.New("invalid composition")
)

// NotFoundError reports a lookup of a language, index, breakdown or label
// that the catalog does not define.
type NotFoundError struct {
	Kind  string // "language", "index", "breakdown", "label", "topic"
	Value string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Value)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// InvalidCompositionError reports a malformed composition. It is a content
// authoring defect and is raised while loading the catalog.
type InvalidCompositionError struct {
	Breakdown string // optional, "geographic" or "sectors"
	Category  string
	Reason    string
}

func (e *InvalidCompositionError) Error() string {
	msg := "invalid composition"
	if e.Breakdown != "" {
		msg += " " + e.Breakdown
	}
	if e.Category != "" {
		msg += fmt.Sprintf(": category %q", e.Category)
	}
	return msg + ": " + e.Reason
}

func (e *InvalidCompositionError) Is(target error) bool { return target == ErrInvalidComposition }
