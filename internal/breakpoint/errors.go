package breakpoint

import (
	"errors"
	"fmt"

	"github.com/sahilm/fuzzy"
)

var (
	// ErrNoProvider is returned when breakpoint state is read outside a Provide scope.
	ErrNoProvider = errors.New("breakpoint: must be used within a breakpoint provider")

	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("breakpoint not found")
)

// NotFoundError reports a label that is absent from the configured mapping.
type NotFoundError struct {
	Label string
	// Suggestion is the closest configured label, if any matched.
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("breakpoint %q not found (did you mean %q?)", e.Label, e.Suggestion)
	}
	return fmt.Sprintf("breakpoint %q not found", e.Label)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func notFound(label string, t Table) *NotFoundError {
	err := &NotFoundError{Label: label}
	if label == "" || len(t) == 0 {
		return err
	}
	// fuzzy matches the pattern's characters in order, which catches
	// dropped characters; the reverse search catches extra ones and keeps
	// the longest label it finds.
	if matches := fuzzy.Find(label, t.Labels()); len(matches) > 0 {
		err.Suggestion = matches[0].Str
		return err
	}
	for _, e := range t {
		if len(e.Label) > len(err.Suggestion) && len(fuzzy.Find(e.Label, []string{label})) > 0 {
			err.Suggestion = e.Label
		}
	}
	return err
}

// Must returns ok, panicking if err is non-nil. It suits call sites where an
// unknown label is a programming error:
//
//	if breakpoint.Must(r.SmallerThan("md")) { ... }
func Must(ok bool, err error) bool {
	if err != nil {
		panic(err)
	}
	return ok
}
