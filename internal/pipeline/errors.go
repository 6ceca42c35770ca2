package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPrecondition tags failures caused by missing or unreadable inputs:
	// absent source paths, an absent edibles list. These map to exit code 2.
	ErrPrecondition = errors.New("precondition failed")
	// ErrLocked tags a registry already held by another run.
	ErrLocked = errors.New("registry locked")
	// ErrInternal tags everything else that stops a run.
	ErrInternal = errors.New("run failed")
)

// Wrap builds an error message that includes run context while tagging it
// with the provided marker for later exit-code classification. The marker
// should be one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrInternal
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
