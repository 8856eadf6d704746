package domain

import (
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Seed specific errors
	ErrInvalidContent ErrorCode = "INVALID_CONTENT"
	ErrUnknownLevel   ErrorCode = "UNKNOWN_LEVEL"
	ErrSeedFailed     ErrorCode = "SEED_FAILED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewUnknownLevelError(level string) *DomainError {
	return NewError(ErrUnknownLevel, fmt.Sprintf("Unknown level: %q", level), nil)
}

// NewSeedStepError marks the orchestrator step that failed.
func NewSeedStepError(step string, err error) *DomainError {
	return NewError(ErrSeedFailed, fmt.Sprintf("seed step %q failed", step), err)
}

// NewInvalidContentError wraps the collected problems of one topic.
func NewInvalidContentError(topic string, errs ValidationErrors) *DomainError {
	return NewError(ErrInvalidContent, fmt.Sprintf("topic %q has invalid content", topic), errs)
}

// FieldError points at one offending field of a topic collection.
type FieldError struct {
	Topic    string
	Question int // -1 when the problem is on the topic itself
	Answer   int // -1 when the problem is not on an answer
	Field    string
	Reason   string
}

func (e FieldError) Error() string {
	var b strings.Builder
	b.WriteString(e.Topic)
	if e.Question >= 0 {
		fmt.Fprintf(&b, " question[%d]", e.Question)
	}
	if e.Answer >= 0 {
		fmt.Fprintf(&b, " answer[%d]", e.Answer)
	}
	if e.Field != "" {
		b.WriteString(" ")
		b.WriteString(e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	return b.String()
}

// ValidationErrors collects every problem found in one pass.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}
