package domain

import (
	"errors"
	"fmt"
)

// Stage identifies the pipeline step an ExtractionError originated from.
type Stage string

const (
	StageFetch     Stage = "fetch"
	StageNormalize Stage = "normalize"
)

var ErrEmptyURL = errors.New("url is empty")

// FetchError is returned when no fetch strategy produced a usable fragment.
// Attempts holds the cause of every strategy that ran, in order.
type FetchError struct {
	URL      string
	Attempts []error
}

func (e *FetchError) Error() string {
	if len(e.Attempts) == 0 {
		return fmt.Sprintf("fetch %s: no strategy produced metadata", e.URL)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Attempts[len(e.Attempts)-1])
}

func (e *FetchError) Unwrap() []error {
	return e.Attempts
}

// ConfigurationError marks a missing or invalid deployment setting, as opposed to a transient failure.
type ConfigurationError struct {
	Setting string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Setting, e.Message)
}

func MissingSetting(setting string) *ConfigurationError {
	return &ConfigurationError{Setting: setting, Message: "not configured"}
}

// NormalizationError covers model call failures and output that does not match the ToolRecord contract.
type NormalizationError struct {
	Message string
	Err     error
}

func (e *NormalizationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("normalization: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("normalization: %s", e.Message)
}

func (e *NormalizationError) Unwrap() error {
	return e.Err
}

func NewNormalizationError(message string, err error) *NormalizationError {
	return &NormalizationError{Message: message, Err: err}
}

// ExtractionError wraps a stage failure for the caller.
type ExtractionError struct {
	Stage Stage
	Err   error
}

func (e *ExtractionError) Error() string {
	switch e.Stage {
	case StageFetch:
		return fmt.Sprintf("fetch failed: %v", e.Err)
	case StageNormalize:
		return fmt.Sprintf("normalization failed: %v", e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
