package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// ValidationError reports missing or unusable user input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ServiceError is a failure reported by the generation service itself:
// quota, authentication, malformed request and the like.
type ServiceError struct {
	Provider string
	Code     int
	Status   string
	Message  string
	Err      error
}

func (e *ServiceError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("%s: %d %s: %s", e.Provider, e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %d: %s", e.Provider, e.Code, e.Message)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// Detail returns the full provider error text.
func (e *ServiceError) Detail() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Error()
}

// UnexpectedError is any other failure during the call: transport, timeout,
// decoding.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return e.Err.Error()
}

func (e *UnexpectedError) Unwrap() error { return e.Err }

// Detail returns the error together with its concrete type.
func (e *UnexpectedError) Detail() string {
	return fmt.Sprintf("%T: %v", e.Err, e.Err)
}

// ClassifyError maps a backend error onto ServiceError or UnexpectedError.
// Errors that are already classified are returned unchanged.
func ClassifyError(provider string, err error) error {
	if err == nil {
		return nil
	}

	var svcErr *ServiceError
	var unexpErr *UnexpectedError
	if errors.As(err, &svcErr) || errors.As(err, &unexpErr) {
		return err
	}

	var gErr genai.APIError
	if errors.As(err, &gErr) {
		return &ServiceError{Provider: provider, Code: gErr.Code, Status: gErr.Status, Message: gErr.Message, Err: err}
	}
	var gErrPtr *genai.APIError
	if errors.As(err, &gErrPtr) && gErrPtr != nil {
		return &ServiceError{Provider: provider, Code: gErrPtr.Code, Status: gErrPtr.Status, Message: gErrPtr.Message, Err: err}
	}

	var oaErr *openai.APIError
	if errors.As(err, &oaErr) {
		return &ServiceError{
			Provider: provider,
			Code:     oaErr.HTTPStatusCode,
			Status:   http.StatusText(oaErr.HTTPStatusCode),
			Message:  oaErr.Message,
			Err:      err,
		}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &ServiceError{
			Provider: provider,
			Code:     reqErr.HTTPStatusCode,
			Status:   http.StatusText(reqErr.HTTPStatusCode),
			Message:  reqErr.Error(),
			Err:      err,
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &UnexpectedError{Err: fmt.Errorf("%s: request timed out: %w", provider, err)}
	}
	return &UnexpectedError{Err: err}
}
