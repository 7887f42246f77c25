package elasticache

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
)

// PermissionError indicates the caller's IAM identity is not allowed to
// perform a describe operation. Not retryable.
type PermissionError struct {
	Operation string
	Err       error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied for %s: %v", e.Operation, e.Err)
}

func (e *PermissionError) Unwrap() error { return e.Err }

// Hint returns a remediation suggestion for the operator.
func (e *PermissionError) Hint() string {
	return "verify the profile's IAM policy grants elasticache:Describe* permissions"
}

// InvalidParameterError indicates the API rejected a request parameter.
type InvalidParameterError struct {
	Parameter string
	Value     string
	Err       error
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%q: %v", e.Parameter, e.Value, e.Err)
}

func (e *InvalidParameterError) Unwrap() error { return e.Err }

func (e *InvalidParameterError) Hint() string {
	return "check the request parameter values"
}

// APIError is the catch-all for provider API failures that do not map
// to a more specific kind.
type APIError struct {
	Operation string
	Code      string
	Message   string
	Err       error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s failed (%s): %s", e.Operation, e.Code, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

func (e *APIError) Hint() string {
	return "check the AWS service health dashboard or retry later"
}

// CredentialsError indicates no usable AWS credentials could be
// resolved. Fatal, not retryable.
type CredentialsError struct {
	Err error
}

func (e *CredentialsError) Error() string {
	return fmt.Sprintf("unable to resolve AWS credentials: %v", e.Err)
}

func (e *CredentialsError) Unwrap() error { return e.Err }

func (e *CredentialsError) Hint() string {
	return "configure the AWS CLI profile or set AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY"
}

// ConnectionError indicates a transport-level failure reaching the
// regional endpoint.
type ConnectionError struct {
	Region string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("unable to reach ElastiCache endpoint in %s: %v", e.Region, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

func (e *ConnectionError) Hint() string {
	return "check network connectivity and that the region name is valid"
}

// throttleCodes are the API error codes eligible for retry with backoff.
var throttleCodes = map[string]bool{
	"Throttling":               true,
	"ThrottlingException":      true,
	"RequestLimitExceeded":     true,
	"TooManyRequestsException": true,
}

// permissionCodes fail immediately without retry.
var permissionCodes = map[string]bool{
	"AccessDenied":          true,
	"AccessDeniedException": true,
	"UnauthorizedOperation": true,
}

var invalidParameterCodes = map[string]bool{
	"InvalidParameterValue":       true,
	"InvalidParameterCombination": true,
}

func isThrottle(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && throttleCodes[apiErr.ErrorCode()]
}

func isCredentials(err error) bool {
	// The SDK has no single sentinel for missing credentials; the
	// resolver chain surfaces them as operation errors whose message
	// names the credential source.
	msg := err.Error()
	return strings.Contains(msg, "credentials") ||
		strings.Contains(msg, "no EC2 IMDS role found")
}

// classify maps a raw SDK error to the tool's error taxonomy. Context
// cancellation passes through untouched so callers can detect it with
// errors.Is.
func classify(operation, region string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		switch {
		case permissionCodes[code]:
			return &PermissionError{Operation: operation, Err: err}
		case invalidParameterCodes[code]:
			return &InvalidParameterError{Parameter: "unknown", Value: "unknown", Err: err}
		default:
			return &APIError{
				Operation: operation,
				Code:      code,
				Message:   apiErr.ErrorMessage(),
				Err:       err,
			}
		}
	}

	if isCredentials(err) {
		return &CredentialsError{Err: err}
	}

	return &ConnectionError{Region: region, Err: err}
}
