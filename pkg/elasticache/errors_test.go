package elasticache

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target any
	}{
		{
			name:   "access denied maps to permission error",
			err:    &smithy.GenericAPIError{Code: "AccessDenied", Message: "not authorized"},
			target: new(*PermissionError),
		},
		{
			name:   "access denied exception maps to permission error",
			err:    &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "not authorized"},
			target: new(*PermissionError),
		},
		{
			name:   "invalid parameter value maps to parameter error",
			err:    &smithy.GenericAPIError{Code: "InvalidParameterValue", Message: "bad value"},
			target: new(*InvalidParameterError),
		},
		{
			name:   "unrecognized API code maps to generic API error",
			err:    &smithy.GenericAPIError{Code: "InternalFailure", Message: "server error"},
			target: new(*APIError),
		},
		{
			name:   "credential resolution failure maps to credentials error",
			err:    errors.New("failed to retrieve credentials: no EC2 IMDS role found"),
			target: new(*CredentialsError),
		},
		{
			name:   "transport failure maps to connection error",
			err:    errors.New("dial tcp: lookup elasticache.us-bad-1.amazonaws.com: no such host"),
			target: new(*ConnectionError),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := classify("DescribeReplicationGroups", "us-east-1", tc.err)
			require.Error(t, got)
			assert.True(t, errors.As(got, tc.target), "expected %T, got %T", tc.target, got)
		})
	}
}

func TestClassify_APIErrorCarriesCodeAndMessage(t *testing.T) {
	got := classify("DescribeCacheClusters", "eu-west-1",
		&smithy.GenericAPIError{Code: "InternalFailure", Message: "server error"})

	var apiErr *APIError
	require.ErrorAs(t, got, &apiErr)
	assert.Equal(t, "DescribeCacheClusters", apiErr.Operation)
	assert.Equal(t, "InternalFailure", apiErr.Code)
	assert.Equal(t, "server error", apiErr.Message)
}

func TestClassify_ContextErrorsPassThrough(t *testing.T) {
	assert.ErrorIs(t, classify("op", "us-east-1", context.Canceled), context.Canceled)
	assert.ErrorIs(t, classify("op", "us-east-1", context.DeadlineExceeded), context.DeadlineExceeded)
	assert.NoError(t, classify("op", "us-east-1", nil))
}

func TestClassify_ConnectionErrorNamesRegion(t *testing.T) {
	got := classify("DescribeReplicationGroups", "ap-southeast-2", errors.New("connection refused"))

	var connErr *ConnectionError
	require.ErrorAs(t, got, &connErr)
	assert.Equal(t, "ap-southeast-2", connErr.Region)
	assert.Contains(t, got.Error(), "ap-southeast-2")
}

func TestErrors_HintsAndUnwrap(t *testing.T) {
	base := errors.New("base")
	tests := []struct {
		name string
		err  interface {
			error
			Unwrap() error
			Hint() string
		}
	}{
		{"permission", &PermissionError{Operation: "DescribeReplicationGroups", Err: base}},
		{"invalid parameter", &InvalidParameterError{Parameter: "region", Value: "us-bad-1", Err: base}},
		{"api", &APIError{Operation: "op", Code: "code", Message: "msg", Err: base}},
		{"credentials", &CredentialsError{Err: base}},
		{"connection", &ConnectionError{Region: "us-east-1", Err: base}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.err, base)
			assert.NotEmpty(t, tc.err.Hint())
			assert.NotEmpty(t, tc.err.Error())
		})
	}
}
