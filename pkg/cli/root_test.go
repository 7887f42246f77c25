package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cacheops/ecinv/pkg/elasticache"
)

func TestFallback(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		config   string
		fallback string
		want     string
	}{
		{"flag wins", "us-east-1", "eu-west-1", "us-west-2", "us-east-1"},
		{"config fills empty flag", "", "eu-west-1", "us-west-2", "eu-west-1"},
		{"default fills both", "", "", "us-west-2", "us-west-2"},
		{"all empty", "", "", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, fallback(tc.flag, tc.config, tc.fallback))
		})
	}
}

func TestDescribeError_AppendsHint(t *testing.T) {
	err := &elasticache.PermissionError{
		Operation: "DescribeReplicationGroups",
		Err:       errors.New("not authorized"),
	}

	got := describeError(err)

	assert.Contains(t, got, "Error: permission denied")
	assert.Contains(t, got, "Hint: ")
	assert.Contains(t, got, "IAM policy")
}

func TestDescribeError_FindsWrappedHint(t *testing.T) {
	inner := &elasticache.CredentialsError{Err: errors.New("no providers")}
	wrapped := fmt.Errorf("query failed: %w", inner)

	got := describeError(wrapped)

	assert.Contains(t, got, "Hint: ")
	assert.Contains(t, got, "AWS_ACCESS_KEY_ID")
}

func TestDescribeError_PlainError(t *testing.T) {
	got := describeError(errors.New("something broke"))

	assert.Equal(t, "Error: something broke", got)
}

func TestNew_CommandWiring(t *testing.T) {
	cmd := New()

	assert.Equal(t, "ecinv", cmd.Name)
	names := make([]string, 0, len(cmd.Commands))
	for _, sub := range cmd.Commands {
		names = append(names, sub.Name)
	}
	assert.Contains(t, names, "report")
	assert.Contains(t, names, "fields")
}
