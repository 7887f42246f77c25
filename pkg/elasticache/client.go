package elasticache

import (
	"context"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/elasticache"
	"golang.org/x/time/rate"
)

const (
	maxAttempts      = 3
	baseRetryDelay   = time.Second
	defaultRateLimit = rate.Limit(10)
	defaultRateBurst = 5
)

// API is the subset of the ElastiCache control-plane surface the tool
// depends on. It is satisfied by *elasticache.Client and by test fakes,
// and each method is compatible with the SDK's generated paginators.
type API interface {
	elasticache.DescribeGlobalReplicationGroupsAPIClient
	elasticache.DescribeReplicationGroupsAPIClient
	elasticache.DescribeCacheClustersAPIClient
	elasticache.DescribeCacheParametersAPIClient
}

// Client is a region-bound ElastiCache querier. It decorates the raw
// SDK client with rate limiting, throttle retry, and error
// classification, and implements the four query layers.
//
// Clients are not shared across concurrent regional tasks; each task
// gets its own instance from a Factory.
type Client struct {
	api     API
	region  string
	limiter *rate.Limiter
	params  *ParameterCache

	// retrySleep is swapped out in tests to avoid real backoff waits.
	retrySleep func(context.Context, time.Duration) error
}

// Factory builds a region-bound Client. The parameter cache is shared
// across every client the factory produces.
type Factory struct {
	Profile string
	Params  *ParameterCache
}

// NewClient builds a Client for one region using the ambient
// credential/profile resolution of the AWS SDK. The SDK's own retryer
// is disabled; retry policy lives in this package.
func (f *Factory) NewClient(ctx context.Context, region string) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
		awsconfig.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	}
	if f.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(f.Profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, &CredentialsError{Err: err}
	}

	params := f.Params
	if params == nil {
		params = NewParameterCache()
	}

	slog.Debug("initialized ElastiCache client", "region", region, "profile", f.Profile)

	return NewClientWithAPI(elasticache.NewFromConfig(cfg), region, params), nil
}

// NewClientWithAPI wraps an existing API implementation. Used directly
// by tests.
func NewClientWithAPI(api API, region string, params *ParameterCache) *Client {
	return &Client{
		api:     api,
		region:  region,
		limiter: rate.NewLimiter(defaultRateLimit, defaultRateBurst),
		params:  params,
		retrySleep: func(ctx context.Context, d time.Duration) error {
			timer := time.NewTimer(d)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
				return nil
			}
		},
	}
}

// Region returns the region this client is bound to.
func (c *Client) Region() string { return c.region }

// invoke runs one API call through the rate limiter, retrying throttle
// responses with exponential backoff and classifying the final error.
func (c *Client) invoke(ctx context.Context, operation string, call func(context.Context) error) error {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		err := call(ctx)
		if err == nil {
			return nil
		}

		if isThrottle(err) && attempt < maxAttempts-1 {
			wait := baseRetryDelay * (1 << attempt)
			slog.Warn("API throttled, retrying",
				"operation", operation,
				"region", c.region,
				"wait", wait,
				"attempt", attempt+1,
				"maxAttempts", maxAttempts)
			apiRetryTotal.WithLabelValues(operation).Inc()
			if serr := c.retrySleep(ctx, wait); serr != nil {
				return serr
			}
			continue
		}

		return classify(operation, c.region, err)
	}
	return nil
}

// The wrapped Describe methods below make *Client itself satisfy API,
// so SDK paginators constructed over the Client inherit rate limiting,
// retry, and error classification on every page fetch.

func (c *Client) DescribeGlobalReplicationGroups(ctx context.Context, in *elasticache.DescribeGlobalReplicationGroupsInput, optFns ...func(*elasticache.Options)) (*elasticache.DescribeGlobalReplicationGroupsOutput, error) {
	var out *elasticache.DescribeGlobalReplicationGroupsOutput
	err := c.invoke(ctx, "DescribeGlobalReplicationGroups", func(ctx context.Context) error {
		var callErr error
		out, callErr = c.api.DescribeGlobalReplicationGroups(ctx, in, optFns...)
		return callErr
	})
	return out, err
}

func (c *Client) DescribeReplicationGroups(ctx context.Context, in *elasticache.DescribeReplicationGroupsInput, optFns ...func(*elasticache.Options)) (*elasticache.DescribeReplicationGroupsOutput, error) {
	var out *elasticache.DescribeReplicationGroupsOutput
	err := c.invoke(ctx, "DescribeReplicationGroups", func(ctx context.Context) error {
		var callErr error
		out, callErr = c.api.DescribeReplicationGroups(ctx, in, optFns...)
		return callErr
	})
	return out, err
}

func (c *Client) DescribeCacheClusters(ctx context.Context, in *elasticache.DescribeCacheClustersInput, optFns ...func(*elasticache.Options)) (*elasticache.DescribeCacheClustersOutput, error) {
	var out *elasticache.DescribeCacheClustersOutput
	err := c.invoke(ctx, "DescribeCacheClusters", func(ctx context.Context) error {
		var callErr error
		out, callErr = c.api.DescribeCacheClusters(ctx, in, optFns...)
		return callErr
	})
	return out, err
}

func (c *Client) DescribeCacheParameters(ctx context.Context, in *elasticache.DescribeCacheParametersInput, optFns ...func(*elasticache.Options)) (*elasticache.DescribeCacheParametersOutput, error) {
	var out *elasticache.DescribeCacheParametersOutput
	err := c.invoke(ctx, "DescribeCacheParameters", func(ctx context.Context) error {
		var callErr error
		out, callErr = c.api.DescribeCacheParameters(ctx, in, optFns...)
		return callErr
	})
	return out, err
}
