package elasticache

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticache"
	"golang.org/x/sync/singleflight"
)

const (
	paramSlowLogThreshold  = "slowlog-log-slower-than"
	paramSlowLogMaxEntries = "slowlog-max-len"

	// Engine-documented defaults, applied only when slow-log delivery
	// is confirmed active but the parameter values are absent.
	defaultSlowLogThresholdMicros = 10000
	defaultSlowLogMaxEntries      = 128
)

// SlowLogParams holds the two slow-log tuning parameters of a cache
// parameter group. A zero threshold means the slow log is disabled and
// must be preserved as such.
type SlowLogParams struct {
	ThresholdMicros int64
	MaxEntries      int64
}

func defaultSlowLogParams() SlowLogParams {
	return SlowLogParams{
		ThresholdMicros: defaultSlowLogThresholdMicros,
		MaxEntries:      defaultSlowLogMaxEntries,
	}
}

// ParameterCache memoizes parameter-group lookups (layer 4). One
// instance is shared by every regional client in a run; parameter
// groups are immutable configuration objects, safe to cache for the
// run's lifetime.
//
// Concurrent lookups of the same uncached name are collapsed into a
// single API call via singleflight; the lock is held only for map
// access, never across the network call.
type ParameterCache struct {
	mu      sync.Mutex
	entries map[string]SlowLogParams
	flight  singleflight.Group
}

// NewParameterCache creates an empty cache.
func NewParameterCache() *ParameterCache {
	return &ParameterCache{entries: make(map[string]SlowLogParams)}
}

// Resolve returns the slow-log parameters for a named parameter group,
// querying the API through the given client on a cache miss. Lookup
// failure never propagates: the caller gets the documented defaults and
// nothing is cached, so a later call may retry.
func (p *ParameterCache) Resolve(ctx context.Context, api elasticache.DescribeCacheParametersAPIClient, name string) SlowLogParams {
	p.mu.Lock()
	if params, ok := p.entries[name]; ok {
		p.mu.Unlock()
		paramCacheLookups.WithLabelValues("hit").Inc()
		return params
	}
	p.mu.Unlock()

	paramCacheLookups.WithLabelValues("miss").Inc()

	value, err, _ := p.flight.Do(name, func() (any, error) {
		params, err := querySlowLogParams(ctx, api, name)
		if err != nil {
			return nil, err
		}
		p.mu.Lock()
		p.entries[name] = params
		p.mu.Unlock()
		return params, nil
	})
	if err != nil {
		slog.Warn("parameter group lookup failed, using defaults",
			"parameterGroup", name, "error", err)
		return defaultSlowLogParams()
	}

	return value.(SlowLogParams)
}

// Clear drops every cached entry.
func (p *ParameterCache) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = make(map[string]SlowLogParams)
}

// querySlowLogParams paginates the parameter listing and extracts the
// two slow-log values, starting from the documented defaults. A value
// of "0" is semantically "disabled" and is preserved; unparsable values
// leave the default untouched.
func querySlowLogParams(ctx context.Context, api elasticache.DescribeCacheParametersAPIClient, name string) (SlowLogParams, error) {
	slog.Debug("querying parameter group", "parameterGroup", name)

	params := defaultSlowLogParams()
	paginator := elasticache.NewDescribeCacheParametersPaginator(api,
		&elasticache.DescribeCacheParametersInput{
			CacheParameterGroupName: aws.String(name),
		})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return SlowLogParams{}, err
		}

		for _, param := range page.Parameters {
			switch aws.ToString(param.ParameterName) {
			case paramSlowLogThreshold:
				applyIntParam(&params.ThresholdMicros, param.ParameterValue, paramSlowLogThreshold)
			case paramSlowLogMaxEntries:
				applyIntParam(&params.MaxEntries, param.ParameterValue, paramSlowLogMaxEntries)
			}
		}
	}

	return params, nil
}

func applyIntParam(dst *int64, raw *string, name string) {
	if raw == nil || *raw == "" {
		return
	}
	value, err := strconv.ParseInt(*raw, 10, 64)
	if err != nil {
		slog.Debug("unparsable parameter value", "parameter", name, "value", *raw, "error", err)
		return
	}
	*dst = value
}
