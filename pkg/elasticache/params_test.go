package elasticache

import (
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticache"
	"github.com/aws/aws-sdk-go-v2/service/elasticache/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func paramsOutput(params map[string]string) *elasticache.DescribeCacheParametersOutput {
	out := &elasticache.DescribeCacheParametersOutput{}
	for name, value := range params {
		out.Parameters = append(out.Parameters, types.Parameter{
			ParameterName:  aws.String(name),
			ParameterValue: aws.String(value),
		})
	}
	return out
}

func TestParameterCache_ResolveReadsValues(t *testing.T) {
	api := &fakeAPI{}
	api.paramsFn = func(in *elasticache.DescribeCacheParametersInput) (*elasticache.DescribeCacheParametersOutput, error) {
		assert.Equal(t, "custom.redis7", aws.ToString(in.CacheParameterGroupName))
		return paramsOutput(map[string]string{
			"slowlog-log-slower-than": "25000",
			"slowlog-max-len":         "512",
			"maxmemory-policy":        "allkeys-lru",
		}), nil
	}

	cache := NewParameterCache()
	got := cache.Resolve(t.Context(), api, "custom.redis7")

	assert.Equal(t, SlowLogParams{ThresholdMicros: 25000, MaxEntries: 512}, got)
}

func TestParameterCache_ZeroThresholdPreserved(t *testing.T) {
	api := &fakeAPI{}
	api.paramsFn = func(in *elasticache.DescribeCacheParametersInput) (*elasticache.DescribeCacheParametersOutput, error) {
		return paramsOutput(map[string]string{"slowlog-log-slower-than": "0"}), nil
	}

	got := NewParameterCache().Resolve(t.Context(), api, "zeroed")

	assert.Equal(t, int64(0), got.ThresholdMicros)
	assert.Equal(t, int64(defaultSlowLogMaxEntries), got.MaxEntries)
}

func TestParameterCache_UnparsableValueKeepsDefault(t *testing.T) {
	api := &fakeAPI{}
	api.paramsFn = func(in *elasticache.DescribeCacheParametersInput) (*elasticache.DescribeCacheParametersOutput, error) {
		return paramsOutput(map[string]string{
			"slowlog-log-slower-than": "not-a-number",
			"slowlog-max-len":         "256",
		}), nil
	}

	got := NewParameterCache().Resolve(t.Context(), api, "odd")

	assert.Equal(t, int64(defaultSlowLogThresholdMicros), got.ThresholdMicros)
	assert.Equal(t, int64(256), got.MaxEntries)
}

func TestParameterCache_SecondResolveHitsCache(t *testing.T) {
	api := &fakeAPI{}
	api.paramsFn = func(in *elasticache.DescribeCacheParametersInput) (*elasticache.DescribeCacheParametersOutput, error) {
		return paramsOutput(map[string]string{"slowlog-max-len": "64"}), nil
	}

	cache := NewParameterCache()
	first := cache.Resolve(t.Context(), api, "shared")
	second := cache.Resolve(t.Context(), api, "shared")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, api.callCount("DescribeCacheParameters"))
}

func TestParameterCache_ConcurrentResolveQueriesOnce(t *testing.T) {
	api := &fakeAPI{}
	api.paramsFn = func(in *elasticache.DescribeCacheParametersInput) (*elasticache.DescribeCacheParametersOutput, error) {
		time.Sleep(20 * time.Millisecond)
		return paramsOutput(map[string]string{"slowlog-max-len": "300"}), nil
	}

	cache := NewParameterCache()
	const workers = 16
	results := make([]SlowLogParams, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = cache.Resolve(t.Context(), api, "contended")
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, int64(300), got.MaxEntries)
	}
	assert.Equal(t, 1, api.callCount("DescribeCacheParameters"))
}

func TestParameterCache_FailureReturnsDefaultsUncached(t *testing.T) {
	api := &fakeAPI{}
	fail := true
	api.paramsFn = func(in *elasticache.DescribeCacheParametersInput) (*elasticache.DescribeCacheParametersOutput, error) {
		if fail {
			return nil, &smithy.GenericAPIError{Code: "InternalFailure", Message: "server error"}
		}
		return paramsOutput(map[string]string{"slowlog-max-len": "99"}), nil
	}

	cache := NewParameterCache()

	got := cache.Resolve(t.Context(), api, "flaky")
	assert.Equal(t, defaultSlowLogParams(), got)

	// Failures are not cached; the next lookup retries the API.
	fail = false
	got = cache.Resolve(t.Context(), api, "flaky")
	assert.Equal(t, int64(99), got.MaxEntries)
	assert.Equal(t, 2, api.callCount("DescribeCacheParameters"))
}

func TestParameterCache_Clear(t *testing.T) {
	api := &fakeAPI{}
	cache := NewParameterCache()

	cache.Resolve(t.Context(), api, "group")
	cache.Clear()
	cache.Resolve(t.Context(), api, "group")

	assert.Equal(t, 2, api.callCount("DescribeCacheParameters"))
}
