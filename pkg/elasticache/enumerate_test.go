package elasticache

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticache"
	"github.com/aws/aws-sdk-go-v2/service/elasticache/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func replicationGroup(id, engine string) types.ReplicationGroup {
	group := types.ReplicationGroup{ReplicationGroupId: aws.String(id)}
	if engine != "" {
		group.Engine = aws.String(engine)
	}
	return group
}

func cacheCluster(id, engine string) types.CacheCluster {
	return types.CacheCluster{
		CacheClusterId: aws.String(id),
		Engine:         aws.String(engine),
	}
}

func groupIDs(groups []types.ReplicationGroup) []string {
	out := make([]string, 0, len(groups))
	for _, group := range groups {
		out = append(out, aws.ToString(group.ReplicationGroupId))
	}
	return out
}

func TestReplicationGroups_EngineFilter(t *testing.T) {
	api := &fakeAPI{}
	api.groupsFn = func(in *elasticache.DescribeReplicationGroupsInput) (*elasticache.DescribeReplicationGroupsOutput, error) {
		return &elasticache.DescribeReplicationGroupsOutput{
			ReplicationGroups: []types.ReplicationGroup{
				replicationGroup("rg-redis", "redis"),
				replicationGroup("rg-valkey", "valkey"),
				replicationGroup("rg-legacy", ""),
			},
		}, nil
	}
	client := newTestClient(api)

	tests := []struct {
		name    string
		engines Engines
		want    []string
	}{
		{
			name:    "redis only keeps redis and legacy groups",
			engines: Engines{EngineRedis},
			want:    []string{"rg-redis", "rg-legacy"},
		},
		{
			name:    "valkey only",
			engines: Engines{EngineValkey},
			want:    []string{"rg-valkey", "rg-legacy"},
		},
		{
			name:    "both replication engines",
			engines: Engines{EngineRedis, EngineValkey},
			want:    []string{"rg-redis", "rg-valkey", "rg-legacy"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			groups, err := client.ReplicationGroups(t.Context(), tc.engines, "")
			require.NoError(t, err)
			assert.Equal(t, tc.want, groupIDs(groups))
		})
	}
}

func TestReplicationGroups_MemcachedOnlySkipsCall(t *testing.T) {
	api := &fakeAPI{}
	groups, err := newTestClient(api).ReplicationGroups(t.Context(), Engines{EngineMemcached}, "")

	require.NoError(t, err)
	assert.Nil(t, groups)
	assert.Equal(t, 0, api.callCount("DescribeReplicationGroups"))
}

func TestReplicationGroups_WildcardFilter(t *testing.T) {
	api := &fakeAPI{}
	api.groupsFn = func(in *elasticache.DescribeReplicationGroupsInput) (*elasticache.DescribeReplicationGroupsOutput, error) {
		return &elasticache.DescribeReplicationGroupsOutput{
			ReplicationGroups: []types.ReplicationGroup{
				replicationGroup("prod-cache-1", "redis"),
				replicationGroup("prod-cache-2", "redis"),
				replicationGroup("staging-cache-1", "redis"),
			},
		}, nil
	}

	groups, err := newTestClient(api).ReplicationGroups(t.Context(), DefaultEngines(), "prod-*")
	require.NoError(t, err)
	assert.Equal(t, []string{"prod-cache-1", "prod-cache-2"}, groupIDs(groups))
}

func TestCacheClusters_MemcachedExactMatch(t *testing.T) {
	api := &fakeAPI{}
	api.clustersFn = func(in *elasticache.DescribeCacheClustersInput) (*elasticache.DescribeCacheClustersOutput, error) {
		require.NotNil(t, in.ShowCacheNodeInfo)
		assert.True(t, *in.ShowCacheNodeInfo)
		return &elasticache.DescribeCacheClustersOutput{
			CacheClusters: []types.CacheCluster{
				cacheCluster("mc-sessions", "memcached"),
				cacheCluster("redis-node-1", "redis"),
			},
		}, nil
	}

	clusters, err := newTestClient(api).CacheClusters(t.Context(), DefaultEngines(), "")
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.Equal(t, "mc-sessions", aws.ToString(clusters[0].CacheClusterId))
}

func TestCacheClusters_SkippedWithoutMemcached(t *testing.T) {
	api := &fakeAPI{}
	clusters, err := newTestClient(api).CacheClusters(t.Context(), Engines{EngineRedis, EngineValkey}, "")

	require.NoError(t, err)
	assert.Nil(t, clusters)
	assert.Equal(t, 0, api.callCount("DescribeCacheClusters"))
}

func TestMatchName(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"", "anything", true},
		{"prod-*", "prod-cache-1", true},
		{"prod-*", "staging-cache-1", false},
		{"cache-?", "cache-1", true},
		{"cache-?", "cache-12", false},
		{"exact", "exact", true},
		{"exact", "exact-not", false},
		{"[malformed", "anything", false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, matchName(tc.pattern, tc.name),
			"pattern %q against %q", tc.pattern, tc.name)
	}
}

func TestValidateNamePattern(t *testing.T) {
	assert.NoError(t, ValidateNamePattern(""))
	assert.NoError(t, ValidateNamePattern("prod-*"))
	assert.Error(t, ValidateNamePattern("[malformed"))
}
