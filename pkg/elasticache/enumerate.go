package elasticache

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticache"
	"github.com/aws/aws-sdk-go-v2/service/elasticache/types"
)

// matchName applies a shell-style wildcard pattern to a cluster
// identifier. An empty pattern matches everything; a malformed pattern
// matches nothing.
func matchName(pattern, name string) bool {
	if pattern == "" {
		return true
	}
	ok, err := path.Match(pattern, name)
	if err != nil {
		slog.Warn("malformed name filter pattern", "pattern", pattern, "error", err)
		return false
	}
	return ok
}

// ValidateNamePattern rejects malformed wildcard patterns up front so
// the failure surfaces before any API call is made.
func ValidateNamePattern(pattern string) error {
	if pattern == "" {
		return nil
	}
	_, err := path.Match(pattern, "")
	return err
}

// ReplicationGroups lists replication groups in the client's region
// (layer 2), paginated to exhaustion, keeping groups whose engine is in
// the requested replication set. Groups that predate the Engine field
// are kept whenever any replication engine was requested. The optional
// wildcard pattern is applied to the group id after listing.
func (c *Client) ReplicationGroups(ctx context.Context, engines Engines, namePattern string) ([]types.ReplicationGroup, error) {
	replication := engines.Replication()
	if len(replication) == 0 {
		return nil, nil
	}

	slog.Debug("enumerating replication groups",
		"region", c.region, "engines", replication.Strings())

	var groups []types.ReplicationGroup
	paginator := elasticache.NewDescribeReplicationGroupsPaginator(c,
		&elasticache.DescribeReplicationGroupsInput{})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		for _, group := range page.ReplicationGroups {
			engine := strings.ToLower(aws.ToString(group.Engine))
			if engine != "" && !replication.Has(Engine(engine)) {
				continue
			}
			if !matchName(namePattern, aws.ToString(group.ReplicationGroupId)) {
				continue
			}
			groups = append(groups, group)
		}
	}

	slog.Info("replication groups enumerated", "region", c.region, "count", len(groups))
	return groups, nil
}

// CacheClusters lists standalone cache clusters in the client's region
// (layer 3) with node-level detail, keeping clusters whose engine
// exactly matches the requested set. Clusters that are members of a
// replication group are skipped; those are reported via the
// replication-group path.
func (c *Client) CacheClusters(ctx context.Context, engines Engines, namePattern string) ([]types.CacheCluster, error) {
	if !engines.Has(EngineMemcached) {
		return nil, nil
	}

	slog.Debug("enumerating cache clusters", "region", c.region)

	var clusters []types.CacheCluster
	paginator := elasticache.NewDescribeCacheClustersPaginator(c,
		&elasticache.DescribeCacheClustersInput{
			ShowCacheNodeInfo: aws.Bool(true),
		})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		for _, cluster := range page.CacheClusters {
			engine := strings.ToLower(aws.ToString(cluster.Engine))
			if engine != string(EngineMemcached) {
				continue
			}
			if !matchName(namePattern, aws.ToString(cluster.CacheClusterId)) {
				continue
			}
			clusters = append(clusters, cluster)
		}
	}

	slog.Info("cache clusters enumerated", "region", c.region, "count", len(clusters))
	return clusters, nil
}
