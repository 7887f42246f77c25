package elasticache

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticache"
	"github.com/aws/aws-sdk-go-v2/service/elasticache/types"
)

// GroupEnrichment carries the per-group data gathered in layers 3b and
// 4: the first member's detail record and, when slow-log delivery is
// active, the resolved slow-log parameters.
type GroupEnrichment struct {
	// Detail is the first member cluster's full record, nil when the
	// detail fetch failed or the group has no members. It is the
	// authoritative source for engine, version, and maintenance window.
	Detail *types.CacheCluster

	// SlowLog is non-nil only when the group has slow-log delivery
	// active.
	SlowLog *SlowLogParams
}

// EnrichGroup fetches detail and slow-log context for one replication
// group. Every failure path degrades: a failed detail fetch falls back
// to the group record, and slow-log parameters fall back through the
// parameter cache's own default handling.
func (c *Client) EnrichGroup(ctx context.Context, group types.ReplicationGroup) GroupEnrichment {
	groupID := aws.ToString(group.ReplicationGroupId)

	enrichment := GroupEnrichment{
		Detail: c.memberDetail(ctx, groupID, group.MemberClusters),
	}

	if !slowLogDeliveryActive(group.LogDeliveryConfigurations) {
		slog.Debug("slow-log delivery inactive", "group", groupID)
		return enrichment
	}

	name := parameterGroupName(enrichment.Detail)
	if name == "" {
		// Delivery is confirmed active but no parameter group is
		// resolvable; assume the engine's documented defaults.
		slog.Debug("no parameter group resolvable, assuming defaults", "group", groupID)
		params := defaultSlowLogParams()
		enrichment.SlowLog = &params
		return enrichment
	}

	params := c.params.Resolve(ctx, c, name)
	enrichment.SlowLog = &params
	return enrichment
}

// memberDetail fetches the full record of the group's first member
// cluster. Returns nil on any failure; callers fall back to the group
// record.
func (c *Client) memberDetail(ctx context.Context, groupID string, members []string) *types.CacheCluster {
	if len(members) == 0 {
		return nil
	}

	out, err := c.DescribeCacheClusters(ctx, &elasticache.DescribeCacheClustersInput{
		CacheClusterId: aws.String(members[0]),
	})
	if err != nil {
		slog.Warn("member detail fetch failed, falling back to group record",
			"group", groupID, "member", members[0], "error", err)
		return nil
	}
	if len(out.CacheClusters) == 0 {
		return nil
	}
	return &out.CacheClusters[0]
}

// slowLogDeliveryActive reports whether the group has a slow-log
// delivery configuration with destination details.
func slowLogDeliveryActive(configs []types.LogDeliveryConfiguration) bool {
	return logDeliveryActive(configs, types.LogTypeSlowLog)
}

// EngineLogDeliveryActive reports whether the group delivers engine
// logs to a destination.
func EngineLogDeliveryActive(configs []types.LogDeliveryConfiguration) bool {
	return logDeliveryActive(configs, types.LogTypeEngineLog)
}

func logDeliveryActive(configs []types.LogDeliveryConfiguration, kind types.LogType) bool {
	for _, config := range configs {
		if config.LogType == kind && config.DestinationDetails != nil {
			return true
		}
	}
	return false
}

// parameterGroupName resolves the effective parameter group from the
// member detail record.
func parameterGroupName(detail *types.CacheCluster) string {
	if detail == nil || detail.CacheParameterGroup == nil {
		return ""
	}
	return aws.ToString(detail.CacheParameterGroup.CacheParameterGroupName)
}
