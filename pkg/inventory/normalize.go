package inventory

import (
	"strings"
	"unicode"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticache/types"

	"github.com/cacheops/ecinv/pkg/elasticache"
)

// NormalizeReplicationGroup merges a raw replication group, its
// enrichment, and the topology context into one report record. The
// member detail record is authoritative for engine, version, and
// maintenance window; the group record is the fallback.
func NormalizeReplicationGroup(group types.ReplicationGroup, enrichment elasticache.GroupEnrichment, topology elasticache.TopologyMap, region string) Record {
	groupID := aws.ToString(group.ReplicationGroupId)
	detail := enrichment.Detail

	record := Record{
		Region:   region,
		NodeType: aws.ToString(group.CacheNodeType),
	}

	member, _ := topology.Lookup(region, groupID)
	record.Name = FormatClusterName(member.GlobalID, groupID)
	record.Role = capitalize(member.Role)

	if detail != nil {
		record.EngineType = capitalize(aws.ToString(detail.Engine))
		record.EngineVersion = aws.ToString(detail.EngineVersion)
		record.MaintenanceWindow = FormatMaintenanceWindow(aws.ToString(detail.PreferredMaintenanceWindow))
	} else {
		// The group record carries neither version nor window; the
		// engine family defaults to the dominant one when even the
		// group-level engine is absent.
		record.EngineType = capitalize(aws.ToString(group.Engine))
		if record.EngineType == "" {
			record.EngineType = "Redis"
		}
	}

	if aws.ToBool(group.ClusterEnabled) {
		record.ClusterMode = "Enabled"
	} else {
		record.ClusterMode = "Disabled"
	}

	record.Shards = len(group.NodeGroups)
	for _, nodeGroup := range group.NodeGroups {
		record.Nodes += len(nodeGroup.NodeGroupMembers)
	}

	record.MultiAZ = FormatEnabledDisabled(statusFlag(string(group.MultiAZ)))
	record.AutoFailover = FormatEnabledDisabled(statusFlag(string(group.AutomaticFailover)))
	record.TransitEncryption = FormatEnabledDisabled(group.TransitEncryptionEnabled)
	record.AtRestEncryption = FormatEnabledDisabled(group.AtRestEncryptionEnabled)

	if elasticache.EngineLogDeliveryActive(group.LogDeliveryConfigurations) {
		record.EngineLogs = "Enabled"
	} else {
		record.EngineLogs = "Disabled"
	}

	if enrichment.SlowLog != nil {
		record.SlowLogs = FormatSlowLogs(&enrichment.SlowLog.ThresholdMicros, &enrichment.SlowLog.MaxEntries)
	} else {
		record.SlowLogs = "Disabled"
	}

	record.AutoUpgrade = FormatEnabledDisabled(group.AutoMinorVersionUpgrade)
	record.Backup = FormatBackup(group.SnapshotWindow, group.SnapshotRetentionLimit)

	return record
}

// NormalizeCacheCluster converts a standalone cache cluster into a
// report record. Standalone clusters have no replication construct:
// role, cluster mode, failover, encryption, log delivery, and backup
// are unsupported for this entity kind.
func NormalizeCacheCluster(cluster types.CacheCluster, region string) Record {
	record := Record{
		Region:            region,
		Name:              aws.ToString(cluster.CacheClusterId),
		Role:              "",
		EngineType:        capitalize(aws.ToString(cluster.Engine)),
		EngineVersion:     aws.ToString(cluster.EngineVersion),
		NodeType:          aws.ToString(cluster.CacheNodeType),
		ClusterMode:       notApplicable,
		Shards:            0,
		Nodes:             int(aws.ToInt32(cluster.NumCacheNodes)),
		AutoFailover:      notApplicable,
		TransitEncryption: notApplicable,
		AtRestEncryption:  notApplicable,
		SlowLogs:          notApplicable,
		EngineLogs:        notApplicable,
		Backup:            notApplicable,
	}

	// A pinned availability zone rules multi-AZ out; without one the
	// field is simply not applicable to this entity kind.
	if aws.ToString(cluster.PreferredAvailabilityZone) != "" {
		record.MultiAZ = "Disabled"
	} else {
		record.MultiAZ = notApplicable
	}

	record.MaintenanceWindow = FormatMaintenanceWindow(aws.ToString(cluster.PreferredMaintenanceWindow))
	record.AutoUpgrade = FormatEnabledDisabled(cluster.AutoMinorVersionUpgrade)

	return record
}

// statusFlag maps the API's string status fields ("enabled",
// "disabled") to a tri-state boolean; an absent status stays nil. The
// comparison is exact: transitional states like "enabling" count as
// not enabled.
func statusFlag(status string) *bool {
	if status == "" {
		return nil
	}
	enabled := status == "enabled"
	return &enabled
}

// capitalize upper-cases the first rune and lower-cases the rest, e.g.
// "PRIMARY" becomes "Primary" and "redis" becomes "Redis".
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
