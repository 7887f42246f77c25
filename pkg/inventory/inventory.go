package inventory

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/elasticache/types"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cacheops/ecinv/pkg/elasticache"
)

// Querier is the per-region query surface the orchestrator depends on.
// It is satisfied by *elasticache.Client.
type Querier interface {
	Region() string
	Topology(ctx context.Context) (elasticache.TopologyMap, error)
	ReplicationGroups(ctx context.Context, engines elasticache.Engines, namePattern string) ([]types.ReplicationGroup, error)
	CacheClusters(ctx context.Context, engines elasticache.Engines, namePattern string) ([]types.CacheCluster, error)
	EnrichGroup(ctx context.Context, group types.ReplicationGroup) elasticache.GroupEnrichment
}

// QuerierFactory builds a region-bound Querier. The orchestrator calls
// it once per regional task so no live client is ever shared between
// concurrent tasks.
type QuerierFactory func(ctx context.Context, region string) (Querier, error)

// Collector runs the full discovery pipeline: topology resolution,
// concurrent per-region enumeration and enrichment, normalization, and
// the final region-sorted merge.
type Collector struct {
	// HomeRegion is the region the run was invoked against. It is
	// always queried, plus every region the topology touches.
	HomeRegion string

	// Engines scopes the run to a set of engine families.
	Engines elasticache.Engines

	// NameFilter is an optional shell-style wildcard applied to
	// cluster identifiers.
	NameFilter string

	// NewQuerier builds the region-bound clients.
	NewQuerier QuerierFactory
}

// Collect produces the inventory report. A failing region is logged,
// recorded in the report's failure summary, and excluded from the
// records; it never aborts sibling regions. The only hard failure is
// being unable to construct the home-region client at all.
func (c *Collector) Collect(ctx context.Context) (*Report, error) {
	slog.Info("starting inventory collection",
		"homeRegion", c.HomeRegion,
		"engines", c.Engines.Strings(),
		"filter", c.NameFilter)

	home, err := c.NewQuerier(ctx, c.HomeRegion)
	if err != nil {
		return nil, err
	}

	// Topology is an enhancement, not a requirement: on failure the
	// run degrades to a single-region inventory without roles.
	topology, err := home.Topology(ctx)
	if err != nil {
		slog.Warn("global datastore discovery failed, continuing without topology", "error", err)
		topology = make(elasticache.TopologyMap)
	}

	regions := c.regionSet(topology)
	slog.Info("querying regions", "regions", regions)

	report := &Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		HomeRegion:  c.HomeRegion,
		Engines:     c.Engines.Strings(),
	}

	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))

	results := make(chan regionResult, len(regions))
	for _, region := range regions {
		group.Go(func() error {
			start := time.Now()
			records, queryErr := c.collectRegion(ctx, region, topology)
			if queryErr != nil {
				regionQueryTotal.WithLabelValues("error").Inc()
				regionQueryDuration.Observe(time.Since(start).Seconds())
				slog.Warn("region query failed, excluding from results",
					"region", region, "error", queryErr)
				results <- regionResult{region: region, err: queryErr}
				return nil
			}
			regionQueryTotal.WithLabelValues("success").Inc()
			regionQueryDuration.Observe(time.Since(start).Seconds())
			slog.Info("region query complete", "region", region, "clusters", len(records))
			results <- regionResult{region: region, records: records}
			return nil
		})
	}

	// Collection order is completion order; per-task errors never
	// surface through the group.
	_ = group.Wait()
	close(results)

	for result := range results {
		if result.err != nil {
			report.Failures = append(report.Failures, RegionFailure{
				Region: result.region,
				Error:  result.err.Error(),
			})
			continue
		}
		report.Records = append(report.Records, result.records...)
	}

	// Deterministic output independent of completion order: sort by
	// region, preserving discovery order within a region.
	sort.SliceStable(report.Records, func(i, j int) bool {
		return report.Records[i].Region < report.Records[j].Region
	})
	sort.Slice(report.Failures, func(i, j int) bool {
		return report.Failures[i].Region < report.Failures[j].Region
	})

	recordCount.Set(float64(len(report.Records)))
	slog.Info("inventory collection complete",
		"clusters", len(report.Records),
		"regions", len(regions),
		"failedRegions", len(report.Failures))

	return report, nil
}

// regionSet computes the sorted union of the home region and every
// region the topology touches.
func (c *Collector) regionSet(topology elasticache.TopologyMap) []string {
	seen := map[string]bool{c.HomeRegion: true}
	for _, region := range topology.Regions() {
		seen[region] = true
	}

	regions := make([]string, 0, len(seen))
	for region := range seen {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}

// collectRegion runs the enumerate-enrich-normalize pipeline for one
// region on a freshly built client.
func (c *Collector) collectRegion(ctx context.Context, region string, topology elasticache.TopologyMap) ([]Record, error) {
	querier, err := c.NewQuerier(ctx, region)
	if err != nil {
		return nil, err
	}

	var records []Record

	groups, err := querier.ReplicationGroups(ctx, c.Engines, c.NameFilter)
	if err != nil {
		return nil, err
	}
	for _, group := range groups {
		enrichment := querier.EnrichGroup(ctx, group)
		records = append(records, NormalizeReplicationGroup(group, enrichment, topology, region))
	}

	clusters, err := querier.CacheClusters(ctx, c.Engines, c.NameFilter)
	if err != nil {
		return nil, err
	}
	for _, cluster := range clusters {
		records = append(records, NormalizeCacheCluster(cluster, region))
	}

	return records, nil
}

type regionResult struct {
	region  string
	records []Record
	err     error
}
