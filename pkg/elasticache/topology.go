package elasticache

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticache"
)

// GlobalMember records a replication group's membership in a global
// datastore: the datastore id and the group's role within it.
type GlobalMember struct {
	GlobalID string
	Role     string
}

// TopologyMap maps region -> replication-group id -> global datastore
// membership. A missing entry means the group is not part of any global
// datastore. The map is built once per run and read-only afterwards.
type TopologyMap map[string]map[string]GlobalMember

// Regions returns every region enrolled in the topology.
func (t TopologyMap) Regions() []string {
	out := make([]string, 0, len(t))
	for region := range t {
		out = append(out, region)
	}
	return out
}

// Lookup returns the membership entry for a group in a region.
func (t TopologyMap) Lookup(region, groupID string) (GlobalMember, bool) {
	member, ok := t[region][groupID]
	return member, ok
}

// Topology discovers the global datastore topology (layer 1). The
// member info flag is required: without it the API silently returns
// empty member lists, breaking cross-region discovery.
func (c *Client) Topology(ctx context.Context) (TopologyMap, error) {
	slog.Debug("discovering global datastores", "region", c.region)

	topo := make(TopologyMap)
	paginator := elasticache.NewDescribeGlobalReplicationGroupsPaginator(c,
		&elasticache.DescribeGlobalReplicationGroupsInput{
			ShowMemberInfo: aws.Bool(true),
		})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		for _, global := range page.GlobalReplicationGroups {
			globalID := aws.ToString(global.GlobalReplicationGroupId)

			for _, member := range global.Members {
				groupID := aws.ToString(member.ReplicationGroupId)
				region := aws.ToString(member.ReplicationGroupRegion)
				role := aws.ToString(member.Role)
				if groupID == "" || region == "" || role == "" {
					continue
				}

				if topo[region] == nil {
					topo[region] = make(map[string]GlobalMember)
				}
				topo[region][groupID] = GlobalMember{
					GlobalID: globalID,
					Role:     strings.ToUpper(role),
				}
			}
		}
	}

	total := 0
	for _, groups := range topo {
		total += len(groups)
	}
	slog.Info("global datastore discovery complete",
		"members", total, "regions", len(topo))

	return topo, nil
}
