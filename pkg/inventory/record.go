package inventory

import (
	"time"
)

// Record is one fully-resolved report row for a discovered cluster.
// Every field is a display-ready string or integer at construction
// time; records are immutable after the normalizer builds them.
type Record struct {
	// Region is the region the cluster was found under, which for
	// global datastore secondaries differs from the home region.
	Region            string `json:"region" yaml:"region"`
	EngineType        string `json:"engineType" yaml:"engineType"`
	Name              string `json:"name" yaml:"name"`
	Role              string `json:"role" yaml:"role"`
	NodeType          string `json:"nodeType" yaml:"nodeType"`
	EngineVersion     string `json:"engineVersion" yaml:"engineVersion"`
	ClusterMode       string `json:"clusterMode" yaml:"clusterMode"`
	Shards            int    `json:"shards" yaml:"shards"`
	Nodes             int    `json:"nodes" yaml:"nodes"`
	MultiAZ           string `json:"multiAZ" yaml:"multiAZ"`
	AutoFailover      string `json:"autoFailover" yaml:"autoFailover"`
	TransitEncryption string `json:"transitEncryption" yaml:"transitEncryption"`
	AtRestEncryption  string `json:"atRestEncryption" yaml:"atRestEncryption"`
	SlowLogs          string `json:"slowLogs" yaml:"slowLogs"`
	EngineLogs        string `json:"engineLogs" yaml:"engineLogs"`
	MaintenanceWindow string `json:"maintenanceWindow" yaml:"maintenanceWindow"`
	AutoUpgrade       string `json:"autoUpgrade" yaml:"autoUpgrade"`
	Backup            string `json:"backup" yaml:"backup"`
}

// RegionFailure records a region whose query failed and was excluded
// from the results.
type RegionFailure struct {
	Region string `json:"region" yaml:"region"`
	Error  string `json:"error" yaml:"error"`
}

// Report is the envelope for one inventory run: the records gathered,
// run metadata, and the per-region failure summary. A region appearing
// in Failures contributed zero records; a region absent from both
// simply had no matching clusters.
type Report struct {
	ID          string          `json:"id" yaml:"id"`
	GeneratedAt time.Time       `json:"generatedAt" yaml:"generatedAt"`
	HomeRegion  string          `json:"homeRegion" yaml:"homeRegion"`
	Engines     []string        `json:"engines" yaml:"engines"`
	Records     []Record        `json:"records" yaml:"records"`
	Failures    []RegionFailure `json:"failures,omitempty" yaml:"failures,omitempty"`
}
