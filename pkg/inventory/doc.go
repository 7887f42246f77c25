// Package inventory turns raw ElastiCache control-plane records into a
// uniform cluster report.
//
// The Collector fans one task out per region (home region plus every
// region the global datastore topology touches), each on its own
// region-bound client, and merges the per-region results into a single
// region-sorted Report. A failing region is recorded in the report's
// failure summary instead of aborting the run.
//
// Normalization reconciles the two raw record shapes (replication
// groups and standalone cache clusters) into one Record with every
// field display-ready, and the Field table maps stable column tokens to
// extractors for report-column selection.
package inventory
