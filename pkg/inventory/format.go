package inventory

import "fmt"

const notApplicable = "N/A"

// FormatEnabledDisabled renders a tri-state boolean: nil means the
// feature is not applicable to the entity.
func FormatEnabledDisabled(value *bool) string {
	if value == nil {
		return notApplicable
	}
	if *value {
		return "Enabled"
	}
	return "Disabled"
}

// FormatSlowLogs renders the slow-log summary. The feature counts as
// disabled when either parameter is unknown or the threshold is not
// positive; a zero threshold is the engine's way of switching the log
// off.
func FormatSlowLogs(thresholdMicros, maxEntries *int64) string {
	if thresholdMicros == nil || maxEntries == nil {
		return "Disabled"
	}
	if *thresholdMicros > 0 {
		return fmt.Sprintf("Enabled/%d/%d", *thresholdMicros, *maxEntries)
	}
	return "Disabled"
}

// FormatBackup renders the snapshot configuration. Nil retention means
// the entity does not support backups at all.
func FormatBackup(window *string, retentionDays *int32) string {
	if retentionDays == nil {
		return notApplicable
	}
	if *retentionDays > 0 {
		if window != nil {
			return fmt.Sprintf("%s UTC/%d days", *window, *retentionDays)
		}
		return fmt.Sprintf("Enabled/%d days (no window info)", *retentionDays)
	}
	return "Disabled"
}

// FormatClusterName composes the display name of a cluster, prefixing
// the global datastore id when the cluster is enrolled in one.
func FormatClusterName(globalID, clusterID string) string {
	if globalID != "" {
		return globalID + "/" + clusterID
	}
	return clusterID
}

// FormatMaintenanceWindow appends the UTC marker to a non-empty window.
func FormatMaintenanceWindow(window string) string {
	if window == "" {
		return ""
	}
	return window + " UTC"
}
