package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Field is a stable report-column token as accepted on the command
// line (hyphenated, e.g. "node-type").
type Field string

const (
	FieldRegion            Field = "region"
	FieldType              Field = "type"
	FieldName              Field = "name"
	FieldRole              Field = "role"
	FieldNodeType          Field = "node-type"
	FieldEngineVersion     Field = "engine-version"
	FieldClusterMode       Field = "cluster-mode"
	FieldShards            Field = "shards"
	FieldNodes             Field = "nodes"
	FieldMultiAZ           Field = "multi-az"
	FieldAutoFailover      Field = "auto-failover"
	FieldEncryptionTransit Field = "encryption-transit"
	FieldEncryptionRest    Field = "encryption-rest"
	FieldSlowLogs          Field = "slow-logs"
	FieldEngineLogs        Field = "engine-logs"
	FieldMaintenanceWindow Field = "maintenance-window"
	FieldAutoUpgrade       Field = "auto-upgrade"
	FieldBackup            Field = "backup"
)

// fieldSpec binds a column token to its extractor. The table replaces
// runtime reflection for column selection: every accessor is an
// explicit function resolved once at startup.
type fieldSpec struct {
	numeric bool
	value   func(*Record) string
}

var fieldOrder = []Field{
	FieldRegion, FieldType, FieldName, FieldRole, FieldNodeType,
	FieldEngineVersion, FieldClusterMode, FieldShards, FieldNodes,
	FieldMultiAZ, FieldAutoFailover, FieldEncryptionTransit,
	FieldEncryptionRest, FieldSlowLogs, FieldEngineLogs,
	FieldMaintenanceWindow, FieldAutoUpgrade, FieldBackup,
}

var fieldTable = map[Field]fieldSpec{
	FieldRegion:            {value: func(r *Record) string { return r.Region }},
	FieldType:              {value: func(r *Record) string { return r.EngineType }},
	FieldName:              {value: func(r *Record) string { return r.Name }},
	FieldRole:              {value: func(r *Record) string { return r.Role }},
	FieldNodeType:          {value: func(r *Record) string { return r.NodeType }},
	FieldEngineVersion:     {value: func(r *Record) string { return r.EngineVersion }},
	FieldClusterMode:       {value: func(r *Record) string { return r.ClusterMode }},
	FieldShards:            {numeric: true, value: func(r *Record) string { return strconv.Itoa(r.Shards) }},
	FieldNodes:             {numeric: true, value: func(r *Record) string { return strconv.Itoa(r.Nodes) }},
	FieldMultiAZ:           {value: func(r *Record) string { return r.MultiAZ }},
	FieldAutoFailover:      {value: func(r *Record) string { return r.AutoFailover }},
	FieldEncryptionTransit: {value: func(r *Record) string { return r.TransitEncryption }},
	FieldEncryptionRest:    {value: func(r *Record) string { return r.AtRestEncryption }},
	FieldSlowLogs:          {value: func(r *Record) string { return r.SlowLogs }},
	FieldEngineLogs:        {value: func(r *Record) string { return r.EngineLogs }},
	FieldMaintenanceWindow: {value: func(r *Record) string { return r.MaintenanceWindow }},
	FieldAutoUpgrade:       {value: func(r *Record) string { return r.AutoUpgrade }},
	FieldBackup:            {value: func(r *Record) string { return r.Backup }},
}

var titleCaser = cases.Title(language.English)

// AllFields returns every report column in canonical order.
func AllFields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// ParseFields parses a comma-separated column list, with "all" (the
// default) expanding to every column. Unknown tokens are rejected with
// an error naming them.
func ParseFields(s string) ([]Field, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.EqualFold(trimmed, "all") {
		return AllFields(), nil
	}

	var fields []Field
	var invalid []string
	for _, raw := range strings.Split(trimmed, ",") {
		field := Field(strings.ToLower(strings.TrimSpace(raw)))
		if _, ok := fieldTable[field]; !ok {
			invalid = append(invalid, string(field))
			continue
		}
		fields = append(fields, field)
	}

	if len(invalid) > 0 {
		return nil, fmt.Errorf("invalid field name(s): %s (valid: %s)",
			strings.Join(invalid, ", "), joinFields(AllFields()))
	}
	return fields, nil
}

// Title returns the column's display header, e.g. "node-type" becomes
// "Node Type".
func (f Field) Title() string {
	return titleCaser.String(strings.ReplaceAll(string(f), "-", " "))
}

// Numeric reports whether the column holds an integer and should be
// right-aligned by tabular renderers.
func (f Field) Numeric() bool {
	return fieldTable[f].numeric
}

// Value extracts the column's display value from a record. Unknown
// fields yield an empty string.
func (f Field) Value(r *Record) string {
	spec, ok := fieldTable[f]
	if !ok {
		return ""
	}
	return spec.value(r)
}

func joinFields(fields []Field) string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
