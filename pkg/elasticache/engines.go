package elasticache

import (
	"fmt"
	"strings"
)

// Engine identifies an ElastiCache engine family.
type Engine string

const (
	EngineRedis     Engine = "redis"
	EngineValkey    Engine = "valkey"
	EngineMemcached Engine = "memcached"
)

// Engines is the set of engine families a query is scoped to.
type Engines []Engine

// DefaultEngines covers every supported engine family.
func DefaultEngines() Engines {
	return Engines{EngineRedis, EngineValkey, EngineMemcached}
}

// ParseEngines parses a comma-separated engine list (e.g.
// "redis,valkey"). Names are case-insensitive; unknown names are
// rejected with an error listing the valid set.
func ParseEngines(s string) (Engines, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultEngines(), nil
	}

	var engines Engines
	var invalid []string
	for _, raw := range strings.Split(s, ",") {
		name := Engine(strings.ToLower(strings.TrimSpace(raw)))
		switch name {
		case EngineRedis, EngineValkey, EngineMemcached:
			if !engines.Has(name) {
				engines = append(engines, name)
			}
		default:
			invalid = append(invalid, string(name))
		}
	}

	if len(invalid) > 0 {
		return nil, fmt.Errorf("invalid engine type(s): %s (valid: redis, valkey, memcached)",
			strings.Join(invalid, ", "))
	}
	return engines, nil
}

// Has reports whether the set includes the given engine.
func (e Engines) Has(engine Engine) bool {
	for _, candidate := range e {
		if candidate == engine {
			return true
		}
	}
	return false
}

// Replication returns the subset of engines served by replication
// groups (redis and valkey).
func (e Engines) Replication() Engines {
	var out Engines
	for _, engine := range e {
		if engine == EngineRedis || engine == EngineValkey {
			out = append(out, engine)
		}
	}
	return out
}

// HasReplication reports whether any replication-group engine is requested.
func (e Engines) HasReplication() bool {
	return len(e.Replication()) > 0
}

// Strings returns the engine names as plain strings.
func (e Engines) Strings() []string {
	out := make([]string, 0, len(e))
	for _, engine := range e {
		out = append(out, string(engine))
	}
	return out
}
