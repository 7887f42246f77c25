// Package elasticache implements the four-layer ElastiCache
// control-plane query pipeline:
//
//  1. Global datastore topology discovery (with full member enrollment)
//  2. Replication group enumeration (redis/valkey families)
//  3. Standalone cache cluster enumeration (memcached) and per-group
//     member detail lookup
//  4. Parameter group slow-log lookup, memoized in a shared cache
//
// A Client is bound to one region and decorates the raw SDK client with
// rate limiting, throttle retry with exponential backoff, and
// classification of failures into the tool's error taxonomy
// (PermissionError, InvalidParameterError, APIError, CredentialsError,
// ConnectionError). Clients are never shared across concurrent regional
// tasks; a Factory hands each task its own instance while the
// ParameterCache is the one piece of state shared between them.
package elasticache
