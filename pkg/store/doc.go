// Package store persists published wire documents.
//
// A [Store] is a small byte-oriented key/value interface with four
// backends:
//
//   - [NullStore] stores nothing
//   - [MemoryStore] keeps entries in process memory
//   - [FileStore] writes one JSON file per key under a directory
//   - [RedisStore] and [MongoStore] share documents between processes
//
// [Open] picks a backend from a [Config]. Keys are built by a [Keyer];
// [ScopedKeyer] namespaces them so several workspaces can share a backend.
//
// Remote backends mark connection failures with [Retryable] so callers can
// wrap writes in [RetryWithBackoff].
package store
