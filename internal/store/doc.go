// Package store defines interfaces for task persistence operations.
// These interfaces abstract the underlying storage mechanism from the
// application's core logic. The only implementation today keeps tasks in
// process memory (see internal/platform/memory).
package store
