// Package domain contains the core entities of the task API: the Task record,
// the partial update applied to it, the API versions that own independent
// task collections, and the sentinel errors shared by every layer above.
package domain
