// Package memory implements the store interfaces on top of process memory.
// Collections live only as long as the process; nothing is persisted.
package memory
