// Package service provides application-level operations on task collections.
// Each TaskService owns one version's store; the API layer never touches a
// store directly.
package service
