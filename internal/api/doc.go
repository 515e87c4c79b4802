// Package api handles incoming HTTP requests, request binding, and response
// formatting for the versioned task collections. It acts as an adapter
// between HTTP clients and the task services, translating service errors
// into status codes and safe messages.
package api
