// Package testutils provides HTTP helpers shared by the server's end-to-end
// tests: starting a test server, sending API-key authenticated requests and
// asserting on JSON and error responses.
package testutils
