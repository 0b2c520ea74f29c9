// Package server runs the HTTP transport of the user records service and
// shuts it down gracefully on SIGINT, SIGTERM, SIGQUIT or context
// cancellation.
package server
