// Package http implements the REST transport of the user records service.
//
// It wires the chi router, the user and version handlers and the middleware
// chain (tracing, access logging, compression, timeouts and bearer token
// authentication) in front of the service layer. Every user leaving this
// package goes through [models.User.Public], except the registration
// response, which keeps the verification token for the registrant.
package http
