// Package api translates HTTP requests into service calls for the users,
// tasks and categories of the to-do API.
//
// Handlers decode JSON request DTOs (models.go), validate them with the
// shared validator, convert them with the mappers in mappers.go and report
// failures through HandleAPIError, which maps service, store and domain
// errors to status codes and client-safe messages. Routing lives in
// cmd/server.
package api
