// Package rest exposes the employee, attendance and dashboard route modules
// over HTTP with gin, together with the health check, CORS policy, request
// logging and prometheus instrumentation.
package rest
