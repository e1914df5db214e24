// Package server runs the REST and gRPC listeners of the todo server and
// stops them gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
