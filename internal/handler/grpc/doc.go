// Package grpc exposes the todo API as todo.v1.TodoService.
//
// The service descriptor is declared by hand and messages travel as JSON
// through a codec registered under [CodecName]; they are the same models the
// REST API uses. Every method except IssueToken expects a bearer token in
// the "authorization" metadata key.
package grpc
