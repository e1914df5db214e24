// Package http is the REST transport of the todo server.
//
// Routes live under /api. Registration, token issuance and the version
// endpoint are public; the user and todo routes sit behind a bearer token
// middleware that places the verified identity in the request context.
// Tracing, access logging, gzip and CORS wrap every route.
package http
