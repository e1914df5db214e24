package server

// Server is the process-level lifecycle of the todo server.
type Server interface {
	// RunServer serves every configured listener until a termination
	// signal arrives, then shuts them down.
	RunServer()

	// Shutdown stops all listeners, waiting for in-flight requests up to
	// the shutdown timeout.
	Shutdown()
}
