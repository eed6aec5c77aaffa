package server

// Server runs the API until the process is asked to stop.
type Server interface {
	// RunServer serves requests and blocks until SIGTERM, SIGINT or SIGQUIT,
	// then shuts down gracefully.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests.
	Shutdown()
}
