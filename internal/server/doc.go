// Package server runs the hive's HTTP and gRPC listeners together with its
// background workers, and shuts them down gracefully on SIGTERM, SIGINT or
// SIGQUIT.
package server
