// Package http implements the hive's HTTP transport.
//
// POST / carries synchronizer submissions; /manager resets the coordinator
// and lists journaled exchanges. Client identity (the traceparent header),
// access logging, gzip and the optional HashSHA256 integrity header are
// middleware concerns handled here before the service layer is called.
package http
