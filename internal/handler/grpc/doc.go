// Package grpc exposes the coordinator as the hivemind.v1.Hive service.
//
// The service has a single unary method, Submit, whose request and response
// messages are raw bytes carried by RawCodec. The traceparent and the
// content type travel as metadata, and the outcome is reported in the
// hive-status response header.
package grpc
