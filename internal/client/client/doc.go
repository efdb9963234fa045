// Package client talks to the auth server on behalf of the CLI.
//
// GRPCClient wraps the generated-style AuthServiceClient: it applies a per
// call timeout, injects the access token of the current session through a
// unary interceptor and maps gRPC status codes to the sentinel errors in
// errors.go. SessionStore keeps that token on disk between runs.
package client
