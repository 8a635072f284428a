// Package http implements the HTTP transport layer of the attachment server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing and access logging are
// handled in this package before requests reach the storage layer. The server
// side of the protocol is deliberately blind: it stores and serves encrypted
// blobs plus their metadata, verifying only the ciphertext checksum it can
// recompute without any key material.
package http
