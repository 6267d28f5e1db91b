// Package id generates URL-safe unique identifiers.
//
// Each identifier is built from UUIDv4 bytes encoded as base32 (RFC 4648)
// without padding, then lowercased. The result is a 26-character string
// safe for URLs, file paths, and log lines.
package id
