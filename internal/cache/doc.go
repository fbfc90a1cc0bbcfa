// Package cache provides a file-based response cache with TTL expiration.
//
// Fetched comment payloads are stored as JSON files under the cache directory
// (default ~/.commentgrid/cache/) so repeated invocations within the TTL do not
// hit the remote endpoint again. Keys are SHA256 digests of the request
// identity, which keeps file names filesystem-safe.
package cache
