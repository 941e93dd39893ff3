// Package config provides configuration loading, merging, and validation
// facilities for the quote-sync server and client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Unset tunables receive defaults after merging. The entry points are
// [GetServerConfig] and [GetClientConfig], each validating only the groups
// its process needs.
package config
