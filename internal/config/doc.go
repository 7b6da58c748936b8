// Package config provides configuration loading, merging, and validation
// facilities for the marketplace binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. .env file
//  3. Environment variables
//  4. Command-line flags
//  5. JSON config file
//
// The main entry points are [GetStructuredConfig] for the API server,
// [GetSeedConfig] for the demo data seeder and [GetClientConfig] for the
// command-line API client.
package config
