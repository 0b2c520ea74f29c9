// Package config provides configuration loading, merging, and validation
// for the user records server.
//
// Configuration is assembled from environment variables, command-line flags
// and an optional JSON file. Sources are merged with mergo; a field already
// set by an earlier source is not overwritten by a later one, so the
// effective priority is env, then flags, then JSON.
//
// The main entry point is [GetStructuredConfig]. The command line client
// loads its smaller [ClientConfig] through [GetClientConfig], where flags
// override the environment.
package config
