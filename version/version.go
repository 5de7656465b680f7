// Package version provides the version of po-sync-helper.
package version

// Version of po-sync-helper.
const Version = "0.1.0"
