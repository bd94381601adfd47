// Package buildinfo carries release stamps set with -ldflags "-X ...".
package buildinfo

// Empty for local builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
