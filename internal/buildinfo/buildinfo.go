package buildinfo

import "fmt"

// Name is the program name shown in the window title and log lines.
const Name = "raysphere"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for titles and log prefixes.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Long returns every build field, for the start-up log line.
func Long() string {
	return fmt.Sprintf("%s version=%s commit=%s date=%s", Name, Version, Commit, Date)
}
