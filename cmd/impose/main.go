// impose is a service-virtualization server: it binds imposters to
// ports and answers requests with canned, stub-matched responses.
package main

import "os"

// Build-time variables set via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
