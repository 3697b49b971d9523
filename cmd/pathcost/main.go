// Command pathcost finds the cheapest wrapping left-to-right path through a
// grid read from a file, stdin or a flag, or serves the same over HTTP.
//
//	pathcost solve grid.txt
//	printf '1,2\n3,4\n' | pathcost solve --format json
//	pathcost serve --addr :8080
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
