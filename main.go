// The main package for the visibility-scanner executable.
package main

import (
	"github.com/aiseoaudit/visibility-scanner/cmd"
)

// main hands control to the CLI layer, which owns config loading,
// command dispatch, and exit codes.
func main() {
	cmd.Execute()
}
