// Command autocomplete builds and queries a persisted top-k completion
// index (spec.md §6).
package main

import (
	"os"

	"github.com/pombredanne/autocomplete/cmd/autocomplete/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
