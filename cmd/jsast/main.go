// Command jsast renders and reduces ECMAScript-3 syntax trees serialized
// in the ast package's JSON tree-interchange format.
package main

import (
	"os"

	"github.com/cwbudde/go-dws/cmd/jsast/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
