// Command almost renders showcase applications to HTML documents.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/almost/cmd/almost/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
