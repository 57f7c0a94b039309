// tagcell runs and validates declarative cell workloads.
//
// Usage:
//
//	tagcell run [workload_path]
//	tagcell validate [workload_path]
//	tagcell version
//
// Examples:
//
//	tagcell validate ./examples/workloads/ledger.yaml
//	tagcell run ./examples/workloads/ledger.yaml
//	tagcell run --verbose ./examples/workloads
package main

import (
	"fmt"
	"os"

	"github.com/lex00/tagcell-go/cmd"
)

func main() {
	root := cmd.NewRootCommand()
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
