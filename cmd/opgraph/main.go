// opgraph is a command line tool to inspect and validate op schemas.
//
// Usage:
//
//	opgraph list [prefix]        # Lists the registered ops.
//	opgraph describe OP          # Describes the inputs, outputs and attributes of an op.
//	opgraph validate PATH...     # Validates schema files or directories.
//
// By default, it uses the op schemas embedded in the opdefs package. Use --schema=<dir> to use other schemas.
package main

import (
	"context"
	"fmt"
	"os"

	"k8s.io/klog/v2"
)

func main() {
	defer klog.Flush()
	if err := NewCLI().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}
