// ops_generator writes ops/gen_ops.go: one Go function per operation defined in the op schemas.
//
// It is run with `go generate` from the ops package.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gomlx/opgraph/opdefs"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagSchema = flag.String("schema", "",
		"Directory with the op schema files (*.hcl). If empty, the schemas embedded in the opdefs package are used.")
	flagOutput = flag.String("output", "gen_ops.go", "File where to write the generated ops.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	klog.V(1).Info("ops_generator:")

	var reg *opdefs.Registry
	if *flagSchema == "" {
		reg = must.M1(opdefs.Default())
	} else {
		reg = opdefs.New()
		must.M(reg.LoadDir(context.Background(), *flagSchema))
	}

	f := must.M1(os.Create(*flagOutput))
	must.M(GenerateOps(f, reg))
	must.M(f.Close())
	fmt.Printf("✅ ops_generator:       \tsuccessfully generated %s (%d ops)\n", *flagOutput, reg.Len())
}
