// Command bleunet scores machine translation output against reference
// translations with BLEU and RIBES.
package main

import (
	"fmt"
	"os"

	"github.com/cidrugHug8/bleunet/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
