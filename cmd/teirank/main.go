// Command teirank reports the persons most referenced across a
// collection of TEI-XML documents.
package main

import (
	"os"

	"github.com/archivlab/teirank/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// cobra already printed the error; exit non-zero.
		os.Exit(1)
	}
}
