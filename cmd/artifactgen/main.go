// Command artifactgen adds synthetic histology artifacts to image tiles.
package main

import (
	"os"

	"github.com/gogpu/artifact/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
