// Command uribuild parses and builds URIs from the command line.
//
//	uribuild --scheme https --host example.com --path docs --param q=go
//	uribuild --format json 'https://example.com/a?b=1#c'
package main

import (
	"os"

	"github.com/ghettovoice/uribuilder/internal/cli"
)

func main() {
	os.Exit(cli.Run("uribuild", os.Args[1:], os.Stdout, os.Stderr))
}
