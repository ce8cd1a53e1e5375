// Command textdump reads a file as encoded text and prints its
// characters one per line, forward or in reverse, in any of the five
// Unicode codecs this module implements (the trivial codec is not
// selectable).
package main

import (
	"os"

	"github.com/spf13/afero"
)

func main() {
	os.Exit(int(run(os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr)))
}
