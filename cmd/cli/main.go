// csvsift - consolidated extracts from dated, zipped CSV drops.
//
// csvsift locates dated ZIP archives in a folder, reads the CSV member of
// each, and writes one consolidated CSV: either the rows matching a column
// comparison (find) or one row per minimum time interval (sample).
package main

import (
	"os"

	"csvsift/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
