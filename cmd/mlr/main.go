// mlr is the ModuLair virtual environment manager CLI.
package main

import "github.com/modulair/modulair/internal/cmd"

func main() {
	cmd.Execute()
}
