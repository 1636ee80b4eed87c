// Command dispatch-sim runs dispatch-policy simulations; see the cmd package
// for the run and sweep subcommands.
package main

import (
	"github.com/dispatch-sim/dispatch-sim/cmd"
)

func main() {
	cmd.Execute()
}
