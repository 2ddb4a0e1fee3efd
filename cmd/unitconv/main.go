// Command unitconv converts values between units of the same quantity,
// on the command line or as an MQTT bridge.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lone-faerie/unitconv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var exit *cmd.ExitError
		if errors.As(err, &exit) {
			if exit.Err != nil {
				fmt.Fprintln(os.Stderr, "Error:", exit.Err)
			}
			os.Exit(exit.Code)
		}

		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
