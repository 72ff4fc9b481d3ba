// Command giftexchangectl is the operator CLI for the gift exchange service.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
