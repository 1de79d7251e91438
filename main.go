// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/mattn/go-isatty"

	"pebble/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the Pebble REPL, %s!\n", currentUser.Username)
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		repl.Start(os.Stdin, os.Stdout)
		return
	}
	fmt.Println("Ctrl+C cancels the current input, Ctrl+D exits.")
	repl.StartInteractive(os.Stdout)
}
