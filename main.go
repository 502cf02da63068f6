// main.go - CLI entry point
package main

import "mts-client/cmd"

func main() {
	cmd.Execute()
}
