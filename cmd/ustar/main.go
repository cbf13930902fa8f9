package main

import "github.com/pojntfx/ustar/cmd/ustar/cmd"

func main() {
	cmd.Execute()
}
