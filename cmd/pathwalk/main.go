package main

import "github.com/katalvlaran/asciipath/cmd/pathwalk/cmd"

func main() {
	cmd.Execute()
}
