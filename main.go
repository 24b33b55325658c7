package main

import "briefly/cmd"

func main() {
	cmd.Execute()
}
