package main

import "priorart/cmd"

func main() {
	cmd.Execute()
}
