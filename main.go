package main

import "github.com/promptloom/promptloom/cmd"

func main() {
	cmd.Execute()
}
