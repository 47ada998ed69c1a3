package main

import "github.com/delivergen/delivergen/cmd"

func main() {
	cmd.Execute()
}
