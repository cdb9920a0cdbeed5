package main

import "github.com/guzus/sofaspin/cmd"

func main() {
	cmd.Execute()
}
