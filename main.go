package main

import "Pantry-Backend/cmd/cli"

func main() {
	cli.Execute()
}
