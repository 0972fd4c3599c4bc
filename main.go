package main

import "github.com/alexiusacademia/gosteam/cmd"

func main() {
	cmd.Execute()
}
