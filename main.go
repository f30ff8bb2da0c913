package main

import "github.com/Mohsinsiddi/w3bind/cmd"

func main() {
	cmd.Execute()
}
