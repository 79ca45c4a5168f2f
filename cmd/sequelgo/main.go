package main

import "github.com/sequelgo/sequelgo/cmd/sequelgo/cmd"

func main() {
	cmd.Execute()
}
