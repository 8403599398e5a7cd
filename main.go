package main

import "github.com/ghedger/regression/cmd"

func main() {
	cmd.Execute()
}
