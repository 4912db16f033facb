package main

import "mreflow/cmd/mreflow/cmd"

func main() {
	cmd.Execute()
}
