package main

import "vlist/internal/cmd"

func main() {
	cmd.Execute()
}
