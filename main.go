package main

import "stpsched/cmd"

func main() {
	cmd.Execute()
}
