package main

import "object-storage/cmd"

func main() {
	cmd.Execute()
}
