package main

import "versync/cmd"

func main() {
	cmd.Execute()
}
