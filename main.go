package main

import "github.com/TirtaBytes/nikcheck/cmd"

func main() {
	cmd.Execute()
}
