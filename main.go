package main

import "github.com/jfmyers9/riptide/cmd"

func main() {
	cmd.Execute()
}
