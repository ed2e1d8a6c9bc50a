package main

import "github.com/noticehub/noticehub/cmd"

func main() {
	cmd.Execute()
}
