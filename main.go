package main

import "github/chapool/go-receive/cmd"

func main() {
	cmd.Execute()
}
