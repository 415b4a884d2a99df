package main

import "github.com/mendoc-dev/mendoc/cmd"

func main() {
	cmd.Execute()
}
