package main

import "github.com/sarchlab/debugtag/debugtag/cmd"

func main() {
	cmd.Execute()
}
