package main

import (
	"github.com/tutils/lcg/cmd"
)

func main() {
	cmd.Execute()
}
