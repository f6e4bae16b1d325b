package main

import (
	"github.com/daedaleanai/buildroot/cmd"
)

func main() {
	cmd.Execute()
}
