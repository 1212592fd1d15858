package main

import (
	"github.com/go-imsto/imbatch/cmd"
)

func main() {
	cmd.Main()
}
