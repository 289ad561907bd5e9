package main

import (
	"fmt"
	"os"

	"github.com/mintbomb27/cc-wrapped/cmd"
)

var version = "dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("cc-wrapped version %s\n", version)
		os.Exit(0)
	}

	cmd.Execute()
}
