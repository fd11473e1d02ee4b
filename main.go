package main

import (
	"os"

	"github.com/vipcxj/typekit/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
