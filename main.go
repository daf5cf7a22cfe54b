package main

import (
	"os"

	"github.com/MullaAhmed/claude-skill-generator/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
