package main

import (
	"github.com/sprintertech/sprinter-quoter/cli"
)

func main() {
	cli.Execute()
}
