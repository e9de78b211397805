package main

import (
	"github.com/foomo/readmeq/cmd"
)

func main() {
	cmd.Execute()
}
