package main

import (
	"github.com/AzielCF/az-learn/cmd"
)

func main() {
	cmd.Execute()
}
