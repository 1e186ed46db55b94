package main

import (
	"fmt"
	"os"

	"github.com/khalid-nowaf/wordtrie/pkg/cli"
)

func main() {
	if err := cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
