package main

import (
	"fmt"
	"os"
)

func helper() {
	os.Exit(2)
}

func main() {
	defer fmt.Println("unreachable on exit")

	if len(os.Args) > 3 {
		os.Exit(1) // want "direct call to os.Exit in main function"
	}

	cleanup := func() {
		os.Exit(3)
	}
	_ = cleanup

	helper()
	os.Exit(0) // want "direct call to os.Exit in main function"
}
