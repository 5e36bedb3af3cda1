package main

import "natalia/internal/cli"

func main() {
	cli.Execute()
}
