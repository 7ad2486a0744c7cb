package main

import "vincode/internal/cli"

func main() {
	cli.Execute()
}
