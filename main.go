package main

import "govctl/internal/cli"

func main() {
	cli.Execute()
}
