package main

import "github.com/mcoot/inboxd/internal/cli"

func main() {
	cli.Execute()
}
