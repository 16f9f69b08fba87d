package main

import "github.com/opencode-ai/base16/internal/cli"

func main() {
	cli.Execute()
}
