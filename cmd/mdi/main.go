package main

import "github.com/matthiasg/markdown-inspector/internal/cli"

func main() {
	cli.Execute()
}
