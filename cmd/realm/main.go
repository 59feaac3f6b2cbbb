package main

import "github.com/karnadev/dragonsrealm/internal/realm/cli"

func main() {
	cli.Execute()
}
