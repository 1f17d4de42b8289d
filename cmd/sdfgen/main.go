package main

import "github.com/MeKo-Tech/sdfgen/internal/cmd"

func main() {
	cmd.Execute()
}
