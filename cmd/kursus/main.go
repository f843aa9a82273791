package main

import (
	"github.com/kursusapp/kursus/internal/cli"
)

func main() {
	cli.Execute()
}
