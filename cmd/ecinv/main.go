package main

import (
	"github.com/cacheops/ecinv/pkg/cli"
)

func main() {
	cli.Execute()
}
