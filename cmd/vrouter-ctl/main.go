package main

import (
	"context"
	"os"

	"github.com/opencontrail/vrouter-ctl/pkg/commands"
)

func main() {
	os.Exit(commands.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr, commands.NewVRouterClient))
}
