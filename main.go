package main

import (
	"context"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/bnema/walrus-registry/internal/adapters/in/cli"
)

var (
	version string
	commit  string
	date    string
)

func main() {
	if version != "" {
		cli.Version = version
	}
	if commit != "" {
		cli.Commit = commit
	}
	if date != "" {
		cli.BuildDate = date
	}

	if err := cli.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
