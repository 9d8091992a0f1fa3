package main

import (
	"os"

	"github.com/askiada/go-pipeline-loader/internal/cli"
)

func main() {
	os.Exit(int(cli.Run()))
}
