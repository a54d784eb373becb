package main

import (
	"os"

	"github.com/SamanGhn/Cloudflare-Dashboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
