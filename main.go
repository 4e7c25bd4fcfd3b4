package main

import (
	"os"
	"vincit.fi/eink-slideshow/common/logger"
	"vincit.fi/eink-slideshow/ui/cli"
)

func main() {
	logger.Initialize(logger.INFO)
	if err := cli.Execute(); err != nil {
		logger.Error.Printf("%s", err)
		os.Exit(1)
	}
}
