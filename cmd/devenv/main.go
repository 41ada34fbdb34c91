package main

import (
	"github.com/project-devenv/devenv/cmd/devenv/cmd"
	"github.com/project-devenv/devenv/internal/pkg/logger"
)

// devenv setup
// devenv setup validate
// devenv setup validate --skip-validation toolchain
// devenv setup provision --recreate
// devenv version

func main() {
	logger.Init()
	defer logger.Flush()

	cmd.Execute()
}
