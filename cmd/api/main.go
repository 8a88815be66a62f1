package main

import (
	"os"

	"github.com/yigit/coursereg/internal/cli"
)

// @title Course Registration API
// @version 1.0
// @description API for managing students, courses and enrollments

// @host localhost:8080
// @BasePath /api
// @schemes http

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
