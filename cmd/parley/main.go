package main

import (
	"os"

	"voxel.cafe/parley/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
