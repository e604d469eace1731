package main

import (
	"os"

	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
