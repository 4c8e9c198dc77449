package main

import "github.com/matthieukhl/gocrm/internal/cmd"

func main() {
	cmd.Execute()
}
