package main

import (
	"log"

	"github.com/koskimas/propgen/internal/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		log.Fatal(err.Error())
	}
}
