package main

import (
	"github.com/soniakeys/exit"

	"github.com/soniakeys/sscat/internal/ssprog"
)

func main() {
	defer exit.Handler()
	if err := ssprog.Execute(); err != nil {
		exit.Log(err)
	}
}
