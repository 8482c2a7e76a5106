package main

import (
	"os"

	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
