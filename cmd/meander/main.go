package main

import "github.com/OpenTraceLab/MeanderTrace/cmd/meander/cmd"

func main() {
	cmd.Execute()
}
