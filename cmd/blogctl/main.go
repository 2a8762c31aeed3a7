package main

import (
	"github.com/tpdoyle87/tomanddeb-sub001/cmd/blogctl/cmd"
)

func main() {
	cmd.Execute()
}
