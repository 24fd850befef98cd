package main

import (
	"fmt"
	"os"

	"github.com/oddbits/bitkit/cmd/bitxor"
)

func main() {
	if err := bitxor.Cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
