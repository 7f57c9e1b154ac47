// wisdom-keystore 创建和管理口令保护的 Ed25519 keystore
package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprint(os.Stderr, pterm.Error.Sprintln(err.Error()))
		os.Exit(1)
	}
}
