package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/fatih/color"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

func main() {
	t := term.FromEnv()
	width, _, err := t.Size()
	if err != nil {
		width = 80
	}
	out := output{w: t.Out(), errW: t.ErrOut(), isTTY: t.IsTerminalOutput(), width: width}

	if err := newRootCmd(out).Execute(); err != nil {
		color.New(color.FgRed).Fprintf(out.errW, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionString() string {
	return fmt.Sprintf("shop-tui %s", version)
}
