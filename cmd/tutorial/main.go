// Command tutorial runs one of the OpenGL tutorial scenes in a window.
package main

import (
	"os"

	"gltutorials/app"
	"gltutorials/core"
	"gltutorials/tutorials"
)

func main() {
	if err := newRootCmd(runScene).Execute(); err != nil {
		os.Exit(1)
	}
}

func runScene(cfg app.Config, t tutorials.Tutorial, opts tutorials.Options) error {
	a := app.New(cfg, t.New(cfg, opts), core.NewDesktop())
	return a.Run()
}
