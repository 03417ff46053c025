//go:build ebiten

// Command voronoi is the interactive viewer: it renders a voronoi texture
// pair and regenerates it live as seeds and shading parameters change.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"voronoi-relief/internal/app"
	"voronoi-relief/internal/config"
	"voronoi-relief/internal/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Load(configPathArg(os.Args[1:]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	flag.String("config", "", "optional YAML config file")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	game, err := app.New(cfg)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}

	ebiten.SetWindowTitle("voronoi-relief")
	ebiten.SetWindowSize(cfg.Voronoi.Width, cfg.Voronoi.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// configPathArg extracts the -config value before the real flag parse, so
// the file layer can be loaded first and flags can override it.
func configPathArg(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := strings.TrimLeft(args[i], "-")
		if arg == "config" && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(arg, "config="); ok {
			return v
		}
	}
	return ""
}
