// Command voronoi-batch renders a dataset of voronoi texture pairs: the flat
// diagram and its relief-shaded counterpart, plus a CSV sheet of the
// parameters behind every pair.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"voronoi-relief/internal/batch"
	"voronoi-relief/internal/config"
	"voronoi-relief/internal/logger"
)

func main() {
	cfg, err := config.Load(configPathArg(os.Args[1:]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	flag.String("config", "", "optional YAML config file")
	cfg.Bind(flag.CommandLine)
	cfg.BindBatch(flag.CommandLine)
	flag.Parse()

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := batch.Run(cfg); err != nil {
		logger.Sugar.Errorw("batch failed", "error", err)
		os.Exit(1)
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
