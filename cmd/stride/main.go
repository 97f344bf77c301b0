package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Carmen-Shannon/oxy-stride/config"
)

var CLI struct {
	Debug bool `help:"Whether to enable debug logging."`

	Run struct {
		Configs []string `arg:"" optional:"" name:"configs" help:"Configuration files, applied in order over the defaults." type:"existingfile"`
		Assets  string   `help:"Directory holding meshes and textures. Overrides assets.dir." type:"existingdir"`
		Frames  uint64   `help:"Quit after this many frames (0 runs until the window closes)."`
	} `cmd:"" default:"withargs" help:"Open the window and play the scene."`

	Simulate struct {
		Scripts []string `arg:"" name:"scripts" help:"Input scripts to replay." type:"existingfile"`
		Config  []string `help:"Configuration files, applied in order over the defaults." type:"existingfile" short:"c"`
		Assets  string   `help:"Directory holding meshes. Overrides assets.dir." type:"existingdir"`
		Workers int      `help:"Number of scripts replayed at once." default:"4"`
		Out     string   `help:"Write traces to this file instead of standard output." type:"path"`
	} `cmd:"" help:"Replay input scripts headlessly and write per-frame traces."`

	Config struct {
		Resolved []string `arg:"" optional:"" name:"configs" help:"Print the merged result of these files instead of the defaults." type:"existingfile"`
	} `cmd:"" help:"Write the default configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func loadConfig(paths []string, assets string) (*config.Config, error) {
	cfg, err := config.Load(paths...)
	if err != nil {
		return nil, err
	}
	if assets != "" {
		cfg.Assets.Dir = assets
	}
	return cfg, nil
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("stride"),
		kong.Description("a walking dummy, a ball and a soccer pitch"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	switch ctx.Command() {
	case "run", "run <configs>":
		if err := runCommand(CLI.Run.Configs, CLI.Run.Assets, CLI.Run.Frames); err != nil {
			writeError(err)
		}
	case "simulate <scripts>":
		s := CLI.Simulate
		if err := simulateCommand(s.Config, s.Assets, s.Scripts, s.Workers, s.Out); err != nil {
			writeError(err)
		}
	case "config":
		os.Stdout.Write(config.DEFAULT)
	case "config <configs>":
		cfg, err := config.Load(CLI.Config.Resolved...)
		if err != nil {
			writeError(err)
		}
		if err := cfg.Encode(os.Stdout); err != nil {
			writeError(err)
		}
	}
}
