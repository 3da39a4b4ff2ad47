package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"lampgrid/internal/config"
	"lampgrid/internal/coordinator"
	"lampgrid/internal/domain"
	"lampgrid/internal/eventbus"
	"lampgrid/internal/logging"
	"lampgrid/internal/ui"
	"lampgrid/internal/ui/views"
)

// initialCanvasWidth is used to lay out configured lamps before the first
// window size is known
const initialCanvasWidth = 80

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run starts lampgrid and returns the process exit code. Deferred cleanup
// happens before main exits.
func run(args []string, stdout, stderr io.Writer) int {
	// Parse command line arguments
	var configPath string
	var writeConfig bool
	flags := flag.NewFlagSet("lampgrid", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&configPath, "config", "", "Path to config file")
	flags.StringVar(&configPath, "c", "", "Path to config file (shorthand)")
	flags.BoolVar(&writeConfig, "write-config", false, "Write the default config file and exit")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	configSvc := config.NewConfigServiceAt(configPath)

	if writeConfig {
		if err := configSvc.Save(config.DefaultConfig()); err != nil {
			fmt.Fprintf(stderr, "Error writing config: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Wrote %s\n", configSvc.Path())
		return 0
	}

	// Load configuration
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}

	// Set up logging
	logCloser, err := logging.Setup(logging.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
		JSON:  cfg.Log.JSON,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Could not open log file: %v\n", err)
		return 1
	}
	defer logCloser.Close()

	log.Info().Str("config", configSvc.Path()).Msg("Starting lampgrid")

	// Create event bus and the canvas core
	bus := eventbus.New()
	coord := coordinator.NewCoordinator(bus, coordinator.Options{
		DefaultGroupName:    cfg.Groups.DefaultName,
		DefaultGroupColor:   domain.Color(cfg.Groups.DefaultColor),
		SelectAllKey:        cfg.SelectAllKey(),
		DoubleClickInterval: cfg.DoubleClickInterval(),
		HitRadius:           cfg.Canvas.LampRadius,
	})
	defer coord.Close()

	for n := 0; n < cfg.Canvas.InitialLamps; n++ {
		coord.AddLamp(views.SpawnPoint(n, initialCanvasWidth))
	}

	// Create UI model
	uiModel := ui.NewModel(coord, cfg)
	defer uiModel.Close()

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Run the UI
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("Program exited with error")
		fmt.Fprintf(stderr, "Error running program: %v\n", err)
		return 1
	}

	log.Info().Int("lamps", coord.Lamps.Len()).Int("groups", coord.GroupStore.Len()).Msg("Exiting lampgrid")
	return 0
}
