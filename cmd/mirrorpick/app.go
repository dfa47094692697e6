package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"mirrorpick/internal/catalog"
	"mirrorpick/internal/config"
	"mirrorpick/internal/eventbus"
	"mirrorpick/internal/platform"
)

type globalFlags struct {
	configPath  string
	envFile     string
	platform    string
	profilePath string
	dataDir     string
}

func registerGlobalFlags(cmd *cobra.Command, flags *globalFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file (default: <user config dir>/mirrorpick/config.toml)")
	pf.StringVar(&flags.envFile, "env-file", ".env", "Environment file with MIRRORPICK_* overrides")
	pf.StringVar(&flags.platform, "platform", "", "Built-in platform profile (windows, mac)")
	pf.StringVar(&flags.profilePath, "profile", "", "YAML platform profile, overrides --platform")
	pf.StringVarP(&flags.dataDir, "dir", "d", "", "Directory holding the list files")
}

// app holds everything a subcommand needs after startup
type app struct {
	cfg     *config.Config
	profile *platform.Profile
	bus     *eventbus.Bus
	logFile *os.File
}

// setup loads configuration, redirects logging and resolves the platform
// profile. logToStderr keeps log output visible for headless commands.
func setup(flags *globalFlags, logToStderr bool) (*app, error) {
	if err := config.LoadDotEnv(flags.envFile); err != nil {
		return nil, err
	}

	svc := configService(flags)
	cfg, err := svc.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", svc.Path(), err)
	}

	if flags.platform != "" {
		cfg.Platform = flags.platform
	}
	if flags.profilePath != "" {
		cfg.Profile = flags.profilePath
	}
	if flags.dataDir != "" {
		cfg.DataDir = flags.dataDir
	}

	a := &app{cfg: cfg}
	a.openLog(logToStderr)

	if cfg.Profile != "" {
		a.profile, err = platform.LoadProfile(cfg.Profile)
	} else {
		a.profile, err = platform.Lookup(cfg.Platform)
	}
	if err != nil {
		a.close()
		return nil, err
	}
	log.Printf("Using profile %s, data dir %s", a.profile.Name, cfg.DataDir)

	a.bus = eventbus.New()
	subscribeEventLog(a.bus)
	return a, nil
}

func (a *app) openLog(logToStderr bool) {
	logFile, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		if !logToStderr {
			log.SetOutput(io.Discard)
		}
		return
	}
	a.logFile = logFile
	if logToStderr {
		log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	} else {
		log.SetOutput(logFile)
	}
}

func (a *app) close() {
	if a.bus != nil {
		a.bus.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// sources returns the catalog sources for the active profile, with config
// overrides for their locations
func (a *app) sources() []catalog.Source {
	primary := a.profile.PrimarySource
	if a.cfg.Sources.Primary != "" {
		primary = a.cfg.Sources.Primary
	}
	srcs := []catalog.Source{{Name: "primary", Location: primary}}

	augment := a.profile.AugmentSource
	if a.cfg.Sources.Augment != "" {
		augment = a.cfg.Sources.Augment
	}
	if augment != "" {
		srcs = append(srcs, catalog.Source{
			Name:          "augment",
			Location:      augment,
			OwnedCategory: a.profile.AugmentCategory,
		})
	}
	return srcs
}

// subscribeEventLog writes every domain event to the log
func subscribeEventLog(bus eventbus.EventBus) {
	for _, t := range []eventbus.EventType{
		eventbus.EventCatalogLoaded,
		eventbus.EventCatalogLoadFailed,
		eventbus.EventViewChanged,
		eventbus.EventSelectionChanged,
		eventbus.EventManifestBuilt,
		eventbus.EventListSaved,
		eventbus.EventFileUploaded,
	} {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			log.Printf("event %s: %+v", e.Type(), e)
		})
	}
}
