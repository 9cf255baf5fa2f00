package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"InkBoard/internal/config"
	"InkBoard/internal/export"
	inknet "InkBoard/internal/net"
	"InkBoard/internal/state"
	"InkBoard/internal/store"
	"InkBoard/internal/ui"
)

var (
	version     = "dev"
	configArg   = flag.String("config", "", "Path to the settings file. Defaults to the user config directory.")
	docArg      = flag.String("doc", "", "Path to the drawing document. Overrides the settings file.")
	sharePtr    = flag.Bool("share", false, "Mirror the drawing to viewers on the local network.")
	portArg     = flag.Int("port", 0, "Port for -share. Overrides the settings file.")
	discoverPtr = flag.Bool("discover", false, "List mirrors on the local network and exit.")
	exportArg   = flag.String("export", "", "Export the document to a .pdf, .svg or .png file and exit.")
	widthArg    = flag.Float64("width", 1000, "Page width in pixels for -export.")
	darkPtr     = flag.Bool("dark", false, "Use the dark color scheme for -export.")
	debugPtr    = flag.Bool("debug", false, "Enable debug logging.")
	versionPtr  = flag.Bool("version", false, "Print version.")
)

func main() {
	flag.Parse()

	if *versionPtr {
		fmt.Printf("InkBoard Version: %s\n", version)
		os.Exit(0)
	}

	level := zerolog.InfoLevel
	if *debugPtr {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if *discoverPtr {
		check(discover())
		os.Exit(0)
	}

	conf, err := loadConfig()
	check(err)
	if *docArg != "" {
		conf.Document = *docArg
	}
	if *portArg != 0 {
		conf.Share.Port = *portArg
	}
	conf.Share.Enabled = conf.Share.Enabled || *sharePtr

	file := store.NewFile(conf.Document)
	file.Logger = logger
	surface, err := file.LoadOrEmpty()
	if err != nil {
		logger.Warn().Err(err).Msg("[MAIN] document unreadable, starting empty")
	}
	surface.Logger = logger

	if *exportArg != "" {
		check(exportDocument(surface, logger))
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var shareURL string
	if conf.Share.Enabled {
		hub := inknet.NewHub()
		hub.Logger = logger
		share, err := inknet.StartShare(ctx, hub, conf.Share.Name, conf.Share.Port, logger)
		check(err)
		defer share.Close()
		stop := inknet.Mirror(surface, hub)
		defer stop()
		shareURL = share.URL
	}

	app := ui.NewApp(ui.Options{
		Config:     conf,
		ConfigPath: *configArg,
		Surface:    surface,
		File:       file,
		ShareURL:   shareURL,
		Logger:     logger,
	})
	app.Run()
}

func loadConfig() (*config.Config, error) {
	if *configArg != "" {
		return config.Load(*configArg)
	}
	return config.GetAppConfig()
}

func exportDocument(s *state.Surface, logger zerolog.Logger) error {
	scheme := state.Light
	if *darkPtr {
		scheme = state.Dark
	}
	e := export.New()
	e.Logger = logger
	opts := export.PageOptions(s, *widthArg, scheme, false)
	return errors.Wrap(e.WriteFile(*exportArg, s, opts), "export failed")
}

func discover() error {
	found, err := inknet.Discover(2 * time.Second)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		fmt.Println("No mirrors found.")
		return nil
	}
	for _, url := range found {
		fmt.Println(url)
	}
	return nil
}

func check(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Encountered error(s): %s\n", err)
		os.Exit(1)
	}
}
