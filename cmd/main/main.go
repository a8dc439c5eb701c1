package main

import (
	"context"
	"fmt"
	"os"

	"bookmarks/marklint/internal/config"
	"bookmarks/marklint/internal/container"
	"bookmarks/marklint/internal/service"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	dead := pflag.Bool("dead", false, "Attempt to contact each link, report links with errors")
	noDuplicates := pflag.Bool("noduplicates", false, "Disable (default enabled) checking for duplicate links")
	pflag.Int("limit", -1, "Limit number of links for dead link check (mostly for testing)")
	format := pflag.String("format", "auto", "Backup format: auto, json or html")
	dumpTitles := pflag.String("dump-titles", "", "Write every bookmark path and title to the given file")
	verbose := pflag.BoolP("verbose", "v", false, "Enable debug logging")
	showVersion := pflag.Bool("version", false, "Print version and exit")
	pflag.Parse()

	if *showVersion {
		fmt.Printf("marklint %s\n", version)
		return
	}

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if pflag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] BACKUP_FILE\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(2)
	}

	// Let the config file set a default probe limit while an explicit
	// --limit still wins.
	if err := viper.BindPFlag("checker.limit", pflag.Lookup("limit")); err != nil {
		log.Fatalf("Failed to bind flags: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	app, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	opts := service.Options{
		CheckDead:    *dead,
		NoDuplicates: *noDuplicates,
		Limit:        cfg.Checker.Limit,
		Format:       *format,
		DumpTitles:   *dumpTitles,
	}

	code, err := app.Service.Run(context.Background(), pflag.Arg(0), opts)
	if err != nil {
		log.Fatalf("%v", err)
	}

	os.Exit(code)
}
