// Package main is the entry point for libcat, an interactive book catalog.
//
// libcat keeps its catalog in a single JSON file (library.json by default)
// and presents a numbered menu on standard input. Configuration is read
// from CLI flags, falling back to the environment (LIBCAT_FILE,
// LIBCAT_LOG_LEVEL), which is seeded from a .env file when one exists.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/jpl-au/libcat"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "libcat: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl() error {
	loadEnvFiles()

	version := flag.Bool("version", false, "Print version and exit")
	file := flag.String("file", envOr("LIBCAT_FILE", libcat.DefaultPath), "Library file")
	logLevel := flag.String("log-level", envOr("LIBCAT_LOG_LEVEL", "warn"), "Log level (debug, info, warn, error)")
	syncWrites := flag.Bool("sync", false, "fsync the library file on every save")
	backup := flag.Bool("backup", false, "Keep a compressed copy of the previous save next to the library file")
	restore := flag.Bool("restore", false, "Restore the library from its backup before starting")
	flag.Parse()
	if len(flag.Args()) > 0 {
		return fmt.Errorf("unknown arguments: %v", flag.Args())
	}

	if *version {
		printVersion()
		return nil
	}

	ll := &slog.LevelVar{}
	if err := ll.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q", *logLevel)
	}
	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      ll,
		TimeFormat: "15:04:05.000", // Like time.TimeOnly plus milliseconds.
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))
	slog.SetDefault(logger)

	lib, err := libcat.Open(*file, libcat.Config{
		SyncWrites: *syncWrites,
		Backup:     *backup,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if *restore {
		if err := lib.Restore(); err != nil {
			if errors.Is(err, libcat.ErrNoBackup) {
				return fmt.Errorf("%s has no backup to restore", lib.Path())
			}
			return err
		}
		slog.Info("library restored from backup", "path", lib.Path(), "books", lib.Len())
	}

	return run(lib, os.Stdin, os.Stdout)
}

func printVersion() {
	version, goVersion, revision, dirty := getBuildInfo()
	fmt.Printf("libcat %s\n", version)
	fmt.Printf("  Go version: %s\n", goVersion)
	fmt.Printf("  Revision:   %s\n", revision)
	if dirty {
		fmt.Printf("  Modified:   true\n")
	}
}

func getBuildInfo() (version, goVersion, revision string, dirty bool) {
	version = "unknown"
	goVersion = "unknown"
	revision = "unknown"
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	version = info.Main.Version
	if version == "" || version == "(devel)" {
		version = "dev"
	}
	goVersion = info.GoVersion
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	return
}
