// Command apppath resolves, creates, inspects, opens and wipes the
// standard directories of an application.
//
//	apppath [flags] [command] <app-name>
//
// Commands: resolve (default), ensure, list, open, clean.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/GriffinCanCode/apppath"
	"github.com/GriffinCanCode/apppath/internal/config"
	"github.com/GriffinCanCode/apppath/internal/dirsize"
	"github.com/GriffinCanCode/apppath/internal/format"
	"github.com/GriffinCanCode/apppath/internal/logging"
	"github.com/GriffinCanCode/apppath/internal/sysopen"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadOrDefault()

	author := flag.String("author", "", "application author or vendor segment")
	version := flag.String("version", "", "application version segment")
	roaming := flag.Bool("roaming", false, "use the roaming profile root on Windows")
	outFormat := flag.String("format", cfg.Output.Format, "output format: text, json, yaml or toml")
	dir := flag.String("dir", "", "target directory for open/clean: data, config, cache, state, log or all")
	shared := flag.Bool("shared", false, "include site-wide directories")
	yes := flag.Bool("yes", false, "skip the confirmation prompt for clean")
	flag.Usage = usage
	flag.Parse()

	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	command, name := parseArgs(flag.Args())
	if name == "" {
		usage()
		os.Exit(2)
	}
	if !format.Valid(*outFormat) {
		logger.Fatal("unsupported output format", zap.String("format", *outFormat))
	}

	opts := []apppath.AppOption{}
	if *author != "" {
		opts = append(opts, apppath.WithAuthor(*author))
	}
	if *version != "" {
		opts = append(opts, apppath.WithVersion(*version))
	}
	if *roaming {
		opts = append(opts, apppath.WithRoaming())
	}

	app, err := apppath.New(name, opts...)
	if err != nil {
		logger.Fatal("invalid app identity", zap.Error(err))
	}

	paths, err := apppath.Resolve(app)
	if err != nil {
		logger.Fatal("path resolution failed", zap.Error(err))
	}
	logger.Debug("resolved paths", zap.String("app", app.Name()), zap.String("data_dir", paths.DataDir))

	switch command {
	case "resolve":
		err = printPaths(paths, *outFormat)
	case "ensure":
		err = runEnsure(paths, *shared)
	case "list":
		err = runList(paths, *shared)
	case "open":
		err = runOpen(paths, *dir, *shared)
	case "clean":
		err = runClean(paths, *dir, *yes)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Fatal("command failed", zap.String("command", command), zap.Error(err))
	}
}

func newLogger(cfg *config.Config) *logging.Logger {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return logging.NewDefault()
	}
	return logger
}

// parseArgs accepts "<name>" or "<command> <name>".
func parseArgs(args []string) (command, name string) {
	switch len(args) {
	case 1:
		return "resolve", args[0]
	case 2:
		return args[0], args[1]
	default:
		return "", ""
	}
}

func printPaths(paths apppath.PathSet, outFormat string) error {
	if strings.EqualFold(outFormat, format.Text) {
		fmt.Printf("data_dir: %s\n", paths.DataDir)
		fmt.Printf("config_dir: %s\n", paths.ConfigDir)
		fmt.Printf("cache_dir: %s\n", paths.CacheDir)
		fmt.Printf("state_dir: %s\n", paths.StateDir)
		fmt.Printf("log_dir: %s\n", paths.LogDir)
		fmt.Printf("shared_data_dir: %s\n", paths.SharedDataDir)
		fmt.Printf("shared_config_dir: %s\n", paths.SharedConfigDir)
		return nil
	}
	out, err := format.Marshal(paths, outFormat)
	if err != nil {
		return err
	}
	fmt.Println(strings.TrimRight(string(out), "\n"))
	return nil
}

func runEnsure(paths apppath.PathSet, shared bool) error {
	if err := paths.Ensure(); err != nil {
		return err
	}
	if shared {
		return paths.EnsureShared()
	}
	return nil
}

func runList(paths apppath.PathSet, shared bool) error {
	entries := []struct{ label, path string }{
		{"data", paths.DataDir},
		{"config", paths.ConfigDir},
		{"cache", paths.CacheDir},
		{"state", paths.StateDir},
		{"log", paths.LogDir},
	}
	if shared {
		for _, d := range paths.SharedDataDirs {
			entries = append(entries, struct{ label, path string }{"shared-data", d})
		}
		for _, d := range paths.SharedConfigDirs {
			entries = append(entries, struct{ label, path string }{"shared-config", d})
		}
	}
	for _, e := range entries {
		fmt.Printf("%-14s %s %s\n", e.label, e.path, describeDir(e.path))
	}
	return nil
}

func describeDir(path string) string {
	if _, err := os.Stat(path); err != nil {
		return "(missing)"
	}
	info, err := dirsize.Of(path)
	if err != nil {
		return "(unreadable)"
	}
	return fmt.Sprintf("(%d files, %s)", info.Files, dirsize.Human(info.Bytes))
}

func runOpen(paths apppath.PathSet, dir string, shared bool) error {
	if dir == "" {
		dir = "data"
	}
	target, err := pickDir(paths, dir, shared)
	if err != nil {
		return err
	}
	if !shared {
		// Create on demand so the file manager has something to show.
		if err := paths.Ensure(); err != nil {
			return err
		}
	}
	fmt.Printf("Opening %s in the system file manager\n", target)
	return sysopen.Open(target)
}

func runClean(paths apppath.PathSet, dir string, yes bool) error {
	if dir == "" {
		dir = "cache"
	}

	var targets []string
	if dir == "all" {
		targets = paths.UserDirs()
	} else {
		target, err := pickDir(paths, dir, false)
		if err != nil {
			return err
		}
		targets = []string{target}
	}

	for _, t := range targets {
		fmt.Printf("Wiping %s %s\n", t, describeDir(t))
	}
	if !yes && !confirm() {
		fmt.Println("Aborted")
		return nil
	}

	if dir == "all" {
		return paths.Clean()
	}
	if err := os.RemoveAll(targets[0]); err != nil {
		return fmt.Errorf("remove directory %s: %w", targets[0], err)
	}
	return nil
}

func pickDir(paths apppath.PathSet, dir string, shared bool) (string, error) {
	if shared {
		switch dir {
		case "data":
			return paths.SharedDataDir, nil
		case "config":
			return paths.SharedConfigDir, nil
		}
		return "", fmt.Errorf("directory %q not in shared options (data, config)", dir)
	}
	switch dir {
	case "data":
		return paths.DataDir, nil
	case "config":
		return paths.ConfigDir, nil
	case "cache":
		return paths.CacheDir, nil
	case "state":
		return paths.StateDir, nil
	case "log":
		return paths.LogDir, nil
	}
	return "", fmt.Errorf("directory %q not in user options (data, config, cache, state, log)", dir)
}

func confirm() bool {
	fmt.Print("Proceed? [y/N] ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: apppath [flags] [command] <app-name>

Commands:
  resolve   print the application's directories (default)
  ensure    create the per-user directories (-shared for site dirs too)
  list      show each directory with its size on disk
  open      reveal a directory in the system file manager (-dir, -shared)
  clean     recursively delete a directory (-dir, default cache; -yes)

Flags:
`)
	flag.PrintDefaults()
}
