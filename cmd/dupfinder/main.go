package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	dupfinder "github.com/mattkeenan/dupfinder/pkg"
)

func main() {
	app := cli.App{
		Name:      "dupfinder",
		Usage:     "find duplicate files by content",
		ArgsUsage: "[PATH]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "no-recursive",
				Aliases: []string{"n"},
				Usage:   "scan only the top-level directory",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "show per-stage progress",
			},
			&cli.BoolFlag{
				Name:    "size",
				Aliases: []string{"S"},
				Usage:   "show file sizes and reclaimable space",
			},
			&cli.BoolFlag{
				Name:    "hardlinks",
				Aliases: []string{"H"},
				Usage:   "treat hard links to the same file as duplicates",
			},
			&cli.BoolFlag{
				Name:    "relative",
				Aliases: []string{"R"},
				Usage:   "display paths relative to the scan root",
			},
			&cli.StringSliceFlag{
				Name:    "pattern",
				Aliases: []string{"p"},
				Usage:   "only scan files matching glob `PATTERN` (repeatable)",
			},
			&cli.StringFlag{
				Name:  "regex",
				Usage: "only scan files matching regular expression `REGEX`",
			},
			&cli.StringFlag{
				Name:  "json",
				Usage: "write a JSON report to `FILE`",
			},
			&cli.StringFlag{
				Name:  "delete-script",
				Usage: "write a removal script to `FILE`",
			},
			&cli.StringFlag{
				Name:  "algorithm",
				Usage: "fingerprint algorithm (blake3, md5)",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "read configuration from `FILE` instead of ~/.dupfinder/config",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "dupfinder: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	if ctx.NArg() > 1 {
		return fmt.Errorf("expected at most one path argument, got %d", ctx.NArg())
	}
	root := "."
	if ctx.NArg() == 1 {
		root = ctx.Args().First()
	}

	config, err := dupfinder.LoadConfig(ctx.String("config"))
	if err != nil {
		return err
	}
	outputConfig := config.GetOutputConfig()

	if err := dupfinder.ValidateColorMode(outputConfig.Color); err != nil {
		return err
	}
	switch {
	case ctx.Bool("no-color"), strings.EqualFold(outputConfig.Color, "never"):
		color.NoColor = true
	case strings.EqualFold(outputConfig.Color, "always"):
		color.NoColor = false
	}

	algorithmName := ctx.String("algorithm")
	if algorithmName == "" {
		algorithmName = config.GetFingerprintConfig().Algorithm
	}
	algorithm, err := dupfinder.GetFingerprintAlgorithm(algorithmName)
	if err != nil {
		return err
	}

	readBuffer, err := dupfinder.ParseHumanSize(config.GetScanConfig().ReadBuffer)
	if err != nil {
		return fmt.Errorf("invalid read_buffer in config: %w", err)
	}

	filter, err := dupfinder.NewNameFilter(ctx.StringSlice("pattern"), ctx.String("regex"))
	if err != nil {
		return err
	}

	basePath, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve scan path %s: %w", root, err)
	}

	verbose := ctx.Bool("verbose") || outputConfig.Verbose
	opts := dupfinder.Options{
		Root:             root,
		BasePath:         basePath,
		Recursive:        !ctx.Bool("no-recursive"),
		Verbose:          verbose,
		ShowSize:         ctx.Bool("size"),
		IncludeHardlinks: ctx.Bool("hardlinks"),
		RelativePaths:    ctx.Bool("relative"),
		Filter:           filter,
		Algorithm:        algorithm,
		ReadBuffer:       readBuffer,
	}

	notify := dupfinder.NewNotifier(os.Stdout, verbose)
	if verbose {
		notify.StageBanner(fmt.Sprintf("scanning %s (algorithm: %s, buffer: %s)",
			basePath, algorithm.Name, dupfinder.FormatSize(int64(readBuffer))))
	}

	shutdown := setupSignalHandler()

	finder := dupfinder.NewFinder(opts, notify)
	result, err := finder.Run(shutdown)
	if err != nil {
		if errors.Is(err, dupfinder.ErrInterrupted) {
			return err
		}
		return fmt.Errorf("scan failed: %w", err)
	}

	dupfinder.WriteConsoleReport(os.Stdout, result, finder.Options())

	// Exports are independent; a failed one warns without blocking the
	// other.
	if path := ctx.String("json"); path != "" {
		report := dupfinder.BuildReport(result, finder.Options(), time.Now())
		if err := dupfinder.WriteJSONReport(path, report); err != nil {
			fmt.Fprintf(os.Stderr, "dupfinder: warning: %v\n", err)
		} else {
			fmt.Fprintf(os.Stdout, "JSON report written to %s\n", path)
		}
	}

	if path := ctx.String("delete-script"); path != "" {
		renderer := dupfinder.RendererForOS(runtime.GOOS)
		meta := dupfinder.ScriptMeta{BasePath: basePath, Generated: time.Now()}
		if err := dupfinder.WriteScript(path, renderer, result, meta); err != nil {
			fmt.Fprintf(os.Stderr, "dupfinder: warning: %v\n", err)
		} else {
			fmt.Fprintf(os.Stdout, "removal script (%s) written to %s\n", renderer.Name(), path)
		}
	}

	return nil
}
