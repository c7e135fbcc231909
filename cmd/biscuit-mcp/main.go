package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/biscuit-tools-mcp/internal/config"
	"github.com/ironsheep/biscuit-tools-mcp/internal/imaging"
	"github.com/ironsheep/biscuit-tools-mcp/internal/labelling"
	"github.com/ironsheep/biscuit-tools-mcp/internal/logger"
	"github.com/ironsheep/biscuit-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("biscuit-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			usage()
			return
		}
	}

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr; stdout is for MCP protocol.
	log, err := logger.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) > 1 && os.Args[1] == "process" {
		if len(os.Args) != 4 {
			usage()
			os.Exit(2)
		}
		if err := process(cfg, log, os.Args[2], os.Args[3]); err != nil {
			log.WithError(err).Fatal("process failed")
		}
		return
	}

	log.WithFields(logrus.Fields{
		"version": Version,
		"built":   BuildTime,
		"commit":  GitCommit,
	}).Debug("biscuit MCP server starting")

	srv := server.New(cfg, log)
	if err := srv.Run(); err != nil {
		log.WithError(err).Fatal("server error")
	}
}

func usage() {
	fmt.Println("biscuit-tools-mcp - MCP server that finds and colors connected blobs in images")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  biscuit-tools-mcp                     Serve MCP over stdin/stdout")
	fmt.Println("  biscuit-tools-mcp process IN OUT.png  Color the blobs of IN once and write OUT.png")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables (also read from ./.env):")
	fmt.Printf("  %s=debug           Log level (default info)\n", config.EnvLogLevel)
	fmt.Printf("  %s=#RRGGBB[AA]    Background color (default #FFFFFF)\n", config.EnvBackground)
	fmt.Printf("  %s=100             Initial color table size\n", config.EnvTableSize)
	fmt.Printf("  %s=42                    Color seed (default: time based)\n", config.EnvSeed)
	fmt.Printf("  %s=268435456       Image cache size in bytes\n", config.EnvCacheBytes)
}

// process labels one image file and writes the colorized result as PNG.
func process(cfg config.Config, log *logrus.Logger, in, out string) error {
	cache := imaging.NewImageCache(cfg.CacheBytes)
	img, err := cache.Load(in)
	if err != nil {
		return err
	}

	finder := labelling.NewFinder(cfg.FinderOptions(log))

	w, h, pix := imaging.ToRGBA(img)
	res, err := finder.Process(w, h, pix)
	if err != nil {
		return errors.Wrap(err, in)
	}

	colored, err := imaging.FromRGBA(res.Width, res.Height, res.Output)
	if err != nil {
		return err
	}
	if err := imaging.SavePNG(colored, out); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"in": in, "out": out, "blobs": res.Count}).Info("wrote colored image")
	return nil
}
