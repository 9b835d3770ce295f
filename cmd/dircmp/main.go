package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	dircmp "github.com/ender-s/directory-comparator"
)

// config holds all the command-line flag values.
type config struct {
	Original         string
	New              string
	DisableHashCheck bool
	Hash             string
	ShowUnchanged    bool
	Workers          int
}

// parseFlags defines and parses command-line flags using pflag.
func parseFlags() (*config, error) {
	cfg := &config{}

	pflag.StringVarP(&cfg.Original, "original", "o", "", "Path of the original directory.")
	pflag.StringVarP(&cfg.New, "new", "n", "", "Path of the relatively new directory where any differences from the original directory are to be reported as changes.")
	pflag.BoolVar(&cfg.DisableHashCheck, "disable-hash-check", false, "Disable comparison based on file content.")
	pflag.StringVar(&cfg.Hash, "hash", string(dircmp.HashSHA256), "Hash algorithm for content comparison (md5, sha1, sha256).")
	pflag.BoolVar(&cfg.ShowUnchanged, "show-unchanged", false, "Include unchanged paths in the report.")
	pflag.IntVarP(&cfg.Workers, "workers", "w", dircmp.DefaultWorkers, "Number of concurrent directory readers and hashers.")

	pflag.Usage = func() {
		fmt.Println("Usage: dircmp -o <original> -n <new> [flags]")
		fmt.Println("\nCompare two directory trees and report added, removed and modified paths.")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if cfg.Original == "" || cfg.New == "" {
		return nil, fmt.Errorf("both --original and --new are required")
	}

	if !dircmp.HashType(cfg.Hash).Valid() {
		return nil, fmt.Errorf("unknown hash algorithm: %s", cfg.Hash)
	}

	return cfg, nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		pflag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config) error {
	fmt.Fprintln(os.Stderr, "Scanning directories...")

	original, latest, err := dircmp.ScanPair(ctx, cfg.Original, cfg.New,
		dircmp.WithScanWorkers(cfg.Workers))
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "Analyzing changes...")

	compareOptions := []dircmp.CompareOption{
		dircmp.WithHashType(dircmp.HashType(cfg.Hash)),
		dircmp.WithCompareWorkers(cfg.Workers),
	}
	if cfg.DisableHashCheck {
		compareOptions = append(compareOptions, dircmp.WithoutContentCheck())
	}

	result, err := dircmp.Compare(ctx, original, latest, compareOptions...)
	if err != nil {
		return err
	}

	reportOptions := []dircmp.ReportOption{}
	if cfg.ShowUnchanged {
		reportOptions = append(reportOptions, dircmp.WithUnchanged())
	}

	// Differences are the output, not a failure; exit code stays zero
	return dircmp.WriteReport(os.Stdout, result, reportOptions...)
}
