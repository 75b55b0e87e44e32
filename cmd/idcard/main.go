package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/youruser/idcard/internal/batch"
	"github.com/youruser/idcard/internal/card"
	"github.com/youruser/idcard/internal/config"
	"github.com/youruser/idcard/internal/photo"
	"github.com/youruser/idcard/internal/roster"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	flag.StringVar(&cfg.CSVPath, "csv", cfg.CSVPath, "roster CSV file")
	flag.StringVar(&cfg.TemplatePath, "template", cfg.TemplatePath, "card template image")
	flag.StringVar(&cfg.PhotoDir, "photos", cfg.PhotoDir, "photos directory")
	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "output directory")
	flag.Parse()

	records, err := roster.Load(cfg.CSVPath)
	if err != nil {
		return err
	}
	log.Printf("loaded %d records from %s", len(records), cfg.CSVPath)

	layout, err := card.LayoutFromConfig(cfg)
	if err != nil {
		return err
	}
	comp, err := card.NewCompositor(cfg.TemplatePath, layout)
	if err != nil {
		return err
	}

	runner := batch.Runner{
		Resolver:   photo.Resolver{Dir: cfg.PhotoDir},
		Compositor: comp,
		OutputDir:  cfg.OutputDir,
	}
	sum, err := runner.Run(context.Background(), records)
	if err != nil {
		return err
	}

	log.Printf("done: %d/%d cards generated, %d skipped", sum.Generated, sum.Total, len(sum.Skipped))
	for _, s := range sum.Skipped {
		log.Printf("  skipped %s: %s", s.ID, s.Reason)
	}
	return nil
}
