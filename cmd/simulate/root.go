package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"ppcsim/internal/adapter/memory"
	"ppcsim/internal/adapter/usecase"
	"ppcsim/internal/config/configs"
	"ppcsim/internal/core/port"
	"ppcsim/internal/report"
	"ppcsim/internal/scenario"
)

var (
	scenarioPath string // YAML scenario; empty runs the built-in demo
	ownerID      string // overrides the scenario owner
	seed         int64  // master seed
	startDate    string // first simulated day, YYYY-MM-DD
	days         int    // days per run
	conversion   string // bernoulli or binomial
	floorBid     string // product target fallback bid
	format       string // summary, targets, records or json
	logLevel     string // slog level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:          "simulate",
	Short:        "Offline sponsored-ads performance simulator",
	SilenceUsage: true,
}

// runCmd simulates one run of the scenario in memory
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one week of a scenario and print the results",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd.ErrOrStderr(), logLevel)

		sc, err := loadScenario(scenarioPath, ownerID)
		if err != nil {
			return err
		}
		campaigns, err := sc.Build()
		if err != nil {
			return fmt.Errorf("building scenario: %w", err)
		}

		start := time.Now().UTC()
		if startDate != "" {
			if start, err = time.Parse("2006-01-02", startDate); err != nil {
				return fmt.Errorf("invalid --start %q, want YYYY-MM-DD", startDate)
			}
		}
		floor, err := decimal.NewFromString(floorBid)
		if err != nil {
			return fmt.Errorf("invalid --floor-bid %q: %w", floorBid, err)
		}

		simCfg := configs.Simulation{FloorBid: floor, Conversion: conversion, Days: days}
		engineCfg, err := simCfg.EngineConfig()
		if err != nil {
			return fmt.Errorf("invalid --conversion: %w", err)
		}
		repo := memory.NewSimulationRepository()
		repo.PutCampaigns(sc.OwnerID, campaigns)
		svc := usecase.NewSimulationUseCase(repo, engineCfg, usecase.WithLogger(logger))

		resp, err := svc.RunWeek(cmd.Context(), port.RunReq{OwnerID: sc.OwnerID, StartDate: start, Seed: &seed})
		if err != nil {
			return err
		}
		for _, s := range resp.Skipped {
			logger.Warn("skipped", slog.String("reason", s))
		}
		return writeResult(cmd.OutOrStdout(), format, resp)
	},
}

// catalogCmd lists the products of a scenario with their economics
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the scenario's products and their break-even ACOS",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScenario(scenarioPath, ownerID)
		if err != nil {
			return err
		}
		products, err := sc.Catalog()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "asin,name,price,cogs,baseline_cvr,competitive_intensity,break_even_acos")
		for _, p := range products {
			fmt.Fprintf(out, "%s,%q,%s,%s,%.4f,%s,%.2f\n",
				p.ASIN, p.Name, p.AvgSellingPrice.StringFixed(2), p.CostOfGoodsSold.StringFixed(2),
				p.BaselineCVR, p.CompetitiveIntensity, p.BreakEvenACOS())
		}
		return nil
	},
}

func loadScenario(path, owner string) (*scenario.Scenario, error) {
	if path == "" {
		return scenario.Demo(owner)
	}
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	if owner != "" {
		sc.OwnerID = owner
	}
	return sc, nil
}

func writeResult(w io.Writer, format string, resp *port.RunResp) error {
	switch strings.ToLower(format) {
	case "records":
		_, err := io.WriteString(w, report.RenderCSV(resp.Records))
		return err
	case "targets":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report.SummarizeTargets(resp.Records))
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case "summary", "":
		fmt.Fprintf(w, "# run %s owner=%s seed=%d start=%s\n", resp.RunID, resp.OwnerID, resp.Seed, resp.StartDate.Format("2006-01-02"))
		_, err := io.WriteString(w, report.RenderSummaryCSV(report.SummarizeCampaigns(resp.Records)))
		return err
	default:
		return fmt.Errorf("unknown --format %q; valid: summary, targets, records, json", format)
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	lc := configs.Logger{Level: level}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lc.SlogLevel()}))
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&scenarioPath, "scenario", "", "Path to a YAML scenario (default: built-in demo)")
	rootCmd.PersistentFlags().StringVar(&ownerID, "owner", "", "Override the scenario owner id")

	runCmd.Flags().Int64Var(&seed, "seed", 42, "Master seed for the run")
	runCmd.Flags().StringVar(&startDate, "start", "", "First simulated day, YYYY-MM-DD (default: today)")
	runCmd.Flags().IntVar(&days, "days", 7, "Number of simulated days")
	runCmd.Flags().StringVar(&conversion, "conversion", "bernoulli", "Conversion sampling: bernoulli or binomial")
	runCmd.Flags().StringVar(&floorBid, "floor-bid", "0.50", "Fallback bid for product targets without one; 0 disables")
	runCmd.Flags().StringVar(&format, "format", "summary", "Output: summary, targets, records or json")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(runCmd, catalogCmd)
}
