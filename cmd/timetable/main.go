// Command timetable builds and solves one timetabling CP-SAT model from a
// catalog of JSON files and reports the result: load, solve, print, and
// optionally export a JSON report.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/schedulekit/timetable/internal/config"
	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/loader"
	"github.com/schedulekit/timetable/internal/timetabling"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "parsing CLI flags:", err)
		os.Exit(2)
	}

	log := newLogger(cfg.Debug)
	defer log.Sync()
	sugar := log.Sugar()

	cat, err := loader.LoadCatalog(cfg.DataDir, domain.DefaultTimeslotsPerDay)
	if err != nil {
		sugar.Fatalw("loading catalog", "error", err)
	}

	outcome, err := timetabling.Run(sugar, cat, cfg.RunConfig())
	if err != nil {
		sugar.Fatalw("building model", "error", err)
	}

	sugar.Infow("search complete", "status", outcome.Status.String())

	if cfg.Export {
		if outcome.Solution == nil {
			sugar.Warnw("nothing to export: no incumbent solution", "status", outcome.Status.String())
			return
		}
		report := timetabling.BuildReport(outcome.Solution, outcome.Status.String(), timetabling.Labels{
			University: cfg.University,
			Department: cfg.Department,
			Semester:   cfg.Semester,
		})
		if err := timetabling.ExportJSON("schedule.json", report); err != nil {
			sugar.Errorw("exporting JSON report", "error", err)
			os.Exit(1)
		}
		sugar.Infow("report written", "path", "schedule.json")
	}
}

func newLogger(debug bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return log
}
