// SPDX-License-Identifier: MIT

// Command fahp evaluates a fuzzy AHP decision problem described in YAML and
// prints criteria weights, consistency ratios and the alternative ranking.
//
//	fahp -problem supplier.yaml [-config fahp.yaml] [-format text|markdown|html] [-strategy geometric-mean|chang-extent]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/fahp/ahp"
	"github.com/katalvlaran/fahp/comparison"
	"github.com/katalvlaran/fahp/config"
	"github.com/katalvlaran/fahp/fuzzy"
	"github.com/katalvlaran/fahp/problem"
	"github.com/katalvlaran/fahp/report"
	"github.com/katalvlaran/fahp/topsis"
	"github.com/katalvlaran/fahp/weights"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "fahp:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("fahp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	problemPath := fs.String("problem", "", "path to the decision problem (YAML)")
	configPath := fs.String("config", "", "path to config file")
	format := fs.String("format", "", "output format: text, markdown or html")
	strategy := fs.String("strategy", "", "weight synthesis: geometric-mean or chang-extent")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *problemPath == "" {
		fs.Usage()
		return errors.New("-problem is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *strategy != "" {
		cfg.Engine.Strategy = *strategy
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.Logging, stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	p, err := problem.Load(*problemPath)
	if err != nil {
		return err
	}
	var buildOpts []comparison.Option
	if cfg.Engine.Complete {
		buildOpts = append(buildOpts, comparison.WithRequireComplete())
	}
	ms, err := p.Build(buildOpts...)
	if err != nil {
		return err
	}
	logger.Info("problem loaded", "name", p.Name, "criteria", len(p.Criteria), "alternatives", len(p.Alternatives))

	s, err := cfg.Strategy()
	if err != nil {
		return err
	}
	opts := []ahp.Option{
		ahp.WithStrategy(s),
		ahp.WithThreshold(cfg.Engine.CRThreshold),
		ahp.WithLogger(logger),
	}
	if cfg.Engine.Parallel {
		opts = append(opts, ahp.WithParallel(cfg.Engine.ParallelLimit))
	}
	res, err := ahp.Evaluate(ms.Criteria, ms.Alternatives, opts...)
	if err != nil {
		return err
	}

	rep := report.Report{
		Title:        p.Name,
		Criteria:     p.CriteriaNames(),
		Alternatives: p.Alternatives,
		Polarity:     p.Polarity(),
		Result:       res,
		Threshold:    cfg.Engine.CRThreshold,
		Precision:    cfg.Output.Precision,
	}
	if cfg.Output.TOPSIS {
		var tp *topsis.Result
		if tp, err = res.TOPSIS(p.Polarity()); err != nil {
			return err
		}
		rep.TOPSIS = tp
	}
	if s.Name() == weights.NameGeometricMean {
		var fw []fuzzy.Number
		if fw, err = weights.FuzzyGeometricWeights(ms.Criteria); err != nil {
			return err
		}
		rep.FuzzyWeights = fw
	}
	if !res.Acceptable() {
		logger.Warn("some judgments exceed the consistency threshold", "threshold", cfg.Engine.CRThreshold)
	}

	return report.Render(stdout, cfg.Output.Format, rep)
}

func newLogger(lc config.LoggingConfig, w io.Writer) (*slog.Logger, error) {
	lvl, err := lc.SlogLevel()
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(lc.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}

	return slog.New(slog.NewTextHandler(w, hopts)), nil
}
