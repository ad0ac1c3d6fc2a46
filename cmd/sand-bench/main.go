// Command sand-bench runs a scene headless across several seeds and reports
// throughput and the resulting material census.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
	"sandfall/pkg/logger"
)

func main() {
	logger.Init()

	cfg := sand.DefaultConfig()
	cfg.Scene = "volcano"
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 600, "ticks to simulate per seed")
	runs := flag.Int("runs", 8, "number of seeds to run, counting up from -seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	record := flag.String("record", "", "write a Motion-JPEG AVI of the first seed to this path")
	chartPath := flag.String("chart", "", "write a PNG chart of the first seed's material census to this path")
	every := flag.Int("every", 4, "sample every n ticks when recording or charting")
	scale := flag.Int("scale", 3, "pixel scale of recorded frames")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Parse()

	cfg = overrides.apply(cfg)
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	seeds := make([]int64, *runs)
	for i := range seeds {
		seeds[i] = cfg.Seed + int64(i)
	}

	logger.Log.WithFields(logrus.Fields{
		"scene":   cfg.Scene,
		"size":    []int{cfg.Width, cfg.Height},
		"runs":    *runs,
		"steps":   *steps,
		"workers": *workers,
	}).Info("benchmark starting")

	if *record != "" || *chartPath != "" {
		if err := trace(cfg, *steps, *record, *chartPath, *every, *scale); err != nil {
			logger.Log.WithError(err).Fatal("trace failed")
		}
	}

	failed := false
	var total float64
	results := sweep(cfg, seeds, *steps, *workers)
	for _, res := range results {
		entry := logger.Log.WithField("seed", res.seed)
		if res.err != nil {
			entry.WithError(res.err).Error("run failed")
			failed = true
			continue
		}
		total += res.ticksPerSecond()
		entry.WithFields(logrus.Fields{
			"tps":       int(res.ticksPerSecond()),
			"particles": res.particles,
			"dynamic":   res.dynamic,
			"top":       res.topMaterials(4),
		}).Info("run finished")
	}
	if len(results) > 0 {
		logger.Log.WithField("mean_tps", int(total/float64(len(results)))).Info("benchmark done")
	}
	if failed {
		os.Exit(1)
	}
}

// trace replays the first seed with the requested observers attached.
// The video index is written on Close, so its error is returned.
func trace(cfg sand.Config, steps int, videoPath, chartPath string, every, scale int) (err error) {
	var observers []observer
	if videoPath != "" {
		rec, rerr := newVideoRecorder(videoPath, core.Size{W: cfg.Width, H: cfg.Height}, scale, every, 30)
		if rerr != nil {
			return rerr
		}
		defer func() {
			if cerr := rec.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close video: %w", cerr)
			}
		}()
		observers = append(observers, rec)
	}
	var census *censusTrace
	if chartPath != "" {
		census = newCensusTrace(every)
		observers = append(observers, census)
	}

	if res := runScenario(cfg, steps, observers...); res.err != nil {
		return res.err
	}
	if census != nil {
		f, err := os.Create(chartPath)
		if err != nil {
			return err
		}
		title := fmt.Sprintf("%s seed %d", cfg.Scene, cfg.Seed)
		if err := census.render(f, title); err != nil {
			f.Close()
			return fmt.Errorf("render chart: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close chart: %w", err)
		}
	}
	logger.Log.WithFields(logrus.Fields{"video": videoPath, "chart": chartPath}).Info("trace written")
	return nil
}
