package main

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"sandfall/internal/sims/sand"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not key=value", value)
	}
	*l = append(*l, value)
	return nil
}

// apply layers the overrides on top of cfg through the world's map config.
func (l kvList) apply(cfg sand.Config) sand.Config {
	m := cfg.ToMap()
	for _, kv := range l {
		k, v, _ := strings.Cut(kv, "=")
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return sand.FromMap(m)
}

type runResult struct {
	seed      int64
	steps     int
	elapsed   time.Duration
	particles int
	dynamic   int
	census    map[sand.MaterialID]int
	err       error
}

func (r runResult) ticksPerSecond() float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(r.steps) / r.elapsed.Seconds()
}

// topMaterials lists the n most common non-air materials.
func (r runResult) topMaterials(n int) string {
	type entry struct {
		id    sand.MaterialID
		count int
	}
	var entries []entry
	for id, count := range r.census {
		if id != sand.Air && count > 0 {
			entries = append(entries, entry{id, count})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].id < entries[j].id
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%s=%d", e.id, e.count)
	}
	return strings.Join(parts, " ")
}

func runScenario(cfg sand.Config, steps int, observers ...observer) runResult {
	res := runResult{seed: cfg.Seed, steps: steps}
	world, err := sand.NewWithConfig(cfg)
	if err != nil {
		res.err = err
		return res
	}
	start := time.Now()
	for i := 0; i < steps; i++ {
		world.Step()
		for _, obs := range observers {
			if err := obs.observe(i+1, world); err != nil {
				res.err = err
				return res
			}
		}
	}
	res.elapsed = time.Since(start)
	res.particles = world.ParticleCount()
	res.dynamic = world.DynamicCount()
	res.census = world.Census()
	return res
}

// sweep runs the scenario once per seed on a pool of workers. Results come
// back ordered by seed.
func sweep(base sand.Config, seeds []int64, steps, workers int) []runResult {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan int64)
	results := make(chan runResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				cfg := base
				cfg.Seed = seed
				results <- runScenario(cfg, steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, seed := range seeds {
			jobs <- seed
		}
		close(jobs)
	}()

	var all []runResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })
	return all
}
