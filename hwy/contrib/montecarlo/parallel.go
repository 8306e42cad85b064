// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package montecarlo

import (
	"fmt"
	"math"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/hwypi/hwy"
)

// Result is the outcome of one Run.
type Result struct {
	// Mode is the kernel the workers ran.
	Mode Mode
	// Seeds holds the seed each worker used, by worker index.
	Seeds []uint32
	// Hits holds each worker's in-circle count, by worker index.
	Hits []uint64
	// SamplesPerThread is the number of pairs each worker drew.
	SamplesPerThread uint64
	// Pi is the estimate 4 · TotalHits / TotalSamples.
	Pi float64
	// Elapsed is the wall time from first spawn to join.
	Elapsed time.Duration
}

// TotalHits returns the sum over all workers.
func (r Result) TotalHits() uint64 {
	var sum uint64
	for _, h := range r.Hits {
		sum += h
	}
	return sum
}

// TotalSamples returns threads · samples per thread.
func (r Result) TotalSamples() uint64 {
	return uint64(len(r.Hits)) * r.SamplesPerThread
}

// AbsError returns |Pi − π|.
func (r Result) AbsError() float64 {
	return math.Abs(r.Pi - math.Pi)
}

// Throughput returns samples per second over Elapsed, or 0 when no time
// was measured.
func (r Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.TotalSamples()) / r.Elapsed.Seconds()
}

// Estimate returns 4 · hits / samples, or 0 when samples is 0.
func Estimate(hits, samples uint64) float64 {
	if samples == 0 {
		return 0
	}
	return 4 * float64(hits) / float64(samples)
}

// Run validates cfg, starts cfg.Threads workers and reduces their hit
// counts into an estimate. Missing seeds are drawn from the OS entropy
// source before any worker starts.
func Run(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	seeds := slices.Clone(cfg.Seeds)
	if len(seeds) == 0 {
		var err error
		if seeds, err = Seeds(cfg.Threads); err != nil {
			return Result{}, err
		}
	}

	log := Logger()
	log.Debug("starting workers",
		"threads", cfg.Threads,
		"mode", cfg.Mode.String(),
		"samples_per_thread", cfg.SamplesPerThread,
		"chunk_pairs", cfg.ChunkPairs,
		"dispatch", hwy.CurrentName())

	// Each worker writes only hits[i]; Wait orders those writes before the
	// reduction below.
	hits := make([]uint64, cfg.Threads)
	start := time.Now()

	var g errgroup.Group
	for i := range cfg.Threads {
		g.Go(func() error {
			workerStart := time.Now()
			hits[i] = CountHits(cfg.Mode, seeds[i], cfg.SamplesPerThread, cfg.ChunkPairs)
			log.Debug("worker done",
				"worker", i,
				"seed", seeds[i],
				"hits", hits[i],
				"elapsed", time.Since(workerStart))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("montecarlo: worker failed: %w", err)
	}

	res := Result{
		Mode:             cfg.Mode,
		Seeds:            seeds,
		Hits:             hits,
		SamplesPerThread: uint64(cfg.SamplesPerThread),
		Elapsed:          time.Since(start),
	}
	res.Pi = Estimate(res.TotalHits(), res.TotalSamples())

	log.Info("estimate",
		"pi", res.Pi,
		"abs_error", res.AbsError(),
		"threads", cfg.Threads,
		"mode", cfg.Mode.String(),
		"elapsed", res.Elapsed)
	return res, nil
}
