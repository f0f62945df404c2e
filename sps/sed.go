// SPDX-License-Identifier: MIT

package sps

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/popsed/filter"
	"github.com/katalvlaran/popsed/matrix"
	"github.com/katalvlaran/popsed/observe"
	"github.com/katalvlaran/popsed/params"
)

// Request is a batch of SED evaluations sharing one instrument setup.
type Request struct {
	// Params holds one parameter vector per sample (see ParameterNames).
	Params [][]float64
	// Redshift holds one redshift per sample.
	Redshift []float64
	// VDisp is empty, one shared value or one value per sample, in km/s.
	VDisp []float64
	// Wave is the optional output grid in observed-frame Å.
	Wave []float64
	// Resolution holds optional per-segment resolution matrices; requires Wave.
	Resolution []*matrix.Resolution
	// Filters enables photometry.
	Filters *filter.Set
}

// Result holds per-sample outputs in request order. Flux is in
// 1e-17 erg/s/cm²/Å and Maggies in nanomaggies (nil without Filters).
type Result struct {
	Wave    [][]float64
	Flux    [][]float64
	Maggies [][]float64
}

// Len returns the number of samples.
func (r Result) Len() int { return len(r.Flux) }

// SED evaluates a batch. See SEDContext.
func (m *Model) SED(req Request) (Result, error) {
	return m.SEDContext(context.Background(), req)
}

// SEDContext evaluates every sample of req on up to WithWorkers goroutines
// and returns the results in input order. The first failing sample aborts
// the batch.
//
// Errors: ErrEmptyBatch, ErrBatchSize, and per-sample errors tagged with the
// sample index.
func (m *Model) SEDContext(ctx context.Context, req Request) (Result, error) {
	const op = "SED"
	if m.backend == nil {
		return Result{}, spsErrorf(op, ErrNoBackend)
	}
	n := len(req.Params)
	if n == 0 {
		return Result{}, spsErrorf(op, ErrEmptyBatch)
	}
	if len(req.Redshift) != n {
		return Result{}, spsErrorf(op, fmt.Errorf("%d parameter vectors, %d redshifts: %w", n, len(req.Redshift), ErrBatchSize))
	}
	if k := len(req.VDisp); k > 1 && k != n {
		return Result{}, spsErrorf(op, fmt.Errorf("%d parameter vectors, %d vdisp: %w", n, k, ErrBatchSize))
	}

	type result struct {
		idx int
		obs observe.Observation
		err error
	}

	jobs := make(chan int)
	results := make(chan result, n)

	workers := m.workers
	if workers > n {
		workers = n
	}
	m.logger.Debug("sed batch", "samples", n, "workers", workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					results <- result{idx: i, err: err}
					continue
				}
				obs, err := m.sample(req, i)
				results <- result{idx: i, obs: obs, err: err}
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	close(results)

	out := Result{Wave: make([][]float64, n), Flux: make([][]float64, n)}
	if req.Filters != nil {
		out.Maggies = make([][]float64, n)
	}
	var firstErr error
	firstIdx := n
	for res := range results {
		if res.err != nil {
			if res.idx < firstIdx {
				firstIdx, firstErr = res.idx, res.err
			}
			continue
		}
		out.Wave[res.idx] = res.obs.Spectrum.Wave
		out.Flux[res.idx] = res.obs.Spectrum.Flux
		if out.Maggies != nil {
			out.Maggies[res.idx] = res.obs.Maggies
		}
	}
	if firstErr != nil {
		return Result{}, spsErrorf(op, fmt.Errorf("sample %d: %w", firstIdx, firstErr))
	}

	return out, nil
}

// sample evaluates request entry i.
func (m *Model) sample(req Request, i int) (observe.Observation, error) {
	p, err := params.Parse(m.variant, req.Params[i])
	if err != nil {
		return observe.Observation{}, err
	}
	z := req.Redshift[i]
	tage, err := m.cosmo.AgeAt(z)
	if err != nil {
		return observe.Observation{}, err
	}
	rest, err := m.backend.Spectrum(p, tage)
	if err != nil {
		return observe.Observation{}, err
	}

	var dL float64
	if z > 0 {
		if dL, err = m.cosmo.LuminosityDistanceAt(z); err != nil {
			return observe.Observation{}, err
		}
	}

	pipe := observe.Pipeline{Wave: req.Wave, Resolution: req.Resolution, Filters: req.Filters}
	switch len(req.VDisp) {
	case 0:
	case 1:
		pipe.VDisp = req.VDisp[0]
	default:
		pipe.VDisp = req.VDisp[i]
	}

	return pipe.Apply(rest, z, dL)
}
