package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/popsed/basis"
	"github.com/katalvlaran/popsed/emulator"
	"github.com/katalvlaran/popsed/filter"
	"github.com/katalvlaran/popsed/internal/storage"
	"github.com/katalvlaran/popsed/params"
	"github.com/katalvlaran/popsed/sps"
)

// modelFlags select the basis library and the parameterisation.
type modelFlags struct {
	basisDir *string
	zh       *bool
	burst    *bool
}

func addModelFlags(fs *flag.FlagSet) modelFlags {
	return modelFlags{
		basisDir: fs.String("basis", "", "directory holding the NMF basis tables"),
		zh:       fs.Bool("zh", false, "use the two-component metallicity history"),
		burst:    fs.Bool("burst", true, "include the star-burst component"),
	}
}

func (mf modelFlags) variant() params.Variant {
	return params.Variant{Burst: *mf.burst, MetallicityHistory: *mf.zh}
}

func (mf modelFlags) library() (*basis.Library, error) {
	if *mf.basisDir == "" {
		return nil, errors.New("-basis is required")
	}

	return basis.LoadDir(*mf.basisDir, *mf.zh)
}

func runSED(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("sed", flag.ContinueOnError)
	common := addCommonFlags(fs)
	mf := addModelFlags(fs)
	nmfPath := fs.String("emulator", "", "NMF emulator bundle (JSON)")
	burstPath := fs.String("burst-emulator", "", "burst emulator bundle (JSON), required with -burst")
	paramsPath := fs.String("params", "-", "parameter CSV, - for stdin")
	outPath := fs.String("out", "-", "spectra CSV (sample,wave,flux), - for stdout")
	photPath := fs.String("phot", "", "photometry CSV (nanomaggies), requires -filters")
	filterList := fs.String("filters", "", "comma-separated bandpass files (two columns: wave, response)")
	vdisp := fs.Float64("vdisp", 0, "velocity dispersion in km/s")
	waveSpec := fs.String("wave", "", "output grid lo:hi:step in observed-frame Angstrom")
	workers := fs.Int("workers", 1, "concurrent samples")
	save := fs.Bool("save", false, "persist a run record to the store")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *nmfPath == "" {
		return errors.New("-emulator is required")
	}
	if *workers < 1 {
		return errors.New("workers must be >= 1")
	}

	logger, err := newLogger(*common.logLevel)
	if err != nil {
		return err
	}
	lib, err := mf.library()
	if err != nil {
		return err
	}
	nmf, err := emulator.LoadFile(*nmfPath)
	if err != nil {
		return err
	}
	var burst *emulator.Bundle
	if *burstPath != "" {
		if burst, err = emulator.LoadFile(*burstPath); err != nil {
			return err
		}
	}

	model, err := sps.New(lib,
		sps.WithVariant(mf.variant()),
		sps.WithEmulator(nmf, burst),
		sps.WithWorkers(*workers),
		sps.WithLogger(logger))
	if err != nil {
		return err
	}

	in, err := openInput(*paramsPath)
	if err != nil {
		return err
	}
	tbl, err := readParams(in, model.ParameterNames())
	_ = in.Close()
	if err != nil {
		return fmt.Errorf("params: %w", err)
	}

	req := sps.Request{Params: tbl.vectors, Redshift: tbl.redshifts}
	if *vdisp > 0 {
		req.VDisp = []float64{*vdisp}
	}
	if *waveSpec != "" {
		if req.Wave, err = parseGrid(*waveSpec); err != nil {
			return err
		}
	}
	if *filterList != "" {
		if req.Filters, err = loadFilters(strings.Split(*filterList, ",")); err != nil {
			return err
		}
	}

	started := time.Now()
	res, err := model.SEDContext(ctx, req)
	if err != nil {
		return err
	}
	logger.Info("sed done", "samples", res.Len(), "elapsed", time.Since(started))

	w, closeOut, err := createOutput(*outPath, stdout)
	if err != nil {
		return err
	}
	if err := writeSpectra(w, res); err != nil {
		_ = closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return err
	}

	if req.Filters != nil && *photPath != "" {
		if err := writePhotometry(*photPath, req.Filters.Names(), res); err != nil {
			return err
		}
	}

	if !*save {
		return nil
	}
	run := storage.Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Command:   "sed",
		Variant:   model.Variant().String(),
		Backend:   "emulator",
		Params:    model.ParameterNames(),
		Samples:   res.Len(),
		Maggies:   res.Maggies,
		Output:    *outPath,
	}
	if req.Filters != nil {
		run.Filters = req.Filters.Names()
	}

	return saveRun(ctx, *common.storeKind, *common.dbPath, run, logger)
}

// parseGrid expands "lo:hi:step" into lo, lo+step, ... <= hi.
func parseGrid(grid string) ([]float64, error) {
	parts := strings.Split(grid, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("wave %q: want lo:hi:step", grid)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("wave %q: %w", grid, err)
		}
		v[i] = f
	}
	lo, hi, step := v[0], v[1], v[2]
	if !(step > 0) || !(hi > lo) {
		return nil, fmt.Errorf("wave %q: need lo < hi and step > 0", grid)
	}

	n := int((hi-lo)/step + 1e-9)
	out := make([]float64, n+1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}

	return out, nil
}

func loadFilters(paths []string) (*filter.Set, error) {
	bands := make([]*filter.Bandpass, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		f, err := os.Open(p)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		b, err := filter.ReadBandpass(name, f)
		_ = f.Close()
		if err != nil {
			return nil, err
		}
		bands = append(bands, b)
	}

	return filter.NewSet(bands...)
}

func writeSpectra(w io.Writer, res sps.Result) error {
	var rows [][]string
	for i := range res.Flux {
		for k, f := range res.Flux[i] {
			rows = append(rows, []string{strconv.Itoa(i), formatFloat(res.Wave[i][k]), formatFloat(f)})
		}
	}

	return writeRows(w, []string{"sample", "wave", "flux"}, rows)
}

func writePhotometry(path string, names []string, res sps.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	rows := make([][]string, len(res.Maggies))
	for i, m := range res.Maggies {
		row := []string{strconv.Itoa(i)}
		for _, v := range m {
			row = append(row, formatFloat(v))
		}
		rows[i] = row
	}
	if err := writeRows(f, append([]string{"sample"}, names...), rows); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func saveRun(ctx context.Context, kind, dbPath string, run storage.Run, logger *slog.Logger) error {
	store, err := storage.NewStore(kind, dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()

	if err := store.Init(ctx); err != nil {
		return err
	}
	if err := store.SaveRun(ctx, run); err != nil {
		return err
	}
	logger.Info("run saved", "id", run.ID, "store", kind)

	return nil
}
