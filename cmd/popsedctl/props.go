package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/popsed/internal/storage"
	"github.com/katalvlaran/popsed/sps"
)

func runProps(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("props", flag.ContinueOnError)
	common := addCommonFlags(fs)
	mf := addModelFlags(fs)
	paramsPath := fs.String("params", "-", "parameter CSV, - for stdin")
	outPath := fs.String("out", "-", "observables CSV, - for stdout")
	dt := fs.Float64("dt", sps.DefaultSFRWindow, "SFR averaging window in Gyr")
	save := fs.Bool("save", false, "persist a run record to the store")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := newLogger(*common.logLevel)
	if err != nil {
		return err
	}
	lib, err := mf.library()
	if err != nil {
		return err
	}
	model, err := sps.New(lib, sps.WithVariant(mf.variant()), sps.WithLogger(logger))
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

	rows := make([][]string, len(tbl.vectors))
	for i, vec := range tbl.vectors {
		obs, err := model.Observables(vec, tbl.redshifts[i], *dt)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		rows[i] = []string{
			strconv.Itoa(i),
			formatFloat(obs.LogMStar),
			formatFloat(obs.LogMSurv),
			formatFloat(obs.LogZSol),
			formatFloat(obs.SFR),
			formatFloat(obs.Age),
			formatFloat(obs.Redshift),
		}
	}

	w, closeOut, err := createOutput(*outPath, stdout)
	if err != nil {
		return err
	}
	header := []string{"sample", "logmstar", "logmsurv", "logzsol", "sfr", "age", "redshift"}
	if err := writeRows(w, header, rows); err != nil {
		_ = closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return err
	}

	if !*save {
		return nil
	}

	return saveRun(ctx, *common.storeKind, *common.dbPath, storage.Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Command:   "props",
		Variant:   model.Variant().String(),
		Backend:   "none",
		Params:    model.ParameterNames(),
		Samples:   len(rows),
		Output:    *outPath,
	}, logger)
}
