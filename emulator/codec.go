// SPDX-License-Identifier: MIT

package emulator

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"
)

// SchemaVersion is the bundle document version this package reads and writes.
const SchemaVersion = 1

// bundleDoc is the JSON layout of a bundle:
//
//	{"schema_version": 1, "segments": [segmentDoc, ...]}
//
// Matrices are row-major nested arrays.
type bundleDoc struct {
	SchemaVersion int          `json:"schema_version"`
	Segments      []segmentDoc `json:"segments"`
}

type segmentDoc struct {
	Name          string        `json:"name"`
	Wave          []float64     `json:"wave"`
	Weights       [][][]float64 `json:"weights"`
	Biases        [][]float64   `json:"biases"`
	Alphas        [][]float64   `json:"alphas"`
	Betas         [][]float64   `json:"betas"`
	ParamShift    []float64     `json:"param_shift"`
	ParamScale    []float64     `json:"param_scale"`
	PCAShift      []float64     `json:"pca_shift"`
	PCAScale      []float64     `json:"pca_scale"`
	SpectrumShift []float64     `json:"spectrum_shift"`
	SpectrumScale []float64     `json:"spectrum_scale"`
	PCABasis      [][]float64   `json:"pca_basis"`
}

// Decode reads a bundle document and validates every segment.
//
// Errors: ErrSchemaVersion, ErrShape, ErrEmptyBundle, JSON syntax errors.
func Decode(r io.Reader) (*Bundle, error) {
	const op = "Decode"
	var doc bundleDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, emulatorErrorf(op, err)
	}
	if doc.SchemaVersion != SchemaVersion {
		return nil, emulatorErrorf(op, fmt.Errorf("version %d: %w", doc.SchemaVersion, ErrSchemaVersion))
	}

	segs := make([]*Segment, len(doc.Segments))
	for i, sd := range doc.Segments {
		s, err := sd.segment()
		if err != nil {
			return nil, emulatorErrorf(op, err)
		}
		segs[i] = s
	}

	return NewBundle(segs...)
}

// LoadFile decodes the bundle stored at path.
func LoadFile(path string) (*Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, emulatorErrorf("LoadFile", err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes b as a bundle document.
func (b *Bundle) Encode(w io.Writer) error {
	doc := bundleDoc{SchemaVersion: SchemaVersion}
	for _, s := range b.segments {
		sd := segmentDoc{
			Name:          s.Name,
			Wave:          s.Wave,
			Biases:        s.Biases,
			Alphas:        s.Alphas,
			Betas:         s.Betas,
			ParamShift:    s.ParamShift,
			ParamScale:    s.ParamScale,
			PCAShift:      s.PCAShift,
			PCAScale:      s.PCAScale,
			SpectrumShift: s.SpectrumShift,
			SpectrumScale: s.SpectrumScale,
			PCABasis:      rows(s.PCABasis),
		}
		for _, w := range s.Weights {
			sd.Weights = append(sd.Weights, rows(w))
		}
		doc.Segments = append(doc.Segments, sd)
	}

	return json.NewEncoder(w).Encode(doc)
}

func (sd segmentDoc) segment() (*Segment, error) {
	s := &Segment{
		Name:          sd.Name,
		Wave:          sd.Wave,
		Biases:        sd.Biases,
		Alphas:        sd.Alphas,
		Betas:         sd.Betas,
		ParamShift:    sd.ParamShift,
		ParamScale:    sd.ParamScale,
		PCAShift:      sd.PCAShift,
		PCAScale:      sd.PCAScale,
		SpectrumShift: sd.SpectrumShift,
		SpectrumScale: sd.SpectrumScale,
	}
	for l, w := range sd.Weights {
		m, err := dense(w)
		if err != nil {
			return nil, fmt.Errorf("segment %q: layer %d: %w", sd.Name, l, err)
		}
		s.Weights = append(s.Weights, m)
	}
	basis, err := dense(sd.PCABasis)
	if err != nil {
		return nil, fmt.Errorf("segment %q: pca_basis: %w", sd.Name, err)
	}
	s.PCABasis = basis

	return s, nil
}

// dense converts a rectangular nested array into a matrix.
func dense(rs [][]float64) (*mat.Dense, error) {
	if len(rs) == 0 || len(rs[0]) == 0 {
		return nil, ErrShape
	}
	c := len(rs[0])
	data := make([]float64, 0, len(rs)*c)
	for _, r := range rs {
		if len(r) != c {
			return nil, ErrShape
		}
		data = append(data, r...)
	}

	return mat.NewDense(len(rs), c, data), nil
}

func rows(m *mat.Dense) [][]float64 {
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, m)
	}

	return out
}
