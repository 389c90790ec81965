package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"quant-utilities/internal/model"
	"quant-utilities/internal/portfolio"
	"quant-utilities/internal/split"
)

// LoadPriceCSV reads a price (or return) matrix from CSV: a header row of
// asset names, then one row per time step.
func LoadPriceCSV(path string) (model.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Frame{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return model.Frame{}, err
	}
	if len(records) < 2 {
		return model.Frame{}, fmt.Errorf("%w: %s has no data rows", model.ErrInvalidInput, path)
	}

	assets := records[0]
	values := make(model.Matrix, 0, len(records)-1)
	for i, rec := range records[1:] {
		row := make([]float64, len(rec))
		for j, cell := range rec {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return model.Frame{}, fmt.Errorf("%w: row %d col %d: %q is not a number", model.ErrInvalidInput, i+1, j, cell)
			}
			row[j] = v
		}
		values = append(values, row)
	}

	frame := model.Frame{Assets: assets, Values: values}
	if err := frame.Validate(); err != nil {
		return model.Frame{}, err
	}
	return frame, nil
}

// WriteFrameCSV writes a named matrix in the shape LoadPriceCSV reads.
func WriteFrameCSV(path string, frame model.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(frame.AssetNames()); err != nil {
		return err
	}
	for _, row := range frame.Values {
		rec := make([]string, len(row))
		for j, v := range row {
			rec[j] = fmtFloat(v)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

// WritePortfolioCSV writes the result ledger: one row per period with
// each asset's weighted return and cumulative, then the portfolio series.
func WritePortfolioCSV(path string, res *portfolio.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	names := model.Frame{Assets: res.Assets, Values: res.WeightedReturns}.AssetNames()
	header := []string{"index"}
	for _, n := range names {
		header = append(header, n+"_weighted_return")
	}
	for _, n := range names {
		header = append(header, n+"_cumulative")
	}
	header = append(header, "portfolio_return", "portfolio_cumulative")
	if err := w.Write(header); err != nil {
		return err
	}

	for t := 0; t < res.Periods(); t++ {
		row := []string{strconv.Itoa(t)}
		for _, v := range res.WeightedReturns[t] {
			row = append(row, fmtFloat(v))
		}
		for _, v := range res.CumulativeWeightedReturns[t] {
			row = append(row, fmtFloat(v))
		}
		row = append(row, fmtFloat(res.PortfolioReturns[t]), fmtFloat(res.PortfolioCumulative[t]))
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteFoldsCSV writes fold assignments, one row per (fold, index) pair.
func WriteFoldsCSV(path string, folds []split.Fold) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"fold", "role", "index"}); err != nil {
		return err
	}
	for i, fold := range folds {
		for _, idx := range fold.Train {
			if err := w.Write([]string{strconv.Itoa(i), "train", strconv.Itoa(idx)}); err != nil {
				return err
			}
		}
		for _, idx := range fold.Test {
			if err := w.Write([]string{strconv.Itoa(i), "test", strconv.Itoa(idx)}); err != nil {
				return err
			}
		}
	}
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
