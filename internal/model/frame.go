package model

import "fmt"

// Frame couples a value matrix with per-column asset names. It is the
// shape data crosses the CSV and HTTP boundaries in; the numeric core
// works on the bare Matrix.
type Frame struct {
	Assets []string
	Values Matrix
}

func (f Frame) Validate() error {
	if err := f.Values.Validate(); err != nil {
		return err
	}
	_, cols := f.Values.Dims()
	if len(f.Assets) != 0 && len(f.Assets) != cols {
		return fmt.Errorf("%w: %d asset names for %d columns", ErrShapeMismatch, len(f.Assets), cols)
	}
	return nil
}

// AssetNames returns the frame's column names, synthesizing asset_0..m-1
// when the source carried none.
func (f Frame) AssetNames() []string {
	_, cols := f.Values.Dims()
	if len(f.Assets) == cols {
		return f.Assets
	}
	names := make([]string, cols)
	for j := range names {
		names[j] = fmt.Sprintf("asset_%d", j)
	}
	return names
}
