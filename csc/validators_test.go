package csc_test

import (
	"testing"

	"github.com/katalvlaran/cscutil/csc"
	"github.com/stretchr/testify/require"
)

// TestValidateCompressed runs each invariant violation through the validator.
func TestValidateCompressed(t *testing.T) {
	good := func() *csc.Compressed {
		return &csc.Compressed{
			Rows: 3, Cols: 2, NZMax: 4,
			ColPtr: []int{0, 1, 3},
			RowIdx: []int{0, 1, 2, 0},
			Values: []float64{5, 2, 7, 0},
		}
	}

	tests := []struct {
		name   string
		mutate func(m *csc.Compressed)
		want   error
	}{
		{"ok", func(m *csc.Compressed) {}, nil},
		{"negative rows", func(m *csc.Compressed) { m.Rows = -1 }, csc.ErrInvalidDimensions},
		{"short values", func(m *csc.Compressed) { m.Values = m.Values[:2] }, csc.ErrCapacity},
		{"short colptr", func(m *csc.Compressed) { m.ColPtr = m.ColPtr[:2] }, csc.ErrColPtr},
		{"nonzero start", func(m *csc.Compressed) { m.ColPtr[0] = 1 }, csc.ErrColPtr},
		{"decreasing", func(m *csc.Compressed) { m.ColPtr = []int{0, 2, 1} }, csc.ErrColPtr},
		{"past nzmax", func(m *csc.Compressed) { m.ColPtr[2] = 5; m.RowIdx = append(m.RowIdx, 0); m.Values = append(m.Values, 0) }, csc.ErrColPtr},
		{"row too large", func(m *csc.Compressed) { m.RowIdx[2] = 3 }, csc.ErrOutOfRange},
		{"row negative", func(m *csc.Compressed) { m.RowIdx[0] = -1 }, csc.ErrOutOfRange},
		{"garbage in spare capacity", func(m *csc.Compressed) { m.RowIdx[3] = 99 }, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := good()
			tc.mutate(m)
			err := csc.ValidateCompressed(m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}

	require.ErrorIs(t, csc.ValidateCompressed(nil), csc.ErrNilMatrix)
}

// TestValidateTriplet covers nil, capacity and index bounds.
func TestValidateTriplet(t *testing.T) {
	require.ErrorIs(t, csc.ValidateTriplet(nil), csc.ErrNilMatrix)

	tr, err := csc.NewTriplet(2, 2, 2)
	require.NoError(t, err)
	require.NoError(t, tr.Append(1, 1, 3))
	require.NoError(t, csc.ValidateTriplet(tr))

	tr.ColIdx[0] = 2
	require.ErrorIs(t, csc.ValidateTriplet(tr), csc.ErrOutOfRange)

	tr.ColIdx[0] = 1
	tr.NZ = 3
	require.ErrorIs(t, csc.ValidateTriplet(tr), csc.ErrCapacity)

	tr.NZ = -1
	require.ErrorIs(t, csc.ValidateTriplet(tr), csc.ErrInvalidDimensions)
}
