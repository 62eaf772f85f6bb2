package csc_test

import (
	"testing"

	"github.com/katalvlaran/cscutil/csc"
	"github.com/stretchr/testify/require"
)

// TestCopyFidelity copies into a fresh destination and compares.
func TestCopyFidelity(t *testing.T) {
	src := scenario3x2(t)
	dst, err := csc.NewCompressed(3, 2, src.NZMax)
	require.NoError(t, err)

	require.NoError(t, csc.Copy(dst, src))
	require.True(t, csc.Equal(src, dst))
	require.Equal(t, src.NZMax, dst.NZMax)
	require.Equal(t, src.ColPtr, dst.ColPtr)
}

// TestCopyIdempotent checks that two copies leave the same state as one.
func TestCopyIdempotent(t *testing.T) {
	src := banded(t, 5)
	dst, err := csc.NewCompressed(5, 5, src.NZMax+3)
	require.NoError(t, err)

	require.NoError(t, csc.Copy(dst, src))
	once := *dst
	once.ColPtr = append([]int(nil), dst.ColPtr...)
	once.RowIdx = append([]int(nil), dst.RowIdx...)
	once.Values = append([]float64(nil), dst.Values...)

	require.NoError(t, csc.Copy(dst, src))
	require.Equal(t, once, *dst)
}

// TestCopyFullCapacity copies spare slots past NNZ up to src.NZMax.
func TestCopyFullCapacity(t *testing.T) {
	src := &csc.Compressed{
		Rows: 2, Cols: 1, NZMax: 3,
		ColPtr: []int{0, 1},
		RowIdx: []int{1, 0, 1},
		Values: []float64{4, 8, 9},
	}
	dst, err := csc.NewCompressed(2, 1, 4)
	require.NoError(t, err)
	dst.RowIdx[3] = 1
	dst.Values[3] = 42

	require.NoError(t, csc.Copy(dst, src))
	require.Equal(t, []int{1, 0, 1, 1}, dst.RowIdx)
	require.Equal(t, []float64{4, 8, 9, 42}, dst.Values)
	require.Equal(t, 3, dst.NZMax)
}

// TestCopyChecksCapacity rejects undersized destinations and leaves them untouched.
func TestCopyChecksCapacity(t *testing.T) {
	src := scenario3x2(t)

	small, err := csc.NewCompressed(3, 2, src.NZMax-1)
	require.NoError(t, err)
	err = csc.Copy(small, src)
	require.ErrorIs(t, err, csc.ErrCapacity)
	require.Equal(t, []int{0, 0, 0}, small.ColPtr)
	require.Equal(t, src.NZMax-1, small.NZMax)

	narrow, err := csc.NewCompressed(3, 1, src.NZMax)
	require.NoError(t, err)
	require.ErrorIs(t, csc.Copy(narrow, src), csc.ErrDimensionMismatch)

	require.ErrorIs(t, csc.Copy(nil, src), csc.ErrNilMatrix)
	require.ErrorIs(t, csc.Copy(small, nil), csc.ErrNilMatrix)
}
