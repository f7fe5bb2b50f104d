package bitpack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		Name   string
		Vals   []uint64
		Widths []int
	}{
		{Name: "empty", Vals: []uint64{}, Widths: []int{}},
		{Name: "single", Vals: []uint64{5}, Widths: nil},
		{Name: "zero", Vals: []uint64{0}, Widths: nil},
		{Name: "dims", Vals: []uint64{3, 4, 5}, Widths: nil},
		{Name: "declared", Vals: []uint64{1, 2, 3}, Widths: []int{8, 8, 8}},
		{Name: "full64", Vals: []uint64{0xffff_ffff_ffff_ffff}, Widths: nil},
		{Name: "split64", Vals: []uint64{0xffff_ffff, 0xffff_ffff}, Widths: []int{32, 32}},
		{Name: "uneven", Vals: []uint64{1, 1023, 0, 7}, Widths: []int{1, 10, 1, 3}},
	} {
		tc := tc

		t.Run(tc.Name, func(t *testing.T) {
			w := tc.Widths
			if w == nil {
				w = Widths(tc.Vals)
			}

			p, err := Pack(tc.Vals, tc.Widths)
			require.NoError(t, err)

			back, err := Unpack(p, w)
			require.NoError(t, err)

			assert.Equal(t, tc.Vals, back)
		})
	}
}

func TestPackOrder(t *testing.T) {
	// first value takes the highest bits
	p, err := Pack([]uint64{1, 0}, []int{1, 63})
	require.NoError(t, err)

	assert.Equal(t, uint64(1)<<63, p)

	p, err = Pack([]uint64{0xab, 0xcd}, []int{8, 8})
	require.NoError(t, err)

	assert.Equal(t, uint64(0xabcd), p)
}

func TestPackErrors(t *testing.T) {
	_, err := Pack([]uint64{1, 2, 3}, []int{62, 2, 2})
	assert.True(t, errors.Is(err, ErrOverflow), "%v", err)

	_, err = Pack([]uint64{1}, []int{0})
	assert.True(t, errors.Is(err, ErrWidth), "%v", err)

	_, err = Pack([]uint64{16}, []int{4})
	assert.True(t, errors.Is(err, ErrWidth), "%v", err)

	_, err = Pack([]uint64{1, 2}, []int{4})
	assert.True(t, errors.Is(err, ErrMismatch), "%v", err)

	_, err = Unpack(0, []int{32, 33})
	assert.True(t, errors.Is(err, ErrOverflow), "%v", err)

	_, err = Unpack(0, []int{-1})
	assert.True(t, errors.Is(err, ErrWidth), "%v", err)
}

func TestWidths(t *testing.T) {
	assert.Equal(t, []int{1, 1, 2, 8, 64}, Widths([]uint64{0, 1, 2, 255, 1 << 63}))
}
