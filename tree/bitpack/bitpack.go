// Package bitpack packs ordered lists of bounded integers into a single
// 64-bit word. The first value of the list occupies the highest bits.
package bitpack

import (
	"math/bits"

	"tlog.app/go/errors"
)

var (
	ErrOverflow = errors.New("widths sum over 64 bits")
	ErrWidth    = errors.New("bad width")
	ErrMismatch = errors.New("values and widths length mismatch")
)

// Widths returns the minimal width of each value. Zero still takes one bit.
func Widths(vals []uint64) []int {
	w := make([]int, len(vals))

	for i, v := range vals {
		w[i] = bits.Len64(v)

		if w[i] == 0 {
			w[i] = 1
		}
	}

	return w
}

// Pack packs vals into one word, first value in the most significant bits.
// widths may be nil, then the minimal width of each value is taken.
func Pack(vals []uint64, widths []int) (p uint64, err error) {
	if widths == nil {
		widths = Widths(vals)
	}

	if len(widths) != len(vals) {
		return 0, errors.Wrap(ErrMismatch, "%d values, %d widths", len(vals), len(widths))
	}

	total := 0

	for i, v := range vals {
		w := widths[i]
		if w <= 0 {
			return 0, errors.Wrap(ErrWidth, "width %d of value %d", w, i)
		}

		if w < 64 && v >= uint64(1)<<w {
			return 0, errors.Wrap(ErrWidth, "value %d (0x%x) does not fit %d bits", i, v, w)
		}

		total += w
		if total > 64 {
			return 0, errors.Wrap(ErrOverflow, "%d bits", total)
		}

		if w == 64 {
			p = v
		} else {
			p = p<<w | v
		}
	}

	return p, nil
}

// Unpack is the inverse of Pack. Values are stripped from the least
// significant chunk upward, restoring the original order.
func Unpack(p uint64, widths []int) (vals []uint64, err error) {
	total := 0

	for i, w := range widths {
		if w <= 0 {
			return nil, errors.Wrap(ErrWidth, "width %d of value %d", w, i)
		}

		total += w
	}

	if total > 64 {
		return nil, errors.Wrap(ErrOverflow, "%d bits", total)
	}

	vals = make([]uint64, len(widths))

	for i := len(widths) - 1; i >= 0; i-- {
		w := widths[i]

		if w == 64 {
			vals[i] = p
			p = 0

			continue
		}

		vals[i] = p & (uint64(1)<<w - 1)
		p >>= w
	}

	return vals, nil
}
