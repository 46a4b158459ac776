package services

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeToBudgetStopsWhenUnderTarget(t *testing.T) {
	var qualities []int
	encode := func(q int) ([]byte, error) {
		qualities = append(qualities, q)
		return make([]byte, 100), nil
	}

	out, err := encodeToBudget(encode, 1000, 70, 10, 3)
	require.NoError(t, err)
	assert.Len(t, out, 100)
	// Already under budget: exactly one encoding.
	assert.Equal(t, []int{70}, qualities)
}

func TestEncodeToBudgetDegradesThroughQualities(t *testing.T) {
	var qualities []int
	sizes := map[int]int{70: 900, 60: 500, 50: 120}
	encode := func(q int) ([]byte, error) {
		qualities = append(qualities, q)
		return make([]byte, sizes[q]), nil
	}

	out, err := encodeToBudget(encode, 200, 70, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{70, 60, 50}, qualities)
	assert.Len(t, out, 120)
}

func TestEncodeToBudgetReturnsLastBufferWhenExhausted(t *testing.T) {
	var qualities []int
	encode := func(q int) ([]byte, error) {
		qualities = append(qualities, q)
		// Never fits the budget.
		return make([]byte, 5000), nil
	}

	out, err := encodeToBudget(encode, 200, 70, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{70, 60, 50}, qualities)
	// Best effort: the last attempt comes back even though it is over budget.
	assert.Len(t, out, 5000)
}

func TestEncodeToBudgetQualityNeverNonPositive(t *testing.T) {
	var qualities []int
	encode := func(q int) ([]byte, error) {
		qualities = append(qualities, q)
		return make([]byte, 5000), nil
	}

	_, err := encodeToBudget(encode, 200, 15, 10, 10)
	require.NoError(t, err)
	for _, q := range qualities {
		assert.Greater(t, q, 0)
	}
	// 15 -> 5, then the next step would go non-positive, so the loop stops.
	assert.Equal(t, []int{15, 5}, qualities)
}

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 120, 120))
	for x := 0; x < 120; x++ {
		for y := 0; y < 120; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 2), G: uint8(y * 2), B: uint8(x + y), A: 255})
		}
	}
	return img
}

func TestShrinkJPEGProducesDecodableJPEG(t *testing.T) {
	var src bytes.Buffer
	require.NoError(t, png.Encode(&src, testImage()))

	out, err := ShrinkJPEG(src.Bytes(), 1<<20, 70, 10, 3)
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 120, decoded.Bounds().Dx())
}

func TestShrinkJPEGRejectsGarbage(t *testing.T) {
	_, err := ShrinkJPEG([]byte("not an image"), 1<<20, 70, 10, 3)
	assert.Error(t, err)
}
