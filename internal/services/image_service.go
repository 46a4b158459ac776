package services

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	// Uploaded pictures arrive in whatever format the browser had.
	_ "image/gif"
	_ "image/png"
)

// encodeToBudget is a bounded degrade-and-retry loop: encode at the start
// quality, and while the result exceeds the byte budget, step the quality
// down and re-encode, up to maxPasses attempts. The budget is a soft
// target: the most recently produced buffer is returned even when the
// final pass is still over it. Quality never drops below 1.
func encodeToBudget(
	encode func(quality int) ([]byte, error),
	targetBytes, startQuality, step, maxPasses int,
) ([]byte, error) {
	if maxPasses < 1 {
		maxPasses = 1
	}
	quality := startQuality
	if quality < 1 {
		quality = 1
	}

	var last []byte
	for i := 0; i < maxPasses; i++ {
		buf, err := encode(quality)
		if err != nil {
			return nil, err
		}
		last = buf
		if len(buf) < targetBytes {
			break
		}
		quality -= step
		if quality < 1 {
			break
		}
	}
	return last, nil
}

// ShrinkJPEG re-encodes an image as JPEG, stepping the quality down until
// the result fits targetBytes or maxPasses encodings have been produced.
// Pure CPU work; safe to run concurrently across uploads.
func ShrinkJPEG(raw []byte, targetBytes, startQuality, step, maxPasses int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	return encodeToBudget(func(quality int) ([]byte, error) {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}, targetBytes, startQuality, step, maxPasses)
}
