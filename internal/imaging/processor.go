// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package imaging turns uploaded pictures into size-bounded data URLs that
// can be stored as plain text documents.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp" // WebP decoder
)

// MIME types accepted for upload.
const (
	MimeTypeJPEG = "image/jpeg"
	MimeTypePNG  = "image/png"
	MimeTypeGIF  = "image/gif"
	MimeTypeWebP = "image/webp"
)

// Defaults for NewProcessor.
const (
	DefaultMaxDimension = 1200
	DefaultQuality      = 85
	DefaultMaxBytes     = 8 << 20
)

// ErrUnsupported is returned for data that is not a supported image.
var ErrUnsupported = errors.New("unsupported image format")

// ErrTooLarge is returned when an upload exceeds the byte limit.
var ErrTooLarge = errors.New("image too large")

// Result describes a processed image.
type Result struct {
	DataURL  string `json:"dataUrl"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	MimeType string `json:"mimeType"`
	Size     int    `json:"size"`
}

// Processor decodes, orients, downsizes and re-encodes images.
type Processor struct {
	maxDimension int
	quality      int
	maxBytes     int64
}

// NewProcessor creates a processor. Zero arguments select the defaults.
func NewProcessor(maxDimension, quality int, maxBytes int64) *Processor {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Processor{maxDimension: maxDimension, quality: quality, maxBytes: maxBytes}
}

// MaxBytes is the upload size limit.
func (p *Processor) MaxBytes() int64 { return p.maxBytes }

// Process reads an image from r and returns it as a data URL. Images
// larger than the maximum dimension are fitted within it. PNG and GIF
// input is re-encoded as PNG, everything else as JPEG. EXIF metadata is
// dropped after applying its orientation.
func (p *Processor) Process(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(io.LimitReader(r, p.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	if int64(len(data)) > p.maxBytes {
		return nil, ErrTooLarge
	}

	mimeType := DetectMimeType(data)
	if !IsImage(mimeType) {
		return nil, ErrUnsupported
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	img = applyOrientation(img, readExifOrientation(bytes.NewReader(data)))

	b := img.Bounds()
	if b.Dx() > p.maxDimension || b.Dy() > p.maxDimension {
		img = imaging.Fit(img, p.maxDimension, p.maxDimension, imaging.Lanczos)
	}

	outType := MimeTypeJPEG
	if mimeType == MimeTypePNG || mimeType == MimeTypeGIF {
		outType = MimeTypePNG
	}
	encoded, err := encodeImage(img, outType, p.quality)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	b = img.Bounds()
	return &Result{
		DataURL:  "data:" + outType + ";base64," + base64.StdEncoding.EncodeToString(encoded),
		Width:    b.Dx(),
		Height:   b.Dy(),
		MimeType: outType,
		Size:     len(encoded),
	}, nil
}

// IsImage checks if a MIME type represents an image that can be processed.
func IsImage(mimeType string) bool {
	switch mimeType {
	case MimeTypeJPEG, MimeTypePNG, MimeTypeGIF, MimeTypeWebP:
		return true
	default:
		return false
	}
}

// DetectMimeType detects the MIME type of image data.
func DetectMimeType(data []byte) string {
	contentType := http.DetectContentType(data)
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	return contentType
}

// readExifOrientation reads the EXIF orientation tag from image data.
// Returns 1 (normal) if orientation cannot be determined.
func readExifOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return orientation
}

// applyOrientation applies an EXIF orientation (1-8) to img.
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.FlipH(imaging.Rotate270(img))
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.FlipH(imaging.Rotate90(img))
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

func encodeImage(img image.Image, mimeType string, quality int) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	if mimeType == MimeTypePNG {
		err = png.Encode(&buf, img)
	} else {
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality})
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
