package utils

import (
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/nfnt/resize"
)

type ImageDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func GetImageDimensions(file io.ReadSeeker) (*ImageDimensions, string, error) {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, "", err
	}

	config, format, err := image.DecodeConfig(file)
	if err != nil {
		return nil, "", err
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, "", err
	}

	return &ImageDimensions{
		Width:  config.Width,
		Height: config.Height,
	}, format, nil
}

// ErrTooManyPixels is returned by DownscaleImage for images whose header
// declares more pixels than the caller allows to be decoded.
var ErrTooManyPixels = errors.New("image exceeds decode pixel limit")

// DownscaleImage writes a copy of file no wider than maxWidth to w,
// keeping the aspect ratio. It reports false without writing when the
// image is already narrow enough or is not a JPEG or PNG. Images larger
// than maxPixels are never decoded; a zero maxPixels disables the limit.
func DownscaleImage(file io.ReadSeeker, maxWidth uint, maxPixels int64, w io.Writer) (bool, error) {
	if maxWidth == 0 {
		return false, nil
	}

	dimensions, format, err := GetImageDimensions(file)
	if err != nil {
		// not decodable here, pass it through untouched
		return false, nil
	}
	if format != "jpeg" && format != "png" {
		return false, nil
	}
	if uint(dimensions.Width) <= maxWidth {
		return false, nil
	}
	if maxPixels > 0 && int64(dimensions.Width)*int64(dimensions.Height) > maxPixels {
		return false, ErrTooManyPixels
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return false, err
	}

	resized := resize.Resize(maxWidth, 0, img, resize.Lanczos3)
	if err := EncodeImage(resized, format, w, JPEGQuality); err != nil {
		return false, err
	}
	return true, nil
}

func EncodeImage(img image.Image, format string, writer io.Writer, quality int) error {
	switch strings.ToLower(format) {
	case "jpg", "jpeg":
		return jpeg.Encode(writer, img, &jpeg.Options{Quality: quality})
	case "png":
		return png.Encode(writer, img)
	default:
		return errors.New("unsupported image format")
	}
}
