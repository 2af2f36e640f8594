package reports

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"
)

type decodedImage struct {
	data   []byte
	format string // fpdf image type: "PNG" or "JPG"
}

// decodeImageDataURL parses a base64 image data URL and verifies the
// payload actually decodes as an image, so corrupt input degrades to the
// placeholder path instead of poisoning the PDF.
func decodeImageDataURL(u string) (decodedImage, error) {
	const prefix = "data:"
	if !strings.HasPrefix(u, prefix) {
		return decodedImage{}, fmt.Errorf("not a data url")
	}
	meta, b64, ok := strings.Cut(u[len(prefix):], ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return decodedImage{}, fmt.Errorf("unsupported data url encoding")
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return decodedImage{}, fmt.Errorf("decode image payload: %w", err)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return decodedImage{}, fmt.Errorf("parse image: %w", err)
	}

	switch format {
	case "png":
		return decodedImage{data: data, format: "PNG"}, nil
	case "jpeg":
		return decodedImage{data: data, format: "JPG"}, nil
	default:
		return decodedImage{}, fmt.Errorf("unsupported image format %q", format)
	}
}
