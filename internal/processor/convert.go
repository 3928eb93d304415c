package processor

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // GIF format support
	_ "image/jpeg" // JPEG format support
	_ "image/png"  // PNG format support
	"net/http"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/wallfetch/internal/domain"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"  // BMP format support
	_ "golang.org/x/image/tiff" // TIFF format support
	_ "golang.org/x/image/webp" // WEBP format support (decode only)
)

const defaultJPEGQuality = 90

// ConverterConfig holds configuration for format conversion
type ConverterConfig struct {
	JPEGQuality int
}

// Converter re-encodes fetched images into the format requested by a save path
type Converter struct {
	logger *zap.Logger
	config ConverterConfig
}

// NewConverter creates a new format converter
func NewConverter(logger *zap.Logger) *Converter {
	return &Converter{
		logger: logger,
		config: ConverterConfig{JPEGQuality: defaultJPEGQuality},
	}
}

// DetectFormat sniffs the image format from its header, falling back to the
// HTTP content type. Returns an empty string when neither is recognised.
func DetectFormat(data []byte, contentType string) string {
	if _, format, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		return format
	}

	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	mediaType, _, _ := strings.Cut(contentType, ";")
	switch strings.TrimSpace(strings.ToLower(mediaType)) {
	case "image/jpeg", "image/jpg":
		return domain.FormatJPEG
	case "image/png":
		return domain.FormatPNG
	case "image/gif":
		return domain.FormatGIF
	case "image/webp":
		return domain.FormatWEBP
	case "image/bmp", "image/x-ms-bmp":
		return domain.FormatBMP
	case "image/tiff":
		return domain.FormatTIFF
	}
	return ""
}

// FormatFromPath maps a file name onto an encodable format
func FormatFromPath(path string) (imaging.Format, error) {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return 0, fmt.Errorf("cannot infer image format from %q: %w", path, err)
	}
	return f, nil
}

// FormatName returns the domain name (e.g. "jpeg") of an imaging format
func FormatName(f imaging.Format) string {
	return strings.ToLower(f.String())
}

// Convert decodes imageData and encodes it as target.
// Bytes already in the target format are returned unchanged.
func (c *Converter) Convert(ctx context.Context, imageData []byte, source string, target imaging.Format) ([]byte, error) {
	if source == FormatName(target) {
		c.logger.Debug("Image already in target format, skipping conversion", zap.String("format", source))
		return imageData, nil
	}

	// 1. Decode image from bytes
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dy() == 0 || bounds.Dx() == 0 {
		return nil, fmt.Errorf("invalid image dimensions: %dx%d", bounds.Dx(), bounds.Dy())
	}

	// 2. Encode to the target format (in-memory buffer)
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, target, imaging.JPEGQuality(c.config.JPEGQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}

	c.logger.Debug("Image converted",
		zap.String("from", source),
		zap.String("to", FormatName(target)),
		zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}
