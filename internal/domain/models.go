package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Image formats understood by the store and the suppliers
const (
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
	FormatGIF  = "gif"
	FormatWEBP = "webp"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
)

// NamedEntry is any configured entry that can be looked up by name
type NamedEntry interface {
	EntryName() string
}

// AspectRatio is a width:height pair such as 16:9
type AspectRatio struct {
	Width  int
	Height int
}

// ParseAspectRatio accepts "16:9", "16x9" or "16X9"
func ParseAspectRatio(s string) (AspectRatio, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	sep := ":"
	if !strings.Contains(normalized, sep) {
		sep = "x"
	}
	w, h, ok := strings.Cut(normalized, sep)
	if !ok {
		return AspectRatio{}, fmt.Errorf("invalid aspect ratio %q: expected W:H", s)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return AspectRatio{}, fmt.Errorf("invalid aspect ratio %q: %w", s, err)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return AspectRatio{}, fmt.Errorf("invalid aspect ratio %q: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return AspectRatio{}, fmt.Errorf("invalid aspect ratio %q: sides must be positive", s)
	}
	return AspectRatio{Width: width, Height: height}, nil
}

// UnmarshalText lets config decoders read ratios from plain strings
func (r *AspectRatio) UnmarshalText(text []byte) error {
	parsed, err := ParseAspectRatio(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalText renders the ratio as W:H
func (r AspectRatio) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r AspectRatio) String() string {
	return fmt.Sprintf("%d:%d", r.Width, r.Height)
}

// Category is a named preset of tags and optional aspect ratios
type Category struct {
	Name         string        `mapstructure:"name"`
	Tags         []string      `mapstructure:"tags"`
	AspectRatios []AspectRatio `mapstructure:"aspect_ratios"`
}

// EntryName implements NamedEntry
func (c Category) EntryName() string { return c.Name }

// SupplierRef points at a supplier definition file, loaded on demand
type SupplierRef struct {
	Name string `mapstructure:"name"`
	File string `mapstructure:"file"`
}

// EntryName implements NamedEntry
func (s SupplierRef) EntryName() string { return s.Name }

// SearchParameters is the merged criteria handed to a supplier
type SearchParameters struct {
	// Tags holds the explicit tags first, then the category tags
	Tags         []string
	AspectRatios []AspectRatio
	// AllowNSFW is set by the engine from the request, never by composition
	AllowNSFW bool
}

// Image is the result of a successful fetch.
// It is consumed once, either by the cache or by an explicit save.
type Image struct {
	// Data holds the raw encoded bytes as served by the supplier
	Data []byte
	// Format is one of the Format* constants
	Format string
	// SourceURL is where the bytes were downloaded from
	SourceURL string
	// Supplier is the name of the supplier that produced the image
	Supplier string
}

// Extension returns the file extension (without dot) for the image format
func (i *Image) Extension() string {
	switch i.Format {
	case FormatJPEG:
		return "jpg"
	case "":
		return "img"
	default:
		return i.Format
	}
}

// ScreenResolution holds the display dimensions
type ScreenResolution struct {
	Width  int
	Height int
}

// AspectRatio reduces the resolution to its simplest ratio (1920x1080 -> 16:9)
func (r ScreenResolution) AspectRatio() AspectRatio {
	a, b := r.Width, r.Height
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return AspectRatio{}
	}
	return AspectRatio{Width: r.Width / a, Height: r.Height / a}
}
