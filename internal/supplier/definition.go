package supplier

import (
	"bytes"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/genricoloni/wallfetch/internal/domain"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Supplier kinds
const (
	// KindDirect suppliers answer the built URL with image bytes
	KindDirect = "direct"
	// KindJSON suppliers answer with a JSON document listing image URLs
	KindJSON = "json"
)

const (
	defaultTimeout        = 15 * time.Second
	defaultTagSeparator   = " "
	defaultRatioFormat    = "{w}x{h}"
	defaultRatioSeparator = ","

	// tagsPlaceholder may appear in the URL of direct suppliers
	tagsPlaceholder = "{tags}"
)

// Definition describes one concrete supplier, as read from its file
type Definition struct {
	Kind      string             `toml:"kind" yaml:"kind"`
	URL       string             `toml:"url" yaml:"url"`
	UserAgent string             `toml:"user_agent" yaml:"user_agent"`
	Timeout   string             `toml:"timeout" yaml:"timeout"`
	Query     QueryDefinition    `toml:"query" yaml:"query"`
	Response  ResponseDefinition `toml:"response" yaml:"response"`

	timeout time.Duration
}

// QueryDefinition maps search parameters onto query string parameters
type QueryDefinition struct {
	Tags           string            `toml:"tags" yaml:"tags"`
	TagSeparator   string            `toml:"tag_separator" yaml:"tag_separator"`
	Ratios         string            `toml:"ratios" yaml:"ratios"`
	RatioFormat    string            `toml:"ratio_format" yaml:"ratio_format"`
	RatioSeparator string            `toml:"ratio_separator" yaml:"ratio_separator"`
	NSFW           string            `toml:"nsfw" yaml:"nsfw"`
	NSFWOn         string            `toml:"nsfw_on" yaml:"nsfw_on"`
	NSFWOff        string            `toml:"nsfw_off" yaml:"nsfw_off"`
	Extra          map[string]string `toml:"extra" yaml:"extra"`
}

// ResponseDefinition locates image URLs in a JSON response.
// Paths are dot separated; numeric segments index arrays.
type ResponseDefinition struct {
	Images string `toml:"images" yaml:"images"`
	URL    string `toml:"url" yaml:"url"`
}

// ParseDefinition decodes a definition. YAML is used for .yaml/.yml files,
// TOML otherwise. Unknown keys are rejected.
func ParseDefinition(data []byte, ext string) (*Definition, error) {
	var def Definition

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
	}

	def.applyDefaults()
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

func (d *Definition) applyDefaults() {
	if d.Kind == "" {
		d.Kind = KindDirect
	}
	if d.Query.TagSeparator == "" {
		d.Query.TagSeparator = defaultTagSeparator
	}
	if d.Query.RatioFormat == "" {
		d.Query.RatioFormat = defaultRatioFormat
	}
	if d.Query.RatioSeparator == "" {
		d.Query.RatioSeparator = defaultRatioSeparator
	}
	d.timeout = defaultTimeout
}

// Validate reports every problem in the definition at once
func (d *Definition) Validate() error {
	var err error

	switch d.Kind {
	case KindDirect, KindJSON:
	default:
		err = multierr.Append(err, fmt.Errorf("kind: unsupported value %q (want %q or %q)", d.Kind, KindDirect, KindJSON))
	}

	if d.URL == "" {
		err = multierr.Append(err, fmt.Errorf("url: required"))
	} else {
		u, perr := url.Parse(strings.ReplaceAll(d.URL, tagsPlaceholder, ""))
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("url: %w", perr))
		} else if u.Scheme != "http" && u.Scheme != "https" {
			err = multierr.Append(err, fmt.Errorf("url: scheme must be http or https, got %q", u.Scheme))
		}
	}

	if d.Timeout != "" {
		t, perr := time.ParseDuration(d.Timeout)
		switch {
		case perr != nil:
			err = multierr.Append(err, fmt.Errorf("timeout: %w", perr))
		case t <= 0:
			err = multierr.Append(err, fmt.Errorf("timeout: must be positive"))
		default:
			d.timeout = t
		}
	}

	if !strings.Contains(d.Query.RatioFormat, "{w}") || !strings.Contains(d.Query.RatioFormat, "{h}") {
		err = multierr.Append(err, fmt.Errorf("query.ratio_format: must contain {w} and {h}"))
	}

	if d.Kind == KindJSON && d.Response.URL == "" {
		err = multierr.Append(err, fmt.Errorf("response.url: required for json suppliers"))
	}

	return err
}

// RequestTimeout returns the per-request timeout
func (d *Definition) RequestTimeout() time.Duration {
	if d.timeout <= 0 {
		return defaultTimeout
	}
	return d.timeout
}

// BuildURL renders the search URL for params
func (d *Definition) BuildURL(params domain.SearchParameters) (string, error) {
	raw := d.URL
	if strings.Contains(raw, tagsPlaceholder) {
		raw = strings.ReplaceAll(raw, tagsPlaceholder, url.QueryEscape(strings.Join(params.Tags, ",")))
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}

	q := u.Query()
	for k, v := range d.Query.Extra {
		q.Set(k, v)
	}
	if d.Query.Tags != "" && len(params.Tags) > 0 {
		q.Set(d.Query.Tags, strings.Join(params.Tags, d.Query.TagSeparator))
	}
	if d.Query.Ratios != "" && len(params.AspectRatios) > 0 {
		ratios := make([]string, 0, len(params.AspectRatios))
		for _, r := range params.AspectRatios {
			ratios = append(ratios, d.formatRatio(r))
		}
		q.Set(d.Query.Ratios, strings.Join(ratios, d.Query.RatioSeparator))
	}
	if d.Query.NSFW != "" {
		value := d.Query.NSFWOff
		if params.AllowNSFW {
			value = d.Query.NSFWOn
		}
		if value != "" {
			q.Set(d.Query.NSFW, value)
		}
	}

	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (d *Definition) formatRatio(r domain.AspectRatio) string {
	return strings.NewReplacer(
		"{w}", strconv.Itoa(r.Width),
		"{h}", strconv.Itoa(r.Height),
	).Replace(d.Query.RatioFormat)
}
