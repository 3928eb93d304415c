package supplier

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/genricoloni/wallfetch/internal/domain"
	"github.com/genricoloni/wallfetch/internal/fetcher"
	"github.com/genricoloni/wallfetch/internal/processor"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	acceptImage = "image/*"
	acceptJSON  = "application/json"
)

// Downloader is the transport used by HTTPSupplier
type Downloader interface {
	Fetch(ctx context.Context, url, accept string) (*fetcher.Response, error)
}

// HTTPSupplier fetches images from a web service described by a Definition
type HTTPSupplier struct {
	logger *zap.Logger
	name   string
	def    *Definition
	client Downloader
	picker domain.Picker
}

// NewHTTPSupplier creates a supplier for def
func NewHTTPSupplier(logger *zap.Logger, name string, def *Definition, client Downloader, picker domain.Picker) *HTTPSupplier {
	return &HTTPSupplier{
		logger: logger.With(zap.String("supplier", name)),
		name:   name,
		def:    def,
		client: client,
		picker: picker,
	}
}

// FetchOne implements domain.Supplier
func (s *HTTPSupplier) FetchOne(ctx context.Context, params domain.SearchParameters) (*domain.Image, error) {
	searchURL, err := s.def.BuildURL(params)
	if err != nil {
		return nil, newFetchError(FetchTransport, s.name, "", "failed to build request url", err)
	}

	s.logger.Debug("Searching",
		zap.String("kind", s.def.Kind),
		zap.String("url", searchURL),
		zap.Strings("tags", params.Tags))

	switch s.def.Kind {
	case KindJSON:
		imageURL, err := s.resolveFromJSON(ctx, searchURL)
		if err != nil {
			return nil, err
		}
		return s.download(ctx, imageURL)
	default:
		return s.download(ctx, searchURL)
	}
}

// resolveFromJSON queries the search endpoint and picks one image URL
func (s *HTTPSupplier) resolveFromJSON(ctx context.Context, searchURL string) (string, error) {
	resp, err := s.client.Fetch(ctx, searchURL, acceptJSON)
	if err != nil {
		return "", s.classify(searchURL, err)
	}

	if !gjson.ValidBytes(resp.Data) {
		return "", newFetchError(FetchMalformedResponse, s.name, searchURL, "response is not valid json", nil)
	}

	node, err := lookup(gjson.ParseBytes(resp.Data), s.def.Response.Images)
	if err != nil {
		return "", newFetchError(FetchMalformedResponse, s.name, searchURL, "images not found", err)
	}
	if !node.IsArray() {
		return "", newFetchError(FetchMalformedResponse, s.name, searchURL,
			fmt.Sprintf("%q is not an array", s.def.Response.Images), nil)
	}
	results := node.Array()
	if len(results) == 0 {
		return "", newFetchError(FetchNoResults, s.name, searchURL, "no images match the search parameters", nil)
	}

	idx := s.picker.Pick(len(results))
	node, err = lookup(results[idx], s.def.Response.URL)
	if err != nil {
		return "", newFetchError(FetchMalformedResponse, s.name, searchURL, "image url not found", err)
	}
	if node.Type != gjson.String || node.Str == "" {
		return "", newFetchError(FetchMalformedResponse, s.name, searchURL,
			fmt.Sprintf("%q is not a non-empty string", s.def.Response.URL), nil)
	}
	raw := node.Str

	// Relative URLs resolve against the search endpoint
	base, err := url.Parse(resp.URL)
	if err != nil {
		base, _ = url.Parse(searchURL)
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return "", newFetchError(FetchMalformedResponse, s.name, searchURL, "invalid image url", err)
	}

	imageURL := base.ResolveReference(ref).String()
	s.logger.Debug("Picked result",
		zap.Int("index", idx),
		zap.Int("results", len(results)),
		zap.String("url", imageURL))
	return imageURL, nil
}

func (s *HTTPSupplier) download(ctx context.Context, imageURL string) (*domain.Image, error) {
	resp, err := s.client.Fetch(ctx, imageURL, acceptImage)
	if err != nil {
		return nil, s.classify(imageURL, err)
	}

	format := processor.DetectFormat(resp.Data, resp.ContentType)
	if format == "" {
		return nil, newFetchError(FetchMalformedResponse, s.name, imageURL,
			fmt.Sprintf("url is not an image: %s", resp.ContentType), nil)
	}

	s.logger.Info("Image downloaded",
		zap.String("url", resp.URL),
		zap.String("format", format),
		zap.Int("bytes", len(resp.Data)))

	return &domain.Image{
		Data:      resp.Data,
		Format:    format,
		SourceURL: resp.URL,
		Supplier:  s.name,
	}, nil
}

// classify maps transport errors onto fetch error types
func (s *HTTPSupplier) classify(u string, err error) error {
	var statusErr *fetcher.StatusError
	switch {
	case errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound:
		return newFetchError(FetchNoResults, s.name, u, "not found", err)
	case errors.Is(err, fetcher.ErrTooLarge):
		return newFetchError(FetchMalformedResponse, s.name, u, "response too large", err)
	default:
		return newFetchError(FetchTransport, s.name, u, "request failed", err)
	}
}

// lookup resolves a gjson path (dot separated, numeric segments index
// arrays) inside doc. An empty path returns doc itself.
func lookup(doc gjson.Result, path string) (gjson.Result, error) {
	if path == "" {
		return doc, nil
	}
	node := doc.Get(path)
	if !node.Exists() {
		return gjson.Result{}, fmt.Errorf("path %q not found", path)
	}
	return node, nil
}
