package supplier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/genricoloni/wallfetch/internal/domain"
	"github.com/genricoloni/wallfetch/internal/fetcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// fixedPicker always returns the same index
type fixedPicker int

func (p fixedPicker) Pick(n int) int { return int(p) % n }

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func newSupplier(t *testing.T, defTOML string, picker domain.Picker) *HTTPSupplier {
	t.Helper()
	def, err := ParseDefinition([]byte(defTOML), ".toml")
	require.NoError(t, err)
	return NewHTTPSupplier(zap.NewNop(), "test", def, fetcher.NewHTTPFetcher(zap.NewNop()), picker)
}

func assertFetchError(t *testing.T, err error, want FetchErrorType) {
	t.Helper()
	var fe *FetchError
	require.True(t, errors.As(err, &fe), "expected *FetchError, got %T: %v", err, err)
	assert.Equal(t, want, fe.Type, fe.Error())
}

func TestHTTPSupplier_Direct(t *testing.T) {
	pngData := testPNG(t)
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngData)
	}))
	defer server.Close()

	s := newSupplier(t, fmt.Sprintf("url = %q\n[query]\ntags = \"t\"\ntag_separator = \",\"", server.URL+"/random"), fixedPicker(0))

	img, err := s.FetchOne(context.Background(), domain.SearchParameters{Tags: []string{"sea", "sky"}})
	require.NoError(t, err)

	assert.Equal(t, pngData, img.Data)
	assert.Equal(t, domain.FormatPNG, img.Format)
	assert.Equal(t, "test", img.Supplier)
	assert.Equal(t, server.URL+"/random?t=sea%2Csky", img.SourceURL)
	assert.Equal(t, "t=sea%2Csky", gotQuery)
}

func TestHTTPSupplier_JSON(t *testing.T) {
	pngData := testPNG(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/api/search", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"data":[{"path":"/img/0.png"},{"path":"/img/1.png"}]}`)
	})
	mux.HandleFunc("/img/1.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngData)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := newSupplier(t, fmt.Sprintf(`
kind = "json"
url = %q
[response]
images = "data"
url = "path"
`, server.URL+"/api/search"), fixedPicker(1))

	img, err := s.FetchOne(context.Background(), domain.SearchParameters{})
	require.NoError(t, err)
	assert.Equal(t, pngData, img.Data)
	assert.Equal(t, server.URL+"/img/1.png", img.SourceURL)
}

func TestHTTPSupplier_Failures(t *testing.T) {
	const jsonDef = `
kind = "json"
url = %q
[response]
images = "data"
url = "path"
`
	tests := []struct {
		name    string
		handler http.HandlerFunc
		def     string
		want    FetchErrorType
	}{
		{
			name: "empty result set",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, `{"data":[]}`)
			},
			def:  jsonDef,
			want: FetchNoResults,
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, `{"data":`)
			},
			def:  jsonDef,
			want: FetchMalformedResponse,
		},
		{
			name: "images path is not an array",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, `{"data":{"path":"x"}}`)
			},
			def:  jsonDef,
			want: FetchMalformedResponse,
		},
		{
			name: "url field missing",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, `{"data":[{"id":1}]}`)
			},
			def:  jsonDef,
			want: FetchMalformedResponse,
		},
		{
			name: "images path missing",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, `{"results":[{"path":"/a.png"}]}`)
			},
			def:  jsonDef,
			want: FetchMalformedResponse,
		},
		{
			name: "url field is not a string",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, `{"data":[{"path":42}]}`)
			},
			def:  jsonDef,
			want: FetchMalformedResponse,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			def:  jsonDef,
			want: FetchTransport,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			def:  `url = %q`,
			want: FetchNoResults,
		},
		{
			name: "direct body is not an image",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				_, _ = fmt.Fprint(w, "<html>rate limited</html>")
			},
			def:  `url = %q`,
			want: FetchMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			s := newSupplier(t, fmt.Sprintf(tt.def, server.URL), fixedPicker(0))
			img, err := s.FetchOne(context.Background(), domain.SearchParameters{})
			assert.Nil(t, img)
			assertFetchError(t, err, tt.want)
		})
	}
}

func TestHTTPSupplier_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	s := newSupplier(t, fmt.Sprintf("url = %q", url), fixedPicker(0))
	_, err := s.FetchOne(context.Background(), domain.SearchParameters{})
	assertFetchError(t, err, FetchTransport)
}

func TestLookup(t *testing.T) {
	doc := gjson.Parse(`{"a":{"b":["zero",{"c":"deep"}]}}`)

	got, err := lookup(doc, "a.b.1.c")
	require.NoError(t, err)
	assert.Equal(t, "deep", got.String())

	got, err = lookup(doc, "")
	require.NoError(t, err)
	assert.Equal(t, doc.Raw, got.Raw)

	got, err = lookup(doc, "a.b")
	require.NoError(t, err)
	assert.True(t, got.IsArray())
	assert.Len(t, got.Array(), 2)

	_, err = lookup(doc, "a.b.5")
	assert.Error(t, err)
	_, err = lookup(doc, "a.x")
	assert.Error(t, err)
	_, err = lookup(doc, "a.b.0.c")
	assert.Error(t, err)
}
