package supplier

import (
	"testing"
	"time"

	"github.com/genricoloni/wallfetch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wallhavenTOML = `
kind = "json"
url = "https://example.com/api/search"
timeout = "5s"

[query]
tags = "q"
ratios = "ratios"
nsfw = "purity"
nsfw_on = "111"
nsfw_off = "100"

[query.extra]
sorting = "random"

[response]
images = "data"
url = "path"
`

func TestParseDefinition_TOML(t *testing.T) {
	def, err := ParseDefinition([]byte(wallhavenTOML), ".toml")
	require.NoError(t, err)

	assert.Equal(t, KindJSON, def.Kind)
	assert.Equal(t, 5*time.Second, def.RequestTimeout())
	assert.Equal(t, " ", def.Query.TagSeparator)
	assert.Equal(t, "{w}x{h}", def.Query.RatioFormat)
	assert.Equal(t, map[string]string{"sorting": "random"}, def.Query.Extra)
	assert.Equal(t, ResponseDefinition{Images: "data", URL: "path"}, def.Response)
}

func TestParseDefinition_YAML(t *testing.T) {
	def, err := ParseDefinition([]byte(`
url: https://example.com/random/{tags}
query:
  ratios: size
  ratio_format: "{w}:{h}"
`), ".yml")
	require.NoError(t, err)

	assert.Equal(t, KindDirect, def.Kind)
	assert.Equal(t, defaultTimeout, def.RequestTimeout())
	assert.Equal(t, "{w}:{h}", def.Query.RatioFormat)
}

func TestParseDefinition_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		ext     string
		wantErr string
	}{
		{"broken toml", `kind = "json`, ".toml", "failed to parse toml"},
		{"broken yaml", "url: [", ".yaml", "failed to parse yaml"},
		{"unknown toml key", "url = \"https://x\"\ncolour = \"red\"", ".toml", "failed to parse toml"},
		{"unknown yaml key", "url: https://x\ncolour: red", ".yaml", "failed to parse yaml"},
		{"missing url", `kind = "direct"`, ".toml", "url: required"},
		{"bad scheme", `url = "ftp://example.com"`, ".toml", "scheme must be http or https"},
		{"bad kind", "kind = \"rss\"\nurl = \"https://x\"", ".toml", "unsupported value"},
		{"json without url path", "kind = \"json\"\nurl = \"https://x\"", ".toml", "response.url: required"},
		{"bad timeout", "url = \"https://x\"\ntimeout = \"soon\"", ".toml", "timeout"},
		{"bad ratio format", "url = \"https://x\"\n[query]\nratio_format = \"{w}\"", ".toml", "ratio_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDefinition([]byte(tt.data), tt.ext)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefinition_BuildURL(t *testing.T) {
	def, err := ParseDefinition([]byte(wallhavenTOML), ".toml")
	require.NoError(t, err)

	params := domain.SearchParameters{
		Tags:         []string{"forest", "fog"},
		AspectRatios: []domain.AspectRatio{{Width: 16, Height: 9}, {Width: 21, Height: 9}},
	}

	got, err := def.BuildURL(params)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api/search?purity=100&q=forest+fog&ratios=16x9%2C21x9&sorting=random", got)

	params.AllowNSFW = true
	got, err = def.BuildURL(params)
	require.NoError(t, err)
	assert.Contains(t, got, "purity=111")

	got, err = def.BuildURL(domain.SearchParameters{})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api/search?purity=100&sorting=random", got)
}

func TestDefinition_BuildURLPlaceholder(t *testing.T) {
	def, err := ParseDefinition([]byte(`url = "https://example.com/{tags}/random"`), ".toml")
	require.NoError(t, err)

	got, err := def.BuildURL(domain.SearchParameters{Tags: []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a%2Cb/random", got)
}
