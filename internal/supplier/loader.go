// Package supplier loads supplier definition files and implements the
// HTTP backed suppliers they describe.
package supplier

import (
	"os"
	"path/filepath"

	"github.com/genricoloni/wallfetch/internal/domain"
	"github.com/genricoloni/wallfetch/internal/fetcher"
	"go.uber.org/zap"
)

// Loader reads supplier definitions relative to the config root
type Loader struct {
	logger *zap.Logger
	root   string
	picker domain.Picker
}

// NewLoader creates a loader resolving relative files against the config root
func NewLoader(logger *zap.Logger, cfg domain.Config, picker domain.Picker) *Loader {
	return &Loader{
		logger: logger,
		root:   cfg.GetConfigRoot(),
		picker: picker,
	}
}

// Load implements domain.SupplierLoader
func (l *Loader) Load(ref domain.SupplierRef) (domain.Supplier, error) {
	path := ref.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.root, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.Error{
			Kind:    domain.KindSupplierDefinitionUnreadable,
			Subject: path,
			Message: "Failed to read supplier file: " + path,
			Cause:   err,
		}
	}

	def, err := ParseDefinition(data, filepath.Ext(path))
	if err != nil {
		return nil, &domain.Error{
			Kind:    domain.KindSupplierDefinitionMalformed,
			Subject: path,
			Message: "Invalid supplier file: " + path,
			Cause:   err,
		}
	}

	l.logger.Debug("Supplier definition loaded",
		zap.String("supplier", ref.Name),
		zap.String("file", path),
		zap.String("kind", def.Kind))

	client := fetcher.NewHTTPFetcher(l.logger,
		fetcher.WithTimeout(def.RequestTimeout()),
		fetcher.WithUserAgent(def.UserAgent),
	)
	return NewHTTPSupplier(l.logger, ref.Name, def, client, l.picker), nil
}
