package domain

import "context"

//go:generate mockgen -destination=mocks/domain_mock.go -package=mocks github.com/genricoloni/wallfetch/internal/domain Supplier,SupplierLoader,Executor,Notifier,ScreenProbe,Store

// Supplier defines the contract every image source satisfies
type Supplier interface {
	// FetchOne retrieves a single image matching params.
	// It is the only blocking network step of a fetch.
	FetchOne(ctx context.Context, params SearchParameters) (*Image, error)
}

// SupplierLoader turns a configured reference into a usable Supplier
// by reading its definition file
type SupplierLoader interface {
	Load(ref SupplierRef) (Supplier, error)
}

// Picker chooses one index out of n; n is always > 0
type Picker interface {
	Pick(n int) int
}

// Store persists fetched images
type Store interface {
	// Cache writes the image under the content-addressed cache root
	// and returns its path. Identical bytes always map to the same path.
	Cache(img *Image) (string, error)

	// SaveToFormat writes the image to path, converting it to the format
	// implied by the extension. Returns the canonical absolute path.
	SaveToFormat(img *Image, path string) (string, error)
}

// ApplyResult carries what the external apply command produced
type ApplyResult struct {
	ExitCode int
	Stderr   string
}

// Executor runs the external wallpaper command
type Executor interface {
	// Apply substitutes {path} in template and runs it.
	// A non-nil error means the command could not launch or exited non-zero.
	Apply(ctx context.Context, template, imagePath string) (ApplyResult, error)

	// Suggest returns a command template that should work on this desktop,
	// or an empty string when nothing was detected
	Suggest() string
}

// Notifier sends a desktop notification once a wallpaper is applied
type Notifier interface {
	Notify(ctx context.Context, summary, body, imagePath string) error
}

// ScreenProbe reports the primary display resolution
type ScreenProbe interface {
	Resolution() (ScreenResolution, error)
}

// Config defines the application configuration the engine depends on
type Config interface {
	GetCategories() []Category
	GetSuppliers() []SupplierRef
	// GetSetCommand returns the apply template, empty when not configured
	GetSetCommand() string
	GetCacheDir() string
	GetConfigRoot() string
	NotifyEnabled() bool
	MatchScreen() bool
}
