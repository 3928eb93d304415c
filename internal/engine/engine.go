package engine

import (
	"context"
	"fmt"

	"github.com/genricoloni/wallfetch/internal/domain"
	"github.com/genricoloni/wallfetch/internal/resolver"
	"github.com/genricoloni/wallfetch/internal/search"
	"go.uber.org/zap"
)

// State is a step of a fetch run
type State string

const (
	StateResolvingCategory       State = "ResolvingCategory"
	StateResolvingSupplier       State = "ResolvingSupplier"
	StateFetching                State = "Fetching"
	StatePersisting              State = "Persisting"
	StateApplyingExternalCommand State = "ApplyingExternalCommand"
	StateDone                    State = "Done"
	StateFailed                  State = "Failed"
)

// Request describes one fetch. A nil Category or Supplier means the name
// was not given; an empty string is a (degenerate) query.
type Request struct {
	Category *string
	Supplier *string
	// Tags are ad-hoc tags, placed before the category tags
	Tags []string
	// Output is an explicit save path; empty means the cache is used
	Output string
	// Assign runs the configured set_command on the persisted image
	Assign bool
	NSFW   bool
	// OnState, when set, is called as each state is entered
	OnState func(State)
}

// Result is what a fetch produced. It is returned alongside a
// MissingApplyCommand error, since the image is persisted by then.
type Result struct {
	Path      string
	Category  string
	Supplier  string
	SourceURL string
	Format    string

	Applied     bool
	ApplyResult domain.ApplyResult
	// ApplyErr holds an ApplyCommandFailed error; it does not fail the run
	ApplyErr error

	States []State
}

// Engine orchestrates a single fetch: it resolves names, builds parameters,
// calls the supplier, persists the image and optionally applies it.
type Engine struct {
	logger   *zap.Logger
	cfg      domain.Config
	loader   domain.SupplierLoader
	picker   domain.Picker
	store    domain.Store
	executor domain.Executor
	notifier domain.Notifier
	screen   domain.ScreenProbe
}

// NewEngine creates a new orchestration engine
func NewEngine(
	logger *zap.Logger,
	cfg domain.Config,
	loader domain.SupplierLoader,
	picker domain.Picker,
	store domain.Store,
	exec domain.Executor,
	notifier domain.Notifier,
	screen domain.ScreenProbe,
) *Engine {
	return &Engine{
		logger:   logger,
		cfg:      cfg,
		loader:   loader,
		picker:   picker,
		store:    store,
		executor: exec,
		notifier: notifier,
		screen:   screen,
	}
}

// Fetch runs the whole pipeline. Any resolution, fetch or persistence error
// aborts immediately; there is no retry and no fallback supplier.
func (e *Engine) Fetch(ctx context.Context, req Request) (*Result, error) {
	res := &Result{}
	enter := func(s State) {
		res.States = append(res.States, s)
		e.logger.Debug("Entering state", zap.String("state", string(s)))
		if req.OnState != nil {
			req.OnState(s)
		}
	}
	fail := func(err error) (*Result, error) {
		enter(StateFailed)
		e.logger.Error("Fetch failed",
			zap.String("kind", domain.KindOf(err).String()),
			zap.Error(err))
		return res, err
	}

	// 1. Category
	enter(StateResolvingCategory)
	category, err := e.resolveCategory(req.Category)
	if err != nil {
		return fail(err)
	}
	if category != nil {
		res.Category = category.Name
	}

	params := search.Compose(category, req.Tags)
	params.AllowNSFW = req.NSFW
	e.applyScreenRatio(&params)

	// 2. Supplier
	enter(StateResolvingSupplier)
	ref, err := e.resolveSupplier(req.Supplier)
	if err != nil {
		return fail(err)
	}
	res.Supplier = ref.Name

	supplier, err := e.loader.Load(ref)
	if err != nil {
		if domain.KindOf(err) == 0 {
			err = domain.NewError(domain.KindSupplierDefinitionUnreadable, ref.File, err)
		}
		return fail(err)
	}

	// 3. Fetch
	enter(StateFetching)
	e.logger.Info("Fetching image",
		zap.String("supplier", ref.Name),
		zap.String("category", res.Category),
		zap.Strings("tags", params.Tags),
		zap.Stringers("ratios", params.AspectRatios))

	img, err := supplier.FetchOne(ctx, params)
	if err != nil {
		return fail(domain.NewError(domain.KindFetchFailed, ref.Name, err))
	}
	if img == nil || len(img.Data) == 0 {
		return fail(&domain.Error{Kind: domain.KindFetchFailed, Subject: ref.Name, Message: "supplier returned an empty image"})
	}
	res.SourceURL = img.SourceURL
	res.Format = img.Format

	// 4. Persist
	enter(StatePersisting)
	path, err := e.persist(img, req.Output)
	if err != nil {
		return fail(err)
	}
	res.Path = path

	// 5. Apply
	if req.Assign {
		enter(StateApplyingExternalCommand)
		if err := e.apply(ctx, res); err != nil {
			return fail(err)
		}
	}

	enter(StateDone)
	e.logger.Info("Fetch complete",
		zap.String("path", res.Path),
		zap.Bool("applied", res.Applied))
	return res, nil
}

func (e *Engine) resolveCategory(name *string) (*domain.Category, error) {
	if name == nil {
		return nil, nil
	}

	categories := e.cfg.GetCategories()
	if len(categories) == 0 {
		return nil, &domain.Error{Kind: domain.KindNoCandidatesConfigured, Subject: "category"}
	}

	category, err := resolver.Resolve(categories, *name, "category")
	if err != nil {
		return nil, err
	}
	e.logger.Debug("Category resolved", zap.String("query", *name), zap.String("category", category.Name))
	return &category, nil
}

func (e *Engine) resolveSupplier(name *string) (domain.SupplierRef, error) {
	suppliers := e.cfg.GetSuppliers()
	if len(suppliers) == 0 {
		return domain.SupplierRef{}, &domain.Error{Kind: domain.KindNoCandidatesConfigured, Subject: "supplier"}
	}

	if name == nil {
		ref := suppliers[e.picker.Pick(len(suppliers))]
		e.logger.Debug("Supplier picked at random", zap.String("supplier", ref.Name))
		return ref, nil
	}

	ref, err := resolver.Resolve(suppliers, *name, "supplier")
	if err != nil {
		return domain.SupplierRef{}, err
	}
	e.logger.Debug("Supplier resolved", zap.String("query", *name), zap.String("supplier", ref.Name))
	return ref, nil
}

// applyScreenRatio fills in the primary display ratio when match_screen is on
// and nothing else constrains the ratio. Probe failures only log.
func (e *Engine) applyScreenRatio(params *domain.SearchParameters) {
	if !e.cfg.MatchScreen() || len(params.AspectRatios) > 0 || e.screen == nil {
		return
	}

	res, err := e.screen.Resolution()
	if err != nil {
		e.logger.Warn("Could not detect screen resolution, not constraining aspect ratio", zap.Error(err))
		return
	}
	ratio := res.AspectRatio()
	params.AspectRatios = append(params.AspectRatios, ratio)
	e.logger.Debug("Using screen aspect ratio", zap.Stringer("ratio", ratio))
}

func (e *Engine) persist(img *domain.Image, output string) (string, error) {
	var (
		path string
		err  error
	)
	if output != "" {
		path, err = e.store.SaveToFormat(img, output)
	} else {
		path, err = e.store.Cache(img)
	}
	if err != nil {
		if domain.KindOf(err) != domain.KindPersistenceFailed {
			err = domain.NewError(domain.KindPersistenceFailed, output, err)
		}
		return "", err
	}
	return path, nil
}

// apply runs set_command. Only a missing template is returned as an error;
// a failing command is recorded on the result.
func (e *Engine) apply(ctx context.Context, res *Result) error {
	template := e.cfg.GetSetCommand()
	if template == "" {
		err := &domain.Error{Kind: domain.KindMissingApplyCommand}
		if hint := e.executor.Suggest(); hint != "" {
			err.Message = fmt.Sprintf("No 'set_command' entry present in config (detected: set_command = %q)", hint)
		}
		return err
	}

	out, err := e.executor.Apply(ctx, template, res.Path)
	res.ApplyResult = out
	if err != nil {
		if domain.KindOf(err) != domain.KindApplyCommandFailed {
			err = domain.NewError(domain.KindApplyCommandFailed, template, err)
		}
		res.ApplyErr = err
		e.logger.Warn("Failed to assign wallpaper",
			zap.Int("exitCode", out.ExitCode),
			zap.String("stderr", out.Stderr),
			zap.Error(err))
		return nil
	}
	res.Applied = true

	if e.cfg.NotifyEnabled() && e.notifier != nil {
		body := "from " + res.Supplier
		if res.Category != "" {
			body += " (" + res.Category + ")"
		}
		if err := e.notifier.Notify(ctx, "Wallpaper applied", body, res.Path); err != nil {
			e.logger.Warn("Failed to send desktop notification", zap.Error(err))
		}
	}
	return nil
}
