package resolver

import (
	"github.com/rs/zerolog"

	"github.com/declbridge/declbridge/pkg/decl"
	"github.com/declbridge/declbridge/pkg/qname"
)

// RootScope is the root of one library's resolution pass: the dependency
// registry, the table of ambient modules declared in the pass's file forest,
// the pass logger, and the per-pass memo caches.  The dependency registry is
// populated before the pass starts and is read-only thereafter; the caches
// are plain maps never accessed concurrently (one root scope per pass).
type RootScope struct {
	deps    *DepsRegistry
	modules map[string]*decl.Module
	logger  zerolog.Logger
	strict  bool

	exportCache map[string]decl.Container
	importCache map[importKey][]Result
}

// RootScopeOption configures a RootScope.
type RootScopeOption func(*RootScope)

// WithLogger sets the pass logger.
func WithLogger(logger zerolog.Logger) RootScopeOption {
	return func(r *RootScope) {
		r.logger = logger
	}
}

// WithStrict upgrades failed and ambiguous lookups from debug to warning
// logs.  Strict mode only changes log verbosity, never control flow.
func WithStrict(strict bool) RootScopeOption {
	return func(r *RootScope) {
		r.strict = strict
	}
}

// WithDependency registers a resolved dependency library under the given
// specifier (exact, prefix-owning, or glob pattern).
func WithDependency(specifier string, lib decl.Container) RootScopeOption {
	return func(r *RootScope) {
		if err := r.deps.Put(specifier, lib); err != nil {
			r.logger.Warn().Str("specifier", specifier).Err(err).Msg("skipping dependency registration")
		}
	}
}

// NewRootScope constructs the root scope for one resolution pass.
func NewRootScope(options ...RootScopeOption) *RootScope {
	r := &RootScope{
		deps:        NewDepsRegistry(),
		modules:     make(map[string]*decl.Module),
		logger:      zerolog.Nop(),
		exportCache: make(map[string]decl.Container),
		importCache: make(map[importKey][]Result),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// AddFile registers the ambient modules declared in the given file, merging
// module augmentations into their targets when present.
func (r *RootScope) AddFile(f *decl.File) {
	var augmentations []*decl.AugmentedModule
	for _, m := range f.Members() {
		switch t := m.(type) {
		case *decl.Module:
			if _, ok := r.modules[t.Specifier()]; ok {
				r.logger.Debug().Str("specifier", t.Specifier()).Msg("duplicate module declaration; keeping first")
				continue
			}
			r.modules[t.Specifier()] = t
		case *decl.AugmentedModule:
			augmentations = append(augmentations, t)
		}
	}
	for _, aug := range augmentations {
		target, ok := r.modules[aug.Specifier()]
		if !ok {
			r.logger.Debug().Str("specifier", aug.Specifier()).Msg("augmentation of unknown module")
			continue
		}
		members := append(target.Members(), aug.Members()...)
		r.modules[aug.Specifier()] = target.WithMembers(members).(*decl.Module)
	}
}

// Module resolves a module specifier to its container: ambient modules of
// this pass first, then dependency libraries.
func (r *RootScope) Module(specifier string) (decl.Container, bool) {
	if m, ok := r.modules[specifier]; ok {
		return m, true
	}
	if lib, ok := r.deps.Get(specifier); ok {
		return lib, true
	}
	return nil, false
}

// Deps is the dependency registry of this pass.
func (r *RootScope) Deps() *DepsRegistry {
	return r.deps
}

// Logger is the pass logger.
func (r *RootScope) Logger() zerolog.Logger {
	return r.logger
}

// Strict reports whether strict logging is enabled.
func (r *RootScope) Strict() bool {
	return r.strict
}

// Parent implements part of the Scope interface.  The root has no parent.
func (r *RootScope) Parent() Scope { return nil }

// Root implements part of the Scope interface.
func (r *RootScope) Root() *RootScope { return r }

// Enter implements part of the Scope interface.
func (r *RootScope) Enter(c decl.Container) Scope {
	return &LinkedScope{parent: r, container: c, root: r}
}

// IsAbstractName implements part of the Scope interface.  No type
// parameters are in scope at the root.
func (r *RootScope) IsAbstractName(name string) bool { return false }

// Lookup implements part of the Scope interface.  At the root the only
// remaining step is the dependency-library crossing: if the first part
// names a known library, the lookup continues in that library's root scope.
func (r *RootScope) Lookup(p Picker, wanted qname.QName, g Guard) []Result {
	results := r.lookup(p, wanted, g)
	if len(results) == 0 {
		r.logMiss(nil, p, wanted)
	}
	return results
}

func (r *RootScope) lookup(p Picker, wanted qname.QName, g Guard) []Result {
	if wanted.IsEmpty() {
		return nil
	}
	lib, ok := r.deps.Get(wanted.Head())
	if !ok {
		return nil
	}
	g2, ok := g.Include(GuardModule, "dep:"+wanted.Head())
	if !ok {
		return nil
	}
	ls := r.Enter(lib).(*LinkedScope)
	if wanted.Len() == 1 {
		if picked, ok := p.Pick(lib); ok {
			return []Result{{Decl: picked, Scope: ls}}
		}
		return nil
	}
	return ls.search(p, wanted.Tail(), g2)
}

// String implements the fmt.Stringer interface.
func (r *RootScope) String() string {
	return "root"
}
