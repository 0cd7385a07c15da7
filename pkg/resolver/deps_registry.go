package resolver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dghubble/trie"

	"github.com/declbridge/declbridge/pkg/decl"
)

var depsPathTrieConfig = &trie.PathTrieConfig{
	Segmenter: specifierSegmenter,
}

// DepsRegistry maps library specifiers to their already-resolved Containers,
// supplied by an orchestrator running libraries in dependency order.  Exact
// specifiers are held in a trie so that a subpath import like
// "@scope/lib/sub" resolves to its longest registered prefix; glob patterns
// ("lib/*", tsconfig-style path mappings) are matched last.
type DepsRegistry struct {
	libs     *trie.PathTrie
	patterns []depPattern
}

type depPattern struct {
	pattern string
	lib     decl.Container
}

// NewDepsRegistry constructs an empty registry.
func NewDepsRegistry() *DepsRegistry {
	return &DepsRegistry{
		libs: trie.NewPathTrieWithConfig(depsPathTrieConfig),
	}
}

// Put registers the given library container under the specifier.  It is an
// error to register the same specifier twice.
func (r *DepsRegistry) Put(specifier string, lib decl.Container) error {
	if strings.ContainsAny(specifier, "*?[") {
		for _, p := range r.patterns {
			if p.pattern == specifier {
				return fmt.Errorf("duplicate dependency pattern: %s", specifier)
			}
		}
		if !doublestar.ValidatePattern(specifier) {
			return fmt.Errorf("invalid dependency pattern: %s", specifier)
		}
		r.patterns = append(r.patterns, depPattern{pattern: specifier, lib: lib})
		return nil
	}
	if r.libs.Get(specifier) != nil {
		return fmt.Errorf("duplicate dependency: %s", specifier)
	}
	r.libs.Put(specifier, lib)
	return nil
}

// Get resolves a specifier to its library container: the longest registered
// prefix wins, then registered patterns in registration order.
func (r *DepsRegistry) Get(specifier string) (decl.Container, bool) {
	var last interface{}
	r.libs.WalkPath(specifier, func(key string, value interface{}) error {
		last = value
		return nil
	})
	if last != nil {
		return last.(decl.Container), true
	}
	for _, p := range r.patterns {
		if ok, _ := doublestar.Match(p.pattern, specifier); ok {
			return p.lib, true
		}
	}
	return nil, false
}

// Names returns the sorted list of registered exact specifiers.
func (r *DepsRegistry) Names() []string {
	var names []string
	r.libs.Walk(func(key string, value interface{}) error {
		names = append(names, key)
		return nil
	})
	sort.Strings(names)
	return names
}

// specifierSegmenter segments module specifiers by slash separators.  For
// example, "@scope/lib/sub" -> ("@scope", 6), ("/lib", 10), ("/sub", -1) in
// successive calls.  It does not allocate any heap memory.
func specifierSegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	end := strings.IndexRune(path[start+1:], '/') // next '/' after 0th rune
	if end == -1 {
		return path[start:], -1
	}
	return path[start : start+end+1], start + end + 1
}
