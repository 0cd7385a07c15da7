package resolver

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/declbridge/declbridge/pkg/qname"
)

// logMiss records a failed lookup.  In permissive mode failures are silent
// debug events and callers substitute a safe default; the strict flag
// upgrades them to warnings with a dump of the candidate names, for test/CI
// use.  Nothing is ever thrown.
func (r *RootScope) logMiss(s *LinkedScope, p Picker, wanted qname.QName) {
	if !r.strict {
		r.logger.Debug().
			Str("name", wanted.String()).
			Str("picker", p.String()).
			Msg("unresolved name")
		return
	}
	evt := r.logger.Warn().
		Str("name", wanted.String()).
		Str("picker", p.String())
	if s != nil {
		evt = evt.Str("scope", s.String())
		r.logger.Debug().Msg(spew.Sdump(s.container.Index().Names()))
	}
	evt.Msg("unresolved name")
}

// logAmbiguous records a lookup with multiple matches.  Ambiguity is
// recoverable: the caller receives all matches in precedence order.
func (r *RootScope) logAmbiguous(s *LinkedScope, wanted qname.QName, results []Result) {
	evt := r.logger.Debug()
	if r.strict {
		evt = r.logger.Warn()
	}
	evt.Str("name", wanted.String()).
		Str("scope", s.String()).
		Int("matches", len(results)).
		Msg("ambiguous name")
}
