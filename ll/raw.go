package ll

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Reserved spellings of the character notation.
const (
	RawEpsilon = "ep" // a right-hand side of exactly "ep" derives the empty string
	RawID      = "id" // the characters 'i','d' form the single terminal "id"
)

// RawGrammar is a grammar in compact character notation: an insertion-ordered
// mapping from non-terminal names to right-hand side strings. The first
// non-terminal inserted is the start symbol.
type RawGrammar struct {
	Name  string
	rules *linkedhashmap.Map
}

// NewRawGrammar creates an empty raw grammar.
func NewRawGrammar(name string) *RawGrammar {
	return &RawGrammar{
		Name:  name,
		rules: linkedhashmap.New(),
	}
}

// Rule sets the right-hand side for non-terminal lhs. Re-defining a
// non-terminal replaces its right-hand side but keeps its position.
func (raw *RawGrammar) Rule(lhs, rhs string) *RawGrammar {
	raw.rules.Put(lhs, rhs)
	return raw
}

// Size returns the number of rules.
func (raw *RawGrammar) Size() int {
	return raw.rules.Size()
}

// Each calls f for every rule in order of insertion.
func (raw *RawGrammar) Each(f func(lhs, rhs string)) {
	it := raw.rules.Iterator()
	for it.Next() {
		f(it.Key().(string), it.Value().(string))
	}
}

// DecodeRaw converts a raw grammar into a grammar.
//
// Within a right-hand side, non-terminal names are matched first (longest
// name wins), then the atomic terminal "id". Every other rune is a terminal
// of its own, except for whitespace, which is insignificant. A 'd' which is
// not part of "id" is not a symbol of the alphabet and is reported as
// malformed.
func DecodeRaw(raw *RawGrammar) (*Grammar, error) {
	if raw == nil || raw.Size() == 0 {
		return nil, fmt.Errorf("%w: raw grammar has no rules", ErrMalformedGrammar)
	}
	b := NewGrammarBuilder(raw.Name)
	var names []string
	raw.Each(func(lhs, rhs string) {
		names = append(names, lhs)
	})
	for _, name := range names {
		if name == "" || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
			return nil, fmt.Errorf("%w: illegal non-terminal name %q", ErrMalformedGrammar, name)
		}
	}
	longestFirst := append([]string(nil), names...)
	sort.SliceStable(longestFirst, func(i, j int) bool {
		return len(longestFirst[i]) > len(longestFirst[j])
	})
	var err error
	raw.Each(func(lhs, rhs string) {
		if err != nil {
			return
		}
		err = decodeRHS(b.LHS(lhs), lhs, rhs, longestFirst)
	})
	if err != nil {
		return nil, err
	}
	return b.Grammar()
}

func decodeRHS(rb *RuleBuilder, lhs, rhs string, nonterms []string) error {
	rhs = strings.TrimSpace(rhs)
	if rhs == "" {
		return fmt.Errorf("%w: empty production for %s", ErrMalformedGrammar, lhs)
	}
	if rhs == RawEpsilon {
		rb.Epsilon()
		return nil
	}
	for i := 0; i < len(rhs); {
		r, size := utf8.DecodeRuneInString(rhs[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		if name := matchPrefix(rhs[i:], nonterms); name != "" {
			rb.N(name)
			i += len(name)
			continue
		}
		if strings.HasPrefix(rhs[i:], RawID) {
			rb.T(RawID)
			i += len(RawID)
			continue
		}
		if r == 'd' {
			return fmt.Errorf("%w: stray 'd' at position %d in production %q of %s",
				ErrMalformedGrammar, i, rhs, lhs)
		}
		rb.T(string(r))
		i += size
	}
	rb.End()
	return nil
}

func matchPrefix(s string, candidates []string) string {
	for _, c := range candidates {
		if strings.HasPrefix(s, c) {
			return c
		}
	}
	return ""
}
