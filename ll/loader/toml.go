package loader

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/predict/ll"
)

type grammarFile struct {
	Name  string      `toml:"name"`
	Rules []ruleEntry `toml:"rule"`
}

type ruleEntry struct {
	LHS string `toml:"lhs"`
	RHS string `toml:"rhs"`
}

// ReadTOML reads a raw grammar from TOML input. Every non-terminal may be
// defined only once; unknown keys are rejected.
func ReadTOML(r io.Reader) (*ll.RawGrammar, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var gf grammarFile
	md, err := toml.Decode(string(data), &gf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ll.ErrMalformedGrammar, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ll.ErrMalformedGrammar, undecoded[0].String())
	}
	raw := ll.NewRawGrammar(gf.Name)
	seen := make(map[string]bool, len(gf.Rules))
	for i, rule := range gf.Rules {
		lhs := strings.TrimSpace(rule.LHS)
		if lhs == "" {
			return nil, fmt.Errorf("%w: rule #%d has no left-hand side", ll.ErrMalformedGrammar, i+1)
		}
		if seen[lhs] {
			return nil, fmt.Errorf("%w: non-terminal %s defined twice", ll.ErrMalformedGrammar, lhs)
		}
		seen[lhs] = true
		raw.Rule(lhs, rule.RHS)
	}
	tracer().Debugf("read %d rules of grammar %q from TOML", raw.Size(), raw.Name)
	return raw, nil
}
