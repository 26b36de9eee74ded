package ll

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func scenarioGrammar() *RawGrammar {
	return NewRawGrammar("G").
		Rule("S", "aBb").
		Rule("B", "+C").
		Rule("C", "(D)").
		Rule("D", "id")
}

func names(syms []*Symbol) []string {
	r := make([]string, len(syms))
	for i, A := range syms {
		r[i] = A.Name
	}
	return r
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").T("a").End()
	b.LHS("A").T("b").End()
	b.LHS("A").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if g.Start().Name != "S" {
		t.Errorf("expected start symbol to be S, is %v", g.Start())
	}
	A := g.SymbolByName("A")
	if A == nil || !A.IsNonTerminal() {
		t.Fatalf("expected A to be a non-terminal, is %v", A)
	}
	if n := len(g.Rule(A).Alternatives); n != 2 {
		t.Errorf("expected A to have 2 alternatives, has %d", n)
	}
	if !g.Rule(A).Alternatives[1].IsEpsilon() {
		t.Errorf("expected 2nd alternative of A to be epsilon")
	}
}

func TestBuilderErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	testCases := []struct {
		name  string
		build func(b *GrammarBuilder)
	}{
		{name: "no rules", build: func(b *GrammarBuilder) {}},
		{name: "empty production", build: func(b *GrammarBuilder) { b.LHS("S").End() }},
		{name: "terminal and non-terminal", build: func(b *GrammarBuilder) {
			b.LHS("S").T("S").End()
		}},
		{name: "reserved name", build: func(b *GrammarBuilder) { b.LHS("S").T("$").End() }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewGrammarBuilder("G")
			tc.build(b)
			_, err := b.Grammar()
			assert.True(t, errors.Is(err, ErrMalformedGrammar), "expected malformed grammar, got %v", err)
		})
	}
}

func TestDecodeRaw(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	assert := assert.New(t)
	g, err := DecodeRaw(scenarioGrammar())
	if !assert.NoError(err) {
		return
	}
	assert.Equal([]string{"S", "B", "C", "D"}, names(g.NonTerminals()))
	assert.Equal([]string{"a", "b", "+", "(", ")", "id", "$"}, names(g.Terminals()))
	D := g.SymbolByName("D")
	assert.Equal("id", g.Rule(D).Alternatives[0].String())
	assert.Len(g.Rule(D).Alternatives[0], 1, "id is a single terminal")
	S := g.SymbolByName("S")
	assert.Equal("a B b", g.Rule(S).Alternatives[0].String())
}

func TestDecodeRawNotation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	testCases := []struct {
		name      string
		raw       *RawGrammar
		expect    []string // rules
		expectErr bool
	}{
		{
			name:   "epsilon",
			raw:    NewRawGrammar("G").Rule("S", "Ab").Rule("A", "ep"),
			expect: []string{"S ➞ A b", "A ➞ ε"},
		},
		{
			name:   "whitespace is insignificant",
			raw:    NewRawGrammar("G").Rule("S", " a  b "),
			expect: []string{"S ➞ a b"},
		},
		{
			name:   "multi-character non-terminals match longest first",
			raw:    NewRawGrammar("G").Rule("E", "TEx").Rule("T", "x").Rule("Ex", "+T"),
			expect: []string{"E ➞ T Ex", "T ➞ x", "Ex ➞ + T"},
		},
		{
			name:      "stray d",
			raw:       NewRawGrammar("G").Rule("S", "add"),
			expectErr: true,
		},
		{
			name:      "empty right-hand side",
			raw:       NewRawGrammar("G").Rule("S", "  "),
			expectErr: true,
		},
		{
			name:      "end-of-input is reserved",
			raw:       NewRawGrammar("G").Rule("S", "a$"),
			expectErr: true,
		},
		{
			name:      "no rules",
			raw:       NewRawGrammar("G"),
			expectErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			g, err := DecodeRaw(tc.raw)
			if tc.expectErr {
				assert.True(errors.Is(err, ErrMalformedGrammar), "expected malformed grammar, got %v", err)
				return
			}
			if !assert.NoError(err) {
				return
			}
			var rules []string
			for _, r := range g.Rules() {
				rules = append(rules, r.String())
			}
			assert.Equal(tc.expect, rules)
		})
	}
}

func TestCorrect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	testCases := []struct {
		name      string
		raw       *RawGrammar
		expect    []string
		expectErr bool
	}{
		{
			name:   "epsilon non-terminal is removed",
			raw:    NewRawGrammar("G").Rule("S", "Ab").Rule("A", "ep"),
			expect: []string{"S ➞ b"},
		},
		{
			name:   "every occurence is removed",
			raw:    NewRawGrammar("G").Rule("S", "AaBA").Rule("A", "ep").Rule("B", "bA"),
			expect: []string{"S ➞ a B", "B ➞ b"},
		},
		{
			name:   "correction cascades",
			raw:    NewRawGrammar("G").Rule("S", "aBc").Rule("B", "C").Rule("C", "ep"),
			expect: []string{"S ➞ a c"},
		},
		{
			name:   "no epsilon",
			raw:    scenarioGrammar(),
			expect: []string{"S ➞ a B b", "B ➞ + C", "C ➞ ( D )", "D ➞ id"},
		},
		{
			name:      "start symbol derives epsilon only",
			raw:       NewRawGrammar("G").Rule("S", "A").Rule("A", "ep"),
			expectErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			g, err := DecodeRaw(tc.raw)
			if !assert.NoError(err) {
				return
			}
			c, err := Correct(g)
			if tc.expectErr {
				assert.True(errors.Is(err, ErrMalformedGrammar), "expected malformed grammar, got %v", err)
				return
			}
			if !assert.NoError(err) {
				return
			}
			var rules []string
			for _, r := range c.Rules() {
				rules = append(rules, r.String())
			}
			assert.Equal(tc.expect, rules)
			// correction is idempotent
			cc, err := Correct(c)
			assert.NoError(err)
			assert.Equal(c.Rules(), cc.Rules())
		})
	}
}

func TestCorrectKeepsInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	g, err := DecodeRaw(NewRawGrammar("G").Rule("S", "Ab").Rule("A", "ep"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err = Correct(g); err != nil {
		t.Fatal(err)
	}
	if g.Size() != 2 || g.Rule(g.Start()).Alternatives[0].String() != "A b" {
		t.Errorf("correction modified its input grammar")
	}
}

func TestCorrectMixedAlternatives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").N("B").T("c").End()
	b.LHS("A").T("a").End()
	b.LHS("A").Epsilon()
	b.LHS("B").N("E").End()
	b.LHS("E").Epsilon()
	g, _ := b.Grammar()
	c, err := Correct(g)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []string{"S", "A"}, names(c.NonTerminals()))
	assert.Equal(t, "A c", c.Rule(c.Start()).Alternatives[0].String())
	assert.Len(t, c.Rule(c.SymbolByName("A")).Alternatives, 2)
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").T("a").N("X").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if err = g.Validate(); !errors.Is(err, ErrMalformedGrammar) {
		t.Errorf("expected undefined non-terminal X to be reported, got %v", err)
	}
}
