package ll1

import (
	"errors"
	"sync"
	"testing"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/predict/ll/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func scenarioAnalysis(t *testing.T) *ll.Analysis {
	ga, err := ll.BuildAnalysis(ll.NewRawGrammar("G").
		Rule("S", "aBb").Rule("B", "+C").Rule("C", "(D)").Rule("D", "id"))
	if err != nil {
		t.Fatal(err)
	}
	return ga
}

func aikenAnalysis(t *testing.T) *ll.Analysis {
	b := ll.NewGrammarBuilder("Aiken")
	b.LHS("S").N("T").N("X").End()
	b.LHS("T").T("(").N("S").T(")").End()
	b.LHS("T").T("int").N("Y").End()
	b.LHS("X").T("+").N("S").End()
	b.LHS("X").Epsilon()
	b.LHS("Y").T("*").N("T").End()
	b.LHS("Y").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	ga, err := ll.Analyse(g)
	if err != nil {
		t.Fatal(err)
	}
	return ga
}

func TestParseScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll1")
	defer teardown()
	//
	ga := scenarioAnalysis(t)
	testCases := []struct {
		input  string
		accept bool
	}{
		{"a+(id)b", true},
		{"a + ( id ) b", true},
		{"a+(x)b", false},   // x is not a terminal
		{"a+(id)", false},   // b missing at end of input
		{"a+(id)bb", false}, // trailing input
		{"a+(i d)b", false}, // id is atomic
		{"", false},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			accepted, err := ParseString(tc.input, ga)
			assert.NoError(t, err)
			assert.Equal(t, tc.accept, accepted, "input %q", tc.input)
		})
	}
}

func TestParseWithEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll1")
	defer teardown()
	//
	ga := aikenAnalysis(t)
	testCases := []struct {
		input  string
		accept bool
	}{
		{"int", true},
		{"int*int", true},
		{"int * (int + int)", true},
		{"(int)+int*int", true},
		{"(int)*int", false},
		{"int+", false},
		{"int int", false},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			accepted, err := ParseString(tc.input, ga)
			assert.NoError(t, err)
			assert.Equal(t, tc.accept, accepted, "input %q", tc.input)
		})
	}
}

func TestParseTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll1")
	defer teardown()
	//
	ga := scenarioAnalysis(t) // columns: a b + ( ) id $
	tok := func(typ predict.TokType, lexeme string) predict.Token {
		return scanner.MakeDefaultToken(typ, lexeme, predict.Span{})
	}
	p := NewParser(ga)
	accepted, err := p.Parse(scanner.FromTokens(
		tok(0, "a"), tok(2, "+"), tok(3, "("), tok(5, "id"), tok(4, ")"), tok(1, "b")))
	assert.NoError(t, err)
	assert.True(t, accepted)
	accepted, _ = p.Parse(scanner.FromTokens(
		tok(0, "a"), tok(2, "+"), tok(3, "("), tok(scanner.Illegal, "x"), tok(4, ")"), tok(1, "b")))
	assert.False(t, accepted, "illegal token must not match")
	accepted, _ = p.Parse(scanner.FromTokens(tok(0, "a"), tok(42, "?")))
	assert.False(t, accepted, "unknown token type must not match")
}

func TestParserNotInitialized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll1")
	defer teardown()
	//
	_, err := NewParser(nil).Parse(scanner.FromTokens())
	assert.True(t, errors.Is(err, ErrNotInitialized))
	_, err = NewParser(scenarioAnalysis(t)).Parse(nil)
	assert.True(t, errors.Is(err, ErrNotInitialized))
	_, err = ParseString("a", nil)
	assert.True(t, errors.Is(err, ErrNotInitialized))
}

func TestSharedAnalysis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll1")
	defer teardown()
	//
	ga := aikenAnalysis(t)
	inputs := map[string]bool{"int*int": true, "(int": false, "int+(int)": true, ")": false}
	var wg sync.WaitGroup
	results := make(chan string, 4*len(inputs))
	for i := 0; i < 4; i++ {
		for input, expect := range inputs {
			wg.Add(1)
			go func(input string, expect bool) {
				defer wg.Done()
				if accepted, _ := ParseString(input, ga); accepted != expect {
					results <- input
				}
			}(input, expect)
		}
	}
	wg.Wait()
	close(results)
	for input := range results {
		t.Errorf("concurrent parse of %q gave wrong result", input)
	}
}
