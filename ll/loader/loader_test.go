package loader

import (
	"errors"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

const scenarioTOML = `
name = "G"

[[rule]]
lhs = "S"
rhs = "aBb"

[[rule]]
lhs = "B"
rhs = "+C"

[[rule]]
lhs = "C"
rhs = "(D)"

[[rule]]
lhs = "D"
rhs = "id"
`

const aikenEBNF = `
S = T X .
T = "(" S ")" | "int" Y .
X = [ "+" S ] .
Y = [ "*" T ] .
`

func rules(g *ll.Grammar) []string {
	var r []string
	for _, rule := range g.Rules() {
		r = append(r, rule.String())
	}
	return r
}

func TestReadTOML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.loader")
	defer teardown()
	//
	assert := assert.New(t)
	raw, err := ReadTOML(strings.NewReader(scenarioTOML))
	if !assert.NoError(err) {
		return
	}
	assert.Equal("G", raw.Name)
	assert.Equal(4, raw.Size())
	g, err := ll.DecodeRaw(raw)
	if !assert.NoError(err) {
		return
	}
	assert.Equal([]string{"S ➞ a B b", "B ➞ + C", "C ➞ ( D )", "D ➞ id"}, rules(g))
}

func TestReadTOMLErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.loader")
	defer teardown()
	//
	testCases := []struct {
		name  string
		input string
	}{
		{"syntax", `[[rule]` + "\n" + `lhs = "S"`},
		{"unknown key", `[[rule]]` + "\n" + `lhs = "S"` + "\n" + `rhs = "a"` + "\n" + `prio = 1`},
		{"duplicate", `[[rule]]` + "\n" + `lhs = "S"` + "\n" + `rhs = "a"` + "\n" +
			`[[rule]]` + "\n" + `lhs = "S"` + "\n" + `rhs = "b"`},
		{"no lhs", `[[rule]]` + "\n" + `rhs = "a"`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadTOML(strings.NewReader(tc.input))
			assert.True(t, errors.Is(err, ll.ErrMalformedGrammar), "expected malformed grammar, got %v", err)
		})
	}
}

func TestReadEBNF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.loader")
	defer teardown()
	//
	assert := assert.New(t)
	g, err := ReadEBNF("aiken.ebnf", strings.NewReader(aikenEBNF), "")
	if !assert.NoError(err) {
		return
	}
	assert.Equal([]string{
		"S ➞ T X",
		"T ➞ ( S ) | int Y",
		"X ➞ + S | ε",
		"Y ➞ * T | ε",
	}, rules(g))
	ga, err := ll.Analyse(g)
	if !assert.NoError(err) {
		return
	}
	assert.Equal("),$", ga.Follow(g.SymbolByName("X")).String())
}

func TestEBNFNesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.loader")
	defer teardown()
	//
	testCases := []struct {
		name   string
		input  string
		start  string
		expect []string
	}{
		{
			name:   "group",
			input:  `S = "a" ( "b" | "c" ) .`,
			expect: []string{"S ➞ a S#1", "S#1 ➞ b | c"},
		},
		{
			name:   "repetition",
			input:  `L = "x" { "," "x" } .`,
			expect: []string{"L ➞ x L#1", "L#1 ➞ , x L#1 | ε"},
		},
		{
			name:   "empty production",
			input:  `S = "a" E "b" . E = .`,
			expect: []string{"S ➞ a E b", "E ➞ ε"},
		},
		{
			name:   "lexical reference",
			input:  `S = ident "=" ident . ident = "a" … "z" .`,
			expect: []string{"S ➞ ident = ident"},
		},
		{
			name:   "explicit start",
			input:  aikenEBNF,
			start:  "T",
			expect: []string{"T ➞ ( S ) | int Y", "S ➞ T X", "X ➞ + S | ε", "Y ➞ * T | ε"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := ReadEBNF(tc.name, strings.NewReader(tc.input), tc.start)
			if assert.NoError(t, err) {
				assert.Equal(t, tc.expect, rules(g))
			}
		})
	}
}

func TestEBNFErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.loader")
	defer teardown()
	//
	testCases := []struct {
		name  string
		input string
		start string
	}{
		{name: "syntax", input: `S = "a" `},
		{name: "undefined", input: `S = A .`},
		{name: "unreachable", input: `S = "a" . T = "b" .`},
		{name: "no productions", input: ``},
		{name: "lexical start", input: `ident = "a" .`},
		{name: "unknown start", input: `S = "a" .`, start: "T"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadEBNF(tc.name, strings.NewReader(tc.input), tc.start)
			assert.True(t, errors.Is(err, ll.ErrMalformedGrammar), "expected malformed grammar, got %v", err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.loader")
	defer teardown()
	//
	assert := assert.New(t)
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "scenario.toml")
	ebnfPath := filepath.Join(dir, "aiken.ebnf")
	assert.NoError(ioutil.WriteFile(tomlPath, []byte(scenarioTOML), 0644))
	assert.NoError(ioutil.WriteFile(ebnfPath, []byte(aikenEBNF), 0644))
	g, err := LoadFile(tomlPath, "")
	if assert.NoError(err) {
		assert.Equal("S", g.Start().Name)
		assert.Equal(4, g.Size())
	}
	g, err = LoadFile(ebnfPath, "")
	if assert.NoError(err) {
		assert.Equal("S", g.Start().Name)
		assert.Equal(4, g.Size())
	}
	_, err = LoadFile(filepath.Join(dir, "grammar.txt"), "")
	assert.Error(err)
	_, err = LoadFile(filepath.Join(dir, "missing.toml"), "")
	assert.Error(err)
}
