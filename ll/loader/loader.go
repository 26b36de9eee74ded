/*
Package loader reads grammars from files.

Two formats are supported. TOML files hold a raw grammar in character notation,
one table per rule, in order of declaration (the first rule being the start rule):

	name = "G"

	[[rule]]
	lhs = "S"
	rhs = "aBb"

	[[rule]]
	lhs = "B"
	rhs = "ep"

EBNF files hold productions in the notation of golang.org/x/exp/ebnf:

	S = T X .
	T = "(" S ")" | "int" Y .
	X = [ "+" S ] .
	Y = [ "*" T ] .

Production names starting with an upper case letter are non-terminals, quoted
tokens are terminals. References to lexical productions (names starting with a
lower case letter) are terminals as well, named after the production.
An empty production derives ε. Groups, options and repetitions nested within a
sequence are replaced by synthetic non-terminals; an option or repetition making
up the complete right-hand side of a production becomes alternatives of the
production itself.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.loader'.
func tracer() tracing.Trace {
	return tracing.Select("predict.loader")
}

// LoadFile reads a grammar from a file, selecting the format by file
// extension: ".toml" for raw grammars, ".ebnf" for EBNF. start is the start
// symbol for EBNF grammars; if empty, the first production is used.
func LoadFile(path string, start string) (*ll.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		raw, err := ReadTOML(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if raw.Name == "" {
			raw.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		return ll.DecodeRaw(raw)
	case ".ebnf":
		return ReadEBNF(path, f, start)
	default:
		return nil, fmt.Errorf("%s: unknown grammar file format %q", path, ext)
	}
}
