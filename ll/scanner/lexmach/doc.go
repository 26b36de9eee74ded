/*
Package lexmach provides an adapter to use the lexmachine scanner generator with
the LL(1) parser of package ll1.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The most common way to create a tokenizer is from the terminals of an analysed
grammar. Token types then are the columns of the parse table:

	LM, err := lexmach.ForGrammar(analysis.Terminals())
	if err != nil {
		// do error handling
	}

Clients who need more liberty in how to set up lexmachine may provide their own
patterns. Package lexmach is still opinionated about literals and keywords:

	var literals []string       // The tokens representing literal strings
	var keywords []string       // The keyword tokens
	var tokenIds map[string]int // A map from the token names to their int IDs

	init := func(lexer *lexmachine.Lexer) {
		// initialize lexmachine with all the necessary regular expressions
		//
		// lexmach.Skip      is a pre-defined action which ignores the scanned match
		// lexmach.MakeToken is a pre-defined action which wraps a scanned match into a
		//                   predict.Token
	}
	LM, err := NewLMAdapter(init, literals, keywords, tokenIds, nil)

A scanner is instantiated for each concrete input sequence.
The scanner implements the scanner.Tokenizer interface.

	scan, err := LM.Scanner("input string to tokenize")
	if err != nil {
		// do error handling
	}

On the parser side tokens are read until EOF.

	for … { // feed token into parser
		token := scan.NextToken()
		if token.TokType() != scanner.EOF {
			…
		}
	}

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
