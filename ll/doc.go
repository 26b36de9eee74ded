/*
Package ll implements prerequisites for LL(1) predictive parsing.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. A non-terminal
may have more than one alternative, and alternatives may be epsilon.

Example:

    b := ll.NewGrammarBuilder("G")
    b.LHS("S").T("a").N("B").T("b").End()  // S  ->  a B b
    b.LHS("B").T("+").N("C").End()         // B  ->  + C
    b.LHS("C").T("(").N("D").T(")").End()  // C  ->  ( D )
    b.LHS("D").T("id").End()               // D  ->  id
    g, err := b.Grammar()

Grammars may as well be given in the compact character notation, where every
rune of a right-hand side is a symbol, the two characters "id" form a single
terminal and "ep" denotes epsilon:

    raw := ll.NewRawGrammar("G").
        Rule("S", "aBb").Rule("B", "+C").Rule("C", "(D)").Rule("D", "id")
    g, err := ll.DecodeRaw(raw)

Static Grammar Analysis

After the grammar is complete, it has to be analysed. Analysis first corrects
the grammar by substituting away every non-terminal which derives nothing but
epsilon, then computes FIRST and FOLLOW sets and the LL(1) parse table.

    ga, err := ll.Analyse(g)           // or ll.BuildAnalysis(raw)
    for _, A := range ga.NonTerminals() {
        fmt.Printf("FIRST(%s) = %v, FOLLOW(%s) = %v\n", A, ga.First(A), A, ga.Follow(A))
    }

    // Output:
    FIRST(S) = a, FOLLOW(S) = $
    FIRST(B) = +, FOLLOW(B) = b,$
    FIRST(C) = (, FOLLOW(C) = b,$
    FIRST(D) = id, FOLLOW(D) = ),$

Every FOLLOW set ends with the end-of-input marker $.
Grammars whose table would need more than one production in a cell are
rejected with an error wrapping ErrLL1Conflict.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.ll'.
func tracer() tracing.Trace {
	return tracing.Select("predict.ll")
}
