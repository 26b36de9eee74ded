/*
Package predict is a toolbox for LL(1) predictive parsing.

Predict builds a predictive parsing table from a context-free grammar and drives
a stack automaton over an input token sequence, using a single token of lookahead.
Package structure is as follows:

■ ll: Package ll implements grammars, epsilon correction, FIRST and FOLLOW set
construction and the LL(1) parse table, bundled into a grammar analysis.

■ ll/ll1: Package ll1 implements the table driven predictive parser.

■ ll/scanner: Package scanner defines the tokenizer interface the parser relies on,
with a lexmachine-based implementation in sub-package lexmach.

■ ll/loader: Package loader reads grammars from TOML or EBNF files.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package predict
