package sat

// Literal is a literal encoded per the solver's numbering: for a solver with
// N variables, variable v in 1..N has positive literal v and negative
// literal v+N. Because the encoding depends on N, the arithmetic lives on
// *Solver (positiveLiteral, negativeLiteral, varOf, complement, isPositive)
// rather than on this type.
type Literal int
