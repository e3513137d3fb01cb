package compiler

// Precedence ladder, lowest to highest. Higher numbers bind tighter.
const (
	PREC_NONE int = iota
	PREC_LOWEST
	PREC_ASSIGNMENT // =
	PREC_IS         // is
	PREC_EQUALITY   // == !=
	PREC_COMPARISON // < > <= >=
	PREC_BITWISE    // | &
	PREC_TERM       // + -
	PREC_FACTOR     // * / %
	PREC_UNARY      // unary - ! ~
	PREC_CALL       // . ( )
)
