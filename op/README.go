/*	Package op provides stateless function factories
	that are useful when working with sequences.

	Every factory is pure:
	each call returns a new closure over its construction-time arguments
	and never mutates shared state.
	The produced functions carry no identity beyond their behavior.

	The package does not depend on the sequence type;
	the factories produce ordinary function values
	that any higher order code can consume.
*/
package op
