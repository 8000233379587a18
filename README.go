/*	Package seq provides a lazy sequence type and the combinators to work with it.



	Summary

	A Seq wraps a Source, the origin of a forward enumeration of values.
	The Source can be finite or infinite, single-pass or repeatable;
	the Seq itself never grants more repeatability than its Source has.
	Transformations (Filter, Map, Take, ...) compose lazily and evaluate nothing,
	terminal operations (First, Count, Fold, ToSlice, ...) drive the evaluation
	by pulling one element at a time through the composed chain,
	all the way down to the root Source.

	Short-circuiting terminals such as First, Any, All stop pulling
	as soon as their result is determined,
	which makes them safe over infinite sources.
	Operations that inherently require the whole sequence
	(Sort, Reverse, FoldRight, Persist, and the seen-set of Distinct)
	buffer the full source in memory;
	applying them to a genuinely infinite source does not terminate.

	Element types are free to be anything.
	Transformations that change the element type,
	or that constrain it (comparable, ordered, numeric),
	are package level functions, because Go methods cannot introduce type parameters;
	element-type preserving operations are methods on Seq,
	so the common chains still read fluently.

	The evaluation model is single-threaded and pull-based.
	A single-pass Source must not be enumerated by two consumers at once,
	since the pulls of the first are destructive to the second.
	Re-enumerating an already exhausted single-pass Source is not an error,
	it observes an empty sequence.
*/
package seq
