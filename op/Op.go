package op

// Identity returns its argument unchanged.
func Identity[T any](v T) T {
	return v
}

// Value returns a function that translates any argument to the supplied value.
func Value[A, T any](v T) func(A) T {
	return func(A) T { return v }
}

// IsZero reports whether the value equals the zero value of its type.
func IsZero[T comparable](v T) bool {
	var zero T
	return v == zero
}

// IsNotZero reports whether the value differs from the zero value of its type.
func IsNotZero[T comparable](v T) bool {
	return !IsZero(v)
}

// Not negates a predicate.
func Not[T any](p func(T) bool) func(T) bool {
	return func(v T) bool { return !p(v) }
}

// Swap returns a function that evaluates another function with its arguments transposed.
func Swap[A, B, R any](f func(A, B) R) func(B, A) R {
	return func(b B, a A) R { return f(a, b) }
}

// Compose returns the function applying g first and f on its result.
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C { return f(g(a)) }
}

// AndThen returns the function applying f first and g on its result.
func AndThen[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return Compose(g, f)
}

// Item returns a function that gets the given key from a map.
func Item[K comparable, V any](key K) func(map[K]V) V {
	return func(m map[K]V) V { return m[key] }
}

// ItemOf returns a function that gets a key from the given map.
// Mapped over a sequence of keys, it turns them into their stored values.
func ItemOf[K comparable, V any](m map[K]V) func(K) V {
	return func(key K) V { return m[key] }
}

// Index returns a function that gets the given position from a slice.
func Index[V any](i int) func([]V) V {
	return func(vs []V) V { return vs[i] }
}

// IndexOf returns a function that gets a position from the given slice.
func IndexOf[V any](vs []V) func(int) V {
	return func(i int) V { return vs[i] }
}

// Contains returns a predicate that tests whether the given item is contained in a slice.
func Contains[T comparable](v T) func([]T) bool {
	return func(vs []T) bool {
		for _, got := range vs {
			if got == v {
				return true
			}
		}
		return false
	}
}

// ContainedIn returns a predicate that tests whether an item is contained in the given slice.
func ContainedIn[T comparable](vs []T) func(T) bool {
	return func(v T) bool {
		for _, got := range vs {
			if got == v {
				return true
			}
		}
		return false
	}
}

// Equals returns a predicate that tests whether a value equals the given one.
func Equals[T comparable](v T) func(T) bool {
	return func(got T) bool { return got == v }
}

// NotEquals returns a predicate that tests whether a value differs from the given one.
func NotEquals[T comparable](v T) func(T) bool {
	return func(got T) bool { return got != v }
}

// IsInstance returns a predicate that tests whether a value's dynamic type is T.
func IsInstance[T any]() func(any) bool {
	return func(v any) bool {
		_, ok := v.(T)
		return ok
	}
}

// Lhs is a binary operator that returns its first argument.
func Lhs[T any](lhs, _ T) T {
	return lhs
}

// Rhs is a binary operator that returns its second argument.
func Rhs[T any](_, rhs T) T {
	return rhs
}
