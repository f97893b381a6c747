// Package tristate models three-valued logic for comparisons that may be undefined.
//
// A tristate.Bool is either a definite true or false, or Incomparable.
// Incomparable means the question has no answer for the given operands.
// It is not a softer "false", and it is never collapsed into one implicitly.
package tristate

// Bool is a three-valued boolean.
// The zero value is Incomparable, so an unset result is never read as a definite false.
type Bool int8

const (
	Incomparable Bool = iota
	False
	True
)

// Of returns the definite Bool for b.
func Of(b bool) Bool {
	if b {
		return True
	}
	return False
}

// Definite reports whether the value carries an answer.
func (b Bool) Definite() bool { return b == True || b == False }

// Get returns the definite value and whether it was definite at all.
func (b Bool) Get() (value bool, ok bool) {
	return b == True, b.Definite()
}

// Is reports whether b is the definite value v.
func (b Bool) Is(v bool) bool { return b == Of(v) }

// Not negates a definite value. Incomparable stays Incomparable.
func (b Bool) Not() Bool {
	switch b {
	case True:
		return False
	case False:
		return True
	default:
		return Incomparable
	}
}

func (b Bool) String() string {
	switch b {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "incomparable"
	}
}

// All combines the results of comparing the parts of a composite value.
//
// The precedence is fixed:
// any False makes the result False,
// otherwise any Incomparable makes it Incomparable,
// otherwise the result is True.
//
// An empty list is True, the same way two empty records are equal.
func All(bs ...Bool) Bool {
	var acc = Accumulator{}
	for _, b := range bs {
		if !acc.Add(b) {
			break
		}
	}
	return acc.Result()
}

// Accumulator applies the same precedence as All incrementally,
// so traversals can stop at the first False without building a list.
// The zero value is ready to use.
type Accumulator struct {
	incomparable bool
	unequal      bool
}

// Add folds b into the accumulator.
// It returns false once the result is decided as False, and further parts can be skipped.
func (a *Accumulator) Add(b Bool) bool {
	switch b {
	case False:
		a.unequal = true
	case True:
	default:
		a.incomparable = true
	}
	return !a.unequal
}

func (a Accumulator) Result() Bool {
	switch {
	case a.unequal:
		return False
	case a.incomparable:
		return Incomparable
	default:
		return True
	}
}
