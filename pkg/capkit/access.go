package capkit

// Mode is the mutability mode of a consuming type.
type Mode int

const (
	// ByReference means mutation requires exclusive access through *Self.
	// This is the default for value-semantic types such as structs and arrays.
	ByReference Mode = iota
	// ByValue means mutation is visible through a plain Self value.
	// Reference-semantic types such as maps, channels or pointer-backed handles use it.
	ByValue
)

func (m Mode) String() string {
	switch m {
	case ByValue:
		return "by-value"
	default:
		return "by-reference"
	}
}

// Access resolves the mutable handle type Mut of Self.
//
// View and Mutable are pure conversions.
// They are identities in by-value mode,
// and dereference / reference taking in by-reference mode.
// Derived operations must route every mutation through Mut.
type Access[Self, Mut any] interface {
	Mode() Mode
	// View returns the immutable view of the handle.
	View(Mut) Self
	// Mutable returns the mutable handle for the value behind the pointer.
	Mutable(*Self) Mut
}

// ByValueAccess is the Access of reference-semantic types, where Mut is Self itself.
type ByValueAccess[Self any] struct{}

func (ByValueAccess[Self]) Mode() Mode { return ByValue }

func (ByValueAccess[Self]) View(m Self) Self { return m }

func (ByValueAccess[Self]) Mutable(ptr *Self) Self { return *ptr }

// ByReferenceAccess is the Access of value-semantic types, where Mut is *Self.
type ByReferenceAccess[Self any] struct{}

func (ByReferenceAccess[Self]) Mode() Mode { return ByReference }

func (ByReferenceAccess[Self]) View(m *Self) Self { return *m }

func (ByReferenceAccess[Self]) Mutable(ptr *Self) *Self { return ptr }

var (
	_ Access[map[string]int, map[string]int] = ByValueAccess[map[string]int]{}
	_ Access[[3]int, *[3]int]                = ByReferenceAccess[[3]int]{}
)
