package entities

// FlagSet is the materialized, attribute-free form of a resolved profile:
// the concrete compiler invocation data handed to the build-script
// generator. Unlike Profile, every field always has a value.
type FlagSet struct {
	// CC is the compiler executable name.
	CC string
	// Out is the output binary name.
	Out string
	// CFlags are the compiler flags in final emission order.
	CFlags []string
	// LDFlags are the linker flags in final emission order.
	LDFlags []string
}
