package values

import "fmt"

// Attribute identifies one mergeable field of a profile. The set is closed:
// merge rules, inheritance targets, and declaration keys are all selected by
// switching over this enum, never by name-based field access.
type Attribute int

const (
	AttrDebug Attribute = iota
	AttrWarn
	AttrSanitize
	AttrCFlags
	AttrLDFlags
	AttrLTO
	AttrCC
	AttrOut
	AttrRun
	AttrOptLevel
)

// attributeNames maps each attribute to its declaration-file key.
var attributeNames = map[Attribute]string{
	AttrDebug:    "debug",
	AttrWarn:     "warn",
	AttrSanitize: "sanitize",
	AttrCFlags:   "cflags",
	AttrLDFlags:  "ldflags",
	AttrLTO:      "lto",
	AttrCC:       "cc",
	AttrOut:      "out",
	AttrRun:      "run",
	AttrOptLevel: "opt-level",
}

// AllAttributes returns every profile attribute in a fixed order.
func AllAttributes() []Attribute {
	return []Attribute{
		AttrDebug, AttrWarn, AttrSanitize, AttrCFlags, AttrLDFlags,
		AttrLTO, AttrCC, AttrOut, AttrRun, AttrOptLevel,
	}
}

// ParseAttribute resolves a declaration-file key to an Attribute. Both the
// TOML spelling "opt-level" and the underscore form "opt_level" are accepted.
func ParseAttribute(name string) (Attribute, error) {
	switch name {
	case "debug":
		return AttrDebug, nil
	case "warn":
		return AttrWarn, nil
	case "sanitize":
		return AttrSanitize, nil
	case "cflags":
		return AttrCFlags, nil
	case "ldflags":
		return AttrLDFlags, nil
	case "lto":
		return AttrLTO, nil
	case "cc":
		return AttrCC, nil
	case "out":
		return AttrOut, nil
	case "run":
		return AttrRun, nil
	case "opt-level", "opt_level":
		return AttrOptLevel, nil
	default:
		return 0, fmt.Errorf("unknown profile attribute %q", name)
	}
}

// String returns the declaration-file key for the attribute.
func (a Attribute) String() string {
	if name, ok := attributeNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Attribute(%d)", int(a))
}

// Joinable reports whether the attribute merges by ordered concatenation
// instead of override. Only the raw flag lists are joinable.
func (a Attribute) Joinable() bool {
	return a == AttrCFlags || a == AttrLDFlags
}
