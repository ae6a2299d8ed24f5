// Package values contains value objects for the ekm domain model.
package values

import (
	"fmt"
	"strconv"
)

// debugKind is the internal discriminator for Debug.
type debugKind int

const (
	debugLevel debugKind = iota
	debugSuffix
	debugEnabled
)

// Debug represents a profile's debug-info setting. It is a closed variant
// with three cases: a numeric level (-g0, -g2, ...), a compiler-specific
// suffix (-gdwarf, -gsplit-dwarf, ...), or a plain on/off toggle (-g).
type Debug struct {
	kind    debugKind
	level   int
	suffix  string
	enabled bool
}

// DebugLevel creates a Debug carrying a numeric level.
func DebugLevel(n int) Debug {
	return Debug{kind: debugLevel, level: n}
}

// DebugSuffix creates a Debug carrying a raw flag suffix.
func DebugSuffix(s string) Debug {
	return Debug{kind: debugSuffix, suffix: s}
}

// DebugEnabled creates a Debug carrying a plain on/off toggle.
func DebugEnabled(on bool) Debug {
	return Debug{kind: debugEnabled, enabled: on}
}

// Level returns the numeric level and whether this Debug carries one.
func (d Debug) Level() (int, bool) {
	return d.level, d.kind == debugLevel
}

// Suffix returns the flag suffix and whether this Debug carries one.
func (d Debug) Suffix() (string, bool) {
	return d.suffix, d.kind == debugSuffix
}

// Enabled returns the toggle and whether this Debug carries one.
func (d Debug) Enabled() (bool, bool) {
	return d.enabled, d.kind == debugEnabled
}

// String returns the declaration-file spelling of the value.
func (d Debug) String() string {
	switch d.kind {
	case debugLevel:
		return strconv.Itoa(d.level)
	case debugSuffix:
		return d.suffix
	default:
		return strconv.FormatBool(d.enabled)
	}
}

// ParseDebug converts a raw declaration value into a Debug. Integers and
// numeric-looking strings become levels, booleans become toggles, any other
// string becomes a suffix.
func ParseDebug(raw any) (Debug, error) {
	switch v := raw.(type) {
	case bool:
		return DebugEnabled(v), nil
	case int:
		return DebugLevel(v), nil
	case int64:
		return DebugLevel(int(v)), nil
	case uint64:
		return DebugLevel(int(v)), nil
	case float64:
		if v == float64(int(v)) {
			return DebugLevel(int(v)), nil
		}
		return Debug{}, fmt.Errorf("debug level must be an integer, got %v", v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return DebugLevel(n), nil
		}
		return DebugSuffix(v), nil
	default:
		return Debug{}, fmt.Errorf("unsupported debug value of type %T", raw)
	}
}
