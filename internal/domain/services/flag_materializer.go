package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ekm-build/ekm/internal/domain/entities"
	"github.com/ekm-build/ekm/internal/domain/values"
)

// DefaultCompiler is used when a resolved profile does not name one.
const DefaultCompiler = "gcc"

// FlagMaterializer translates one fully-resolved profile into a concrete
// flag set. It is pure and total: every resolved profile materializes.
//
// The expansion steps run in a fixed order because flag position in the
// output lists is observable: raw cflags/ldflags seed the lists, then
// optimization, warnings, debug, sanitizers, and LTO append in that order.
type FlagMaterializer struct{}

// NewFlagMaterializer creates a new flag materializer service.
func NewFlagMaterializer() *FlagMaterializer {
	return &FlagMaterializer{}
}

// Materialize converts a resolved profile into the concrete flag set for
// projectName. The profile's own cflags/ldflags are already fully merged by
// the resolvers and are carried through as the seed of the output lists.
func (m *FlagMaterializer) Materialize(
	projectName string,
	profile *entities.Profile,
) *entities.FlagSet {
	cflags := append([]string{}, profile.CFlags...)
	ldflags := append([]string{}, profile.LDFlags...)

	cc := DefaultCompiler
	if profile.CC != nil {
		cc = *profile.CC
	}
	out := projectName
	if profile.Out != nil {
		out = *profile.Out
	}

	if profile.OptLevel != nil {
		cflags = append(cflags, "-O"+*profile.OptLevel)
	}

	if len(profile.Warn) > 0 {
		cflags = append(cflags, expandWarnings(profile.Warn)...)
	}

	if profile.Debug != nil {
		cflags = append(cflags, expandDebug(*profile.Debug)...)
	}

	if len(profile.Sanitize) > 0 {
		flag := "-fsanitize=" + strings.Join(profile.Sanitize, ",")
		cflags = append(cflags, flag)
		ldflags = append(ldflags, flag)
	}

	if profile.LTO != nil && *profile.LTO {
		cflags = append(cflags, "-flto")
		ldflags = append(ldflags, "-flto")
	}

	return &entities.FlagSet{
		CC:      cc,
		Out:     out,
		CFlags:  cflags,
		LDFlags: ldflags,
	}
}

// expandWarnings maps warning-group tokens to compiler flags, collapsing
// duplicates and sorting for a deterministic flag order.
func expandWarnings(tokens []string) []string {
	set := make(map[string]bool)
	for _, token := range tokens {
		switch token {
		case "all":
			set["-Wall"] = true
		case "extra":
			set["-Wextra"] = true
		case "full":
			set["-Wall"] = true
			set["-Wextra"] = true
		case "error":
			set["-Werror"] = true
		default:
			set["-W"+token] = true
		}
	}

	flags := make([]string, 0, len(set))
	for flag := range set {
		flags = append(flags, flag)
	}
	sort.Strings(flags)
	return flags
}

// expandDebug maps the debug variant to its flags. Levels of 2 and above
// additionally keep frame pointers for usable stack traces.
func expandDebug(debug values.Debug) []string {
	if level, ok := debug.Level(); ok {
		flags := []string{"-g" + strconv.Itoa(level)}
		if level >= 2 {
			flags = append(flags, "-fno-omit-frame-pointer")
		}
		return flags
	}
	if suffix, ok := debug.Suffix(); ok {
		return []string{"-g" + suffix}
	}
	if on, _ := debug.Enabled(); on {
		return []string{"-g"}
	}
	return nil
}
