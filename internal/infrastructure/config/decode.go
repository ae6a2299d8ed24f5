// Package config provides infrastructure for loading build-profile
// declarations. It handles TOML/YAML parsing, file discovery, and the raw
// value coercions the declaration format allows; everything semantic lives
// in the domain services.
package config

import (
	"fmt"
	"log/slog"

	"github.com/ekm-build/ekm/internal/domain/entities"
	"github.com/ekm-build/ekm/internal/domain/values"
)

// Declarations is one declaration file's worth of raw profiles, decoded and
// coerced but not yet layered or resolved.
type Declarations struct {
	// All is the shared-defaults pseudo-profile, or nil when the file has
	// no "all" block.
	All *entities.Profile
	// Profiles holds the remaining declared profiles by name.
	Profiles map[string]*entities.Profile
}

// decodeProfiles converts raw key/value records into profile entities.
func decodeProfiles(raw map[string]map[string]any) (*Declarations, error) {
	decls := &Declarations{Profiles: make(map[string]*entities.Profile, len(raw))}

	for name, record := range raw {
		profile, err := decodeProfile(name, record)
		if err != nil {
			return nil, err
		}
		if name == entities.ReservedProfileName {
			if profile.HasInherits() {
				return nil, &entities.AttributeValueError{
					Profile:   name,
					Attribute: "inherits",
					Cause:     fmt.Errorf("the shared %q block cannot inherit", name),
				}
			}
			decls.All = profile
			continue
		}
		decls.Profiles[name] = profile
	}

	return decls, nil
}

// decodeProfile applies the declaration-format coercions to one record:
// list attributes accept a bare string, inherits accepts a bare parent name,
// debug accepts int/bool/string, opt-level accepts int or string, lto
// accepts bool or string truthiness.
func decodeProfile(name string, record map[string]any) (*entities.Profile, error) {
	profile := &entities.Profile{}

	for key, raw := range record {
		var err error
		switch key {
		case "warn":
			profile.Warn, err = toStringList(raw)
		case "sanitize":
			profile.Sanitize, err = toStringList(raw)
		case "cflags":
			profile.CFlags, err = toStringList(raw)
		case "ldflags":
			profile.LDFlags, err = toStringList(raw)
		case "cc":
			profile.CC, err = toStringPtr(raw)
		case "out":
			profile.Out, err = toStringPtr(raw)
		case "lto":
			profile.LTO, err = toTruthyPtr(raw)
		case "run":
			var spec values.RunSpec
			if spec, err = values.ParseRunSpec(raw); err == nil {
				profile.Run = &spec
			}
		case "debug":
			var debug values.Debug
			if debug, err = values.ParseDebug(raw); err == nil {
				profile.Debug = &debug
			}
		case "opt-level", "opt_level":
			profile.OptLevel, err = toOptLevelPtr(raw)
		case "inherits":
			profile.Inherits, err = toInherits(raw)
		default:
			slog.Debug("ignoring unknown profile attribute", "profile", name, "attribute", key)
			continue
		}
		if err != nil {
			return nil, &entities.AttributeValueError{Profile: name, Attribute: key, Cause: err}
		}
	}

	return profile, nil
}

// toStringList accepts a bare string as a one-element list.
func toStringList(raw any) ([]string, error) {
	switch v := raw.(type) {
	case string:
		return []string{v}, nil
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("list entries must be strings, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected string or list of strings, got %T", raw)
	}
}

func toStringPtr(raw any) (*string, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("expected string, got %T", raw)
	}
	return &s, nil
}

// toTruthyPtr accepts a bool, or a string whose truthiness enables the flag.
func toTruthyPtr(raw any) (*bool, error) {
	switch v := raw.(type) {
	case bool:
		return &v, nil
	case string:
		enabled := v != ""
		return &enabled, nil
	default:
		return nil, fmt.Errorf("expected bool or string, got %T", raw)
	}
}

// toOptLevelPtr normalizes the optimization level to its flag spelling.
func toOptLevelPtr(raw any) (*string, error) {
	switch v := raw.(type) {
	case string:
		return &v, nil
	case int:
		s := fmt.Sprintf("%d", v)
		return &s, nil
	case int64:
		s := fmt.Sprintf("%d", v)
		return &s, nil
	case uint64:
		s := fmt.Sprintf("%d", v)
		return &s, nil
	case float64:
		if v != float64(int(v)) {
			return nil, fmt.Errorf("opt-level must be an integer or string, got %v", v)
		}
		s := fmt.Sprintf("%d", int(v))
		return &s, nil
	default:
		return nil, fmt.Errorf("expected string or integer, got %T", raw)
	}
}

// toInherits accepts a bare parent name as wildcard inheritance.
func toInherits(raw any) (map[string]string, error) {
	switch v := raw.(type) {
	case string:
		return map[string]string{entities.ReservedProfileName: v}, nil
	case map[string]string:
		out := make(map[string]string, len(v))
		for key, parent := range v {
			out[key] = parent
		}
		return out, nil
	case map[string]any:
		out := make(map[string]string, len(v))
		for key, parent := range v {
			s, ok := parent.(string)
			if !ok {
				return nil, fmt.Errorf("parent of %q must be a profile name, got %T", key, parent)
			}
			out[key] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected profile name or attribute mapping, got %T", raw)
	}
}
