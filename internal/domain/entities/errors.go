package entities

import (
	"fmt"
	"strings"
)

// UnknownProfileError indicates selection of a profile name nobody declared.
type UnknownProfileError struct {
	Name string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("unknown profile %q", e.Name)
}

// UnknownParentError indicates an inherits entry naming a profile that is
// not declared anywhere.
type UnknownParentError struct {
	Profile   string
	Attribute string
	Parent    string
}

func (e *UnknownParentError) Error() string {
	return fmt.Sprintf(
		"profile %q inherits %s from undeclared profile %q",
		e.Profile, e.Attribute, e.Parent,
	)
}

// InheritanceCycleError indicates a cycle in the inheritance graph.
// Profiles lists every profile implicated in the cycle.
type InheritanceCycleError struct {
	Profiles []string
}

func (e *InheritanceCycleError) Error() string {
	return fmt.Sprintf(
		"circular inheritance among profiles: %s",
		strings.Join(e.Profiles, ", "),
	)
}

// AttributeValueError indicates a declared attribute value the resolver
// cannot interpret.
type AttributeValueError struct {
	Profile   string
	Attribute string
	Cause     error
}

func (e *AttributeValueError) Error() string {
	return fmt.Sprintf(
		"profile %q: invalid %s value: %v",
		e.Profile, e.Attribute, e.Cause,
	)
}

func (e *AttributeValueError) Unwrap() error {
	return e.Cause
}
