package values

import "fmt"

// RunSpec represents a profile's run-command template. A spec is either a
// single shell command template or a literal argv of argument templates.
// Templates may contain the placeholders {bin} and {args}.
type RunSpec struct {
	shell string
	argv  []string
}

// ShellRun creates a RunSpec holding a shell command template.
func ShellRun(command string) RunSpec {
	return RunSpec{shell: command}
}

// ArgvRun creates a RunSpec holding literal argument templates.
func ArgvRun(argv []string) RunSpec {
	copied := make([]string, len(argv))
	copy(copied, argv)
	return RunSpec{argv: copied}
}

// Shell returns the shell template and whether this spec is a shell command.
func (r RunSpec) Shell() (string, bool) {
	return r.shell, r.argv == nil
}

// Argv returns the argument templates and whether this spec is a literal argv.
func (r RunSpec) Argv() ([]string, bool) {
	if r.argv == nil {
		return nil, false
	}
	copied := make([]string, len(r.argv))
	copy(copied, r.argv)
	return copied, true
}

// ParseRunSpec converts a raw declaration value into a RunSpec. A string is
// a shell template; a non-empty list of strings is a literal argv.
func ParseRunSpec(raw any) (RunSpec, error) {
	switch v := raw.(type) {
	case string:
		return ShellRun(v), nil
	case []string:
		if len(v) == 0 {
			return RunSpec{}, fmt.Errorf("run argv must not be empty")
		}
		return ArgvRun(v), nil
	case []any:
		if len(v) == 0 {
			return RunSpec{}, fmt.Errorf("run argv must not be empty")
		}
		argv := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return RunSpec{}, fmt.Errorf("run argv entries must be strings, got %T", item)
			}
			argv = append(argv, s)
		}
		return ArgvRun(argv), nil
	default:
		return RunSpec{}, fmt.Errorf("unsupported run value of type %T", raw)
	}
}
