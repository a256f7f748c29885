// Package setflag provides a flag.Value collecting a set of values
// drawn from a fixed option list, comma-separated or repeated. The
// search command's -kinds flag is its consumer.
package setflag

import (
	"fmt"
	"sort"
	"strings"
)

// New builds a SetFlag accepting only the given options.
func New(options ...string) *SetFlag {
	sf := &SetFlag{
		values:  make(map[string]struct{}, len(options)),
		options: make(map[string]struct{}, len(options)),
	}
	for _, opt := range options {
		sf.options[opt] = struct{}{}
	}
	return sf
}

type SetFlag struct {
	options map[string]struct{}
	values  map[string]struct{}
}

// List returns the collected values, sorted for stable output.
func (sf *SetFlag) List() []string {
	values := make([]string, 0, len(sf.values))
	for k := range sf.values {
		values = append(values, k)
	}
	sort.Strings(values)
	return values
}

func (sf *SetFlag) String() string {
	return strings.Join(sf.List(), ", ")
}

// Set accepts one value or a comma-separated list, rejecting anything
// outside the option list.
func (sf *SetFlag) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		v = strings.TrimSpace(v)
		if _, exists := sf.options[v]; !exists {
			return fmt.Errorf("unsupported value '%s'", v)
		}
		sf.values[v] = struct{}{}
	}
	return nil
}
