package dumpr

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile is a declarative rule set for callers that configure dumps from
// files rather than code, scrubbing fields out of debug output without
// referencing the Go types at compile time:
//
//	exclude_types: [Secret]
//	exclude_fields: [Person.Age]
//	redact_fields: [Account.Token]
//	trim_strings: 64
//	max_depth: 8
//
// Type entries match the bare type name the output prints; field entries
// use Owner.Name form. Name matches apply to declared member types, the
// same way typed exclusions do. Redacted fields render as a fixed mask and
// win over any formatter, since a profile's whole point is to scrub.
type Profile struct {
	ExcludeTypes  []string `yaml:"exclude_types"`
	ExcludeFields []string `yaml:"exclude_fields"`
	RedactFields  []string `yaml:"redact_fields"`
	TrimStrings   int      `yaml:"trim_strings"`
	MaxDepth      int      `yaml:"max_depth"`
}

// ParseProfile decodes and validates a YAML profile.
func ParseProfile(data []byte) (Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	if err := p.validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// validate rejects entries that could never match anything: field entries
// must be Owner.Name with both halves present, and counters must not be
// negative.
func (p Profile) validate() error {
	for _, f := range append(append([]string{}, p.ExcludeFields...), p.RedactFields...) {
		owner, name, ok := strings.Cut(f, ".")
		if !ok || owner == "" || name == "" {
			return fmt.Errorf("%w: field entry %q is not Owner.Name", ErrInvalidProfile, f)
		}
	}
	for _, t := range p.ExcludeTypes {
		if t == "" {
			return fmt.Errorf("%w: empty type entry", ErrInvalidProfile)
		}
	}
	if p.TrimStrings < 0 {
		return fmt.Errorf("%w: negative trim_strings %d", ErrInvalidProfile, p.TrimStrings)
	}
	if p.MaxDepth < 0 {
		return fmt.Errorf("%w: negative max_depth %d", ErrInvalidProfile, p.MaxDepth)
	}
	return nil
}

// WithProfile applies a profile. Name-based exclusions accumulate
// alongside typed ones; trim_strings and max_depth assign directly, the
// way [TrimStrings] and [MaxDepth] do.
func WithProfile(p Profile) Option {
	return func(c *config) error {
		if err := p.validate(); err != nil {
			return err
		}
		for _, t := range p.ExcludeTypes {
			c.excludeTypeNames[t] = struct{}{}
		}
		for _, f := range p.ExcludeFields {
			c.excludeFieldNames[f] = struct{}{}
		}
		for _, f := range p.RedactFields {
			c.redactFields[f] = struct{}{}
		}
		if p.TrimStrings > 0 {
			c.trimStrings = p.TrimStrings
		}
		if p.MaxDepth > 0 {
			c.maxDepth = p.MaxDepth
		}
		return nil
	}
}

// WithProfileYAML parses and applies a YAML profile in one step.
func WithProfileYAML(data []byte) Option {
	return func(c *config) error {
		p, err := ParseProfile(data)
		if err != nil {
			return err
		}
		return WithProfile(p)(c)
	}
}
