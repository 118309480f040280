package apiaccess

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Default maximum lengths, in characters.
const (
	DefaultClientNameMax  = 255
	DefaultAPIClientIDMax = 255
	DefaultDescriptionMax = 21844
)

// Limits holds the configurable maximum field lengths, in characters.
type Limits struct {
	ClientNameMax  int
	APIClientIDMax int
	DescriptionMax int
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{
		ClientNameMax:  DefaultClientNameMax,
		APIClientIDMax: DefaultAPIClientIDMax,
		DescriptionMax: DefaultDescriptionMax,
	}
}

// withDefaults replaces non-positive limits with their defaults.
func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.ClientNameMax <= 0 {
		l.ClientNameMax = d.ClientNameMax
	}
	if l.APIClientIDMax <= 0 {
		l.APIClientIDMax = d.APIClientIDMax
	}
	if l.DescriptionMax <= 0 {
		l.DescriptionMax = d.DescriptionMax
	}
	return l
}

// Violation is a single failed field constraint.
type Violation struct {
	Field Field
	Kind  Kind
}

// Violations is the result of a validation; empty means valid. Entries are
// ordered by FieldOrder with at most one entry per field.
type Violations []Violation

// Err returns the ConstraintError for the first violation, or nil.
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	return NewConstraintError(v[0].Field, v[0].Kind)
}

// Validator checks API access field values against Limits.
type Validator struct {
	limits Limits
}

// NewValidator creates a Validator. Non-positive limits fall back to defaults.
func NewValidator(limits Limits) Validator {
	return Validator{limits: limits.withDefaults()}
}

// Limits returns the effective limits.
func (v Validator) Limits() Limits {
	return v.limits
}

// ValidateNew checks a complete set of values for a new API access. Absent
// fields are reported as invalid.
func (v Validator) ValidateNew(values Patch) Violations {
	return v.validate(values, true)
}

// ValidatePatch checks only the fields present in the patch.
func (v Validator) ValidatePatch(p Patch) Violations {
	return v.validate(p, false)
}

func (v Validator) validate(p Patch, required bool) Violations {
	var out Violations
	for _, f := range FieldOrder {
		if !p.Has(f) {
			if required {
				out = append(out, Violation{Field: f, Kind: KindInvalid})
			}
			continue
		}
		if kind, failed := v.check(f, p); failed {
			out = append(out, Violation{Field: f, Kind: kind})
		}
	}
	return out
}

// check applies the rules for one present field in precedence order:
// emptiness, then length, then format.
func (v Validator) check(f Field, p Patch) (Kind, bool) {
	switch f {
	case FieldClientName:
		name, _ := p.ClientName.Get()
		return checkIdentifier(name, v.limits.ClientNameMax)
	case FieldAPIClientID:
		id, _ := p.APIClientID.Get()
		return checkIdentifier(id, v.limits.APIClientIDMax)
	case FieldDescription:
		desc, _ := p.Description.Get()
		return checkDescription(desc, v.limits.DescriptionMax)
	default:
		// A present enabled flag is always a valid bool.
		return 0, false
	}
}

func checkIdentifier(s string, maxLen int) (Kind, bool) {
	if strings.TrimSpace(s) == "" {
		return KindInvalid, true
	}
	if utf8.RuneCountInString(s) > maxLen {
		return KindTooLarge, true
	}
	if !utf8.ValidString(s) {
		return KindInvalid, true
	}
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return KindInvalid, true
		}
	}
	return 0, false
}

func checkDescription(s string, maxLen int) (Kind, bool) {
	if utf8.RuneCountInString(s) > maxLen {
		return KindTooLarge, true
	}
	if !utf8.ValidString(s) {
		return KindInvalid, true
	}
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return KindInvalid, true
		}
	}
	return 0, false
}
