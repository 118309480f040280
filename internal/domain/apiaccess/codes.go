package apiaccess

import "fmt"

// Field identifies an API access attribute that can fail a constraint.
type Field int

const (
	FieldClientName Field = iota + 1
	FieldAPIClientID
	FieldEnabled
	FieldDescription
)

// FieldOrder lists every field in the order violations are reported.
var FieldOrder = [...]Field{FieldClientName, FieldAPIClientID, FieldEnabled, FieldDescription}

// String returns the external field name used in messages and scenarios.
func (f Field) String() string {
	switch f {
	case FieldClientName:
		return "clientName"
	case FieldAPIClientID:
		return "apiClientId"
	case FieldEnabled:
		return "enabled"
	case FieldDescription:
		return "description"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// ParseField resolves an external field name to its Field.
func ParseField(name string) (Field, error) {
	for _, f := range FieldOrder {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown api access field %q", name)
}

// Kind classifies why a field failed.
type Kind int

const (
	KindInvalid Kind = iota + 1
	KindTooLarge
	KindAlreadyUsed
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindTooLarge:
		return "too_large"
	case KindAlreadyUsed:
		return "already_used"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Code is the stable numeric identifier of a (field, kind) failure. Values are
// part of the external contract and must never be renumbered.
type Code int

const (
	InvalidClientID       Code = 1
	ClientIDTooLarge      Code = 2
	InvalidClientName     Code = 3
	ClientNameTooLarge    Code = 4
	InvalidEnabled        Code = 5
	InvalidDescription    Code = 6
	DescriptionTooLarge   Code = 7
	ClientIDAlreadyUsed   Code = 8
	ClientNameAlreadyUsed Code = 9
)

// String returns the symbolic constant name of the code.
func (c Code) String() string {
	switch c {
	case InvalidClientID:
		return "INVALID_CLIENT_ID"
	case ClientIDTooLarge:
		return "CLIENT_ID_TOO_LARGE"
	case InvalidClientName:
		return "INVALID_CLIENT_NAME"
	case ClientNameTooLarge:
		return "CLIENT_NAME_TOO_LARGE"
	case InvalidEnabled:
		return "INVALID_ENABLED"
	case InvalidDescription:
		return "INVALID_DESCRIPTION"
	case DescriptionTooLarge:
		return "DESCRIPTION_TOO_LARGE"
	case ClientIDAlreadyUsed:
		return "CLIENT_ID_ALREADY_USED"
	case ClientNameAlreadyUsed:
		return "CLIENT_NAME_ALREADY_USED"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// CodeFor returns the code for a (field, kind) pair. The second result is
// false for pairs that cannot occur, such as a too-large enabled flag.
func CodeFor(f Field, k Kind) (Code, bool) {
	switch f {
	case FieldClientName:
		switch k {
		case KindInvalid:
			return InvalidClientName, true
		case KindTooLarge:
			return ClientNameTooLarge, true
		case KindAlreadyUsed:
			return ClientNameAlreadyUsed, true
		}
	case FieldAPIClientID:
		switch k {
		case KindInvalid:
			return InvalidClientID, true
		case KindTooLarge:
			return ClientIDTooLarge, true
		case KindAlreadyUsed:
			return ClientIDAlreadyUsed, true
		}
	case FieldEnabled:
		if k == KindInvalid {
			return InvalidEnabled, true
		}
	case FieldDescription:
		switch k {
		case KindInvalid:
			return InvalidDescription, true
		case KindTooLarge:
			return DescriptionTooLarge, true
		}
	}
	return 0, false
}
