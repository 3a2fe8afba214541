package simpl

import "strings"

// Role groups kinds into the three sections of a module.
type Role int

const (
	RoleInput Role = iota
	RoleOutput
	RoleParameter
)

// Label returns the section heading used in menus.
func (r Role) Label() string {
	switch r {
	case RoleInput:
		return "INPUTS"
	case RoleOutput:
		return "OUTPUTS"
	case RoleParameter:
		return "PARAMETERS"
	default:
		return "UNKNOWN"
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return strings.ToLower(r.Label())
}

// Kind is the declared category of a module item.
type Kind int

const (
	DigitalInput Kind = iota
	AnalogInput
	StringInput
	DigitalOutput
	AnalogOutput
	StringOutput
	IntegerParameter
	StringParameter
)

// Fixed naming tokens.
const (
	SuffixDigital   = "_b"
	SuffixAnalog    = "_n"
	SuffixString    = "_s"
	PrefixParameter = "p_"

	DefaultStringSize    = "255"
	DefaultParameterSize = "50"
)

type kindSpec struct {
	name        string
	role        Role
	selector    string
	word        string
	keyword     string
	prefix      string
	suffix      string
	array       bool
	defaultSize string
	// bracketSkip treats a raw name ending in "]" as an array declaration
	// already written by the user: no suffix, no size.
	bracketSkip bool
}

var kindTable = [...]kindSpec{
	DigitalInput: {
		name: "digital_input", role: RoleInput, selector: "d", word: "digital",
		keyword: "DIGITAL_INPUT", suffix: SuffixDigital,
	},
	AnalogInput: {
		name: "analog_input", role: RoleInput, selector: "a", word: "analog",
		keyword: "ANALOG_INPUT", suffix: SuffixAnalog,
	},
	StringInput: {
		name: "string_input", role: RoleInput, selector: "s", word: "string",
		keyword: "STRING_INPUT", suffix: SuffixString,
		array: true, defaultSize: DefaultStringSize, bracketSkip: true,
	},
	DigitalOutput: {
		name: "digital_output", role: RoleOutput, selector: "d", word: "digital",
		keyword: "DIGITAL_OUTPUT", suffix: SuffixDigital,
	},
	AnalogOutput: {
		name: "analog_output", role: RoleOutput, selector: "a", word: "analog",
		keyword: "ANALOG_OUTPUT", suffix: SuffixAnalog,
	},
	StringOutput: {
		name: "string_output", role: RoleOutput, selector: "s", word: "string",
		keyword: "STRING_OUTPUT", suffix: SuffixString,
		array: true, defaultSize: DefaultStringSize, bracketSkip: true,
	},
	IntegerParameter: {
		name: "integer_parameter", role: RoleParameter, selector: "i", word: "integer",
		keyword: "INTEGER_PARAMETER", prefix: PrefixParameter,
	},
	StringParameter: {
		name: "string_parameter", role: RoleParameter, selector: "s", word: "string",
		keyword: "STRING_PARAMETER", prefix: PrefixParameter, suffix: SuffixString,
		array: true, defaultSize: DefaultParameterSize,
	},
}

func (k Kind) spec() kindSpec {
	if !k.Valid() {
		return kindSpec{name: "unknown"}
	}
	return kindTable[k]
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(kindTable)
}

// String implements fmt.Stringer.
func (k Kind) String() string { return k.spec().name }

// Role reports the section the kind belongs to.
func (k Kind) Role() Role { return k.spec().role }

// Selector returns the single-character menu tag for the kind.
func (k Kind) Selector() string { return k.spec().selector }

// Word returns the role-independent name of the kind ("digital", "integer").
func (k Kind) Word() string { return k.spec().word }

// Keyword returns the SIMPL+ declaration keyword.
func (k Kind) Keyword() string { return k.spec().keyword }

// Prefix returns the token prepended to identifiers, if any.
func (k Kind) Prefix() string { return k.spec().prefix }

// Suffix returns the token appended to identifiers, if any.
func (k Kind) Suffix() string { return k.spec().suffix }

// IsArray reports whether declarations of this kind carry an array size.
func (k Kind) IsArray() bool { return k.spec().array }

// DefaultSize returns the array size used when none is supplied.
func (k Kind) DefaultSize() string { return k.spec().defaultSize }

// Kinds returns every kind in table order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindTable))
	for i := range kindTable {
		out = append(out, Kind(i))
	}
	return out
}

// KindsFor returns the kinds offered in the menu of a role, in menu order.
func KindsFor(role Role) []Kind {
	var out []Kind
	for _, kind := range Kinds() {
		if kind.Role() == role {
			out = append(out, kind)
		}
	}
	return out
}

// LookupSelector maps a menu tag to a kind within a role. Matching is
// case-insensitive and ignores surrounding whitespace.
func LookupSelector(role Role, selector string) (Kind, bool) {
	selector = strings.ToLower(strings.TrimSpace(selector))
	if selector == "" {
		return 0, false
	}
	for _, kind := range KindsFor(role) {
		if kind.Selector() == selector {
			return kind, true
		}
	}
	return 0, false
}

// ParseKind accepts either a menu tag ("d") or a kind word ("digital") and
// resolves it within a role.
func ParseKind(role Role, text string) (Kind, bool) {
	if kind, ok := LookupSelector(role, text); ok {
		return kind, true
	}
	text = strings.ToLower(strings.TrimSpace(text))
	for _, kind := range KindsFor(role) {
		if kind.Word() == text || kind.String() == text {
			return kind, true
		}
	}
	return 0, false
}
