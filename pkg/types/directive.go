package types

import "strings"

// Directive is the action a record's value name asks for. Group Policy uses
// "**"-prefixed names to delete rather than set.
type Directive int

const (
	DirectiveSet             Directive = iota // plain assignment
	DirectiveDeleteValue                      // **del.<name>
	DirectiveDeleteAllValues                  // **delvals.
	DirectiveDeleteValues                     // **deletevalues, names listed in the data
	DirectiveDeleteKeys                       // **deletekeys, subkeys listed in the data
	DirectiveSecureKey                        // **securekey
	DirectiveSoft                             // **soft.<name>, set only if absent
)

var directiveNames = [...]string{
	DirectiveSet:             "set",
	DirectiveDeleteValue:     "delete-value",
	DirectiveDeleteAllValues: "delete-all-values",
	DirectiveDeleteValues:    "delete-values",
	DirectiveDeleteKeys:      "delete-keys",
	DirectiveSecureKey:       "secure-key",
	DirectiveSoft:            "soft-set",
}

func (d Directive) String() string {
	if d >= 0 && int(d) < len(directiveNames) {
		return directiveNames[d]
	}
	return "unknown"
}

// Directive classifies the record by its value name. For **del. and **soft.
// the returned target is the value the directive applies to.
func (p Policy) Directive() (Directive, string) {
	name := p.ValueName()
	if !strings.HasPrefix(name, "**") {
		return DirectiveSet, name
	}
	lower := strings.ToLower(name)
	switch {
	case strings.HasPrefix(lower, "**delvals."):
		return DirectiveDeleteAllValues, ""
	case strings.HasPrefix(lower, "**del."):
		return DirectiveDeleteValue, name[len("**del."):]
	case lower == "**deletevalues":
		return DirectiveDeleteValues, ""
	case lower == "**deletekeys":
		return DirectiveDeleteKeys, ""
	case lower == "**securekey":
		return DirectiveSecureKey, ""
	case strings.HasPrefix(lower, "**soft."):
		return DirectiveSoft, name[len("**soft."):]
	}
	return DirectiveSet, name
}
