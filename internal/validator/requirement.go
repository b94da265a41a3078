package validator

// Requirement classifies how a missing key affects validation.
type Requirement int

const (
	// Required keys fail validation when absent.
	Required Requirement = iota
	// Optional keys only produce a warning when absent.
	Optional
)

func (r Requirement) String() string {
	switch r {
	case Required:
		return "required"
	case Optional:
		return "optional"
	default:
		return "unknown"
	}
}

// FieldRequirement is a key name plus its classification.
type FieldRequirement struct {
	Key         string
	Requirement Requirement
}

// RequiredFields builds Required requirements for keys, in order.
func RequiredFields(keys ...string) []FieldRequirement {
	return fields(Required, keys)
}

// OptionalFields builds Optional requirements for keys, in order.
func OptionalFields(keys ...string) []FieldRequirement {
	return fields(Optional, keys)
}

func fields(req Requirement, keys []string) []FieldRequirement {
	out := make([]FieldRequirement, 0, len(keys))
	for _, k := range keys {
		out = append(out, FieldRequirement{Key: k, Requirement: req})
	}
	return out
}

// Checklist is a list of key requirements checked against one mapping.
type Checklist struct {
	// Kind names what the keys are ("field", "script", ...). Used in messages.
	Kind string
	// Parent is the key of the enclosing mapping, empty for top level.
	Parent string
	// Fields are checked in order.
	Fields []FieldRequirement
}

// Check records one issue per requirement in r: a pass when the key is
// present, an error when a required key is missing, and a warning when an
// optional key is missing. A key whose value is null counts as missing.
// Every requirement is checked even after a failure.
func (c Checklist) Check(r *Result, m map[string]any) {
	for _, f := range c.Fields {
		field := f.Key
		if c.Parent != "" {
			field = c.Parent + "." + f.Key
		}

		if v, ok := m[f.Key]; ok && v != nil {
			r.AddPass(field, c.Kind+" present")
			continue
		}

		msg := "missing " + f.Requirement.String() + " " + c.Kind
		if f.Requirement == Required {
			r.AddError(field, msg, nil)
		} else {
			r.AddWarning(field, msg, nil)
		}
	}
}
