// Package forms implements declarative validator chains over posted
// field values. Each field carries an ordered list of checks; the first
// failing check stops the chain for that field only. Cross-field checks
// run only once every field they reference has passed on its own.
// Checks that consult persisted state (email uniqueness, current
// password) receive an injected read-only repository handle and perform
// exactly one lookup per Validate call.
package forms

import "context"

// Values holds the raw field values of one submitted form.
type Values map[string]string

// Check inspects a single field value and returns a user-facing message
// on failure, or the empty string on success.
type Check func(ctx context.Context, value string) string

// crossCheck is a rule spanning two fields. It is skipped unless both
// referenced fields passed their own chains.
type crossCheck struct {
	field string
	other string
	test  func(ctx context.Context, value, otherValue string) string
}

type field struct {
	name   string
	value  string
	secret bool
	checks []Check
}

// Form is a named bundle of fields plus their validation state.
type Form struct {
	Name string

	fields  []*field
	byName  map[string]*field
	crosses []crossCheck

	// Errors maps field name to the first failing check's message.
	// Populated by Validate.
	Errors map[string]string
}

func New(name string) *Form {
	return &Form{
		Name:   name,
		byName: make(map[string]*field),
		Errors: make(map[string]string),
	}
}

// Field declares a field with its ordered checks.
func (f *Form) Field(name, value string, checks ...Check) *Form {
	return f.add(name, value, false, checks)
}

// SecretField declares a field whose value is never echoed back in
// redisplay payloads (passwords).
func (f *Form) SecretField(name, value string, checks ...Check) *Form {
	return f.add(name, value, true, checks)
}

func (f *Form) add(name, value string, secret bool, checks []Check) *Form {
	fl := &field{name: name, value: value, secret: secret, checks: checks}
	f.fields = append(f.fields, fl)
	f.byName[name] = fl
	return f
}

// EqualTo declares a cross-field rule: field must equal other. It only
// runs when both fields passed their individual chains.
func (f *Form) EqualTo(fieldName, otherName, message string) *Form {
	f.crosses = append(f.crosses, crossCheck{
		field: fieldName,
		other: otherName,
		test: func(_ context.Context, value, otherValue string) string {
			if value != otherValue {
				return message
			}
			return ""
		},
	})
	return f
}

// Get returns the raw value of a field ("" if not declared).
func (f *Form) Get(name string) string {
	if fl, ok := f.byName[name]; ok {
		return fl.value
	}
	return ""
}

// Values returns the non-secret field values for redisplay.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, fl := range f.fields {
		if fl.secret {
			continue
		}
		out[fl.name] = fl.value
	}
	return out
}

// Validate runs every field chain and then the cross-field rules. It is
// a pure predicate over the input and the injected stores: safe to call
// repeatedly, no mutation, no caching between calls.
func (f *Form) Validate(ctx context.Context) bool {
	f.Errors = make(map[string]string)
	for _, fl := range f.fields {
		for _, check := range fl.checks {
			if msg := check(ctx, fl.value); msg != "" {
				f.Errors[fl.name] = msg
				break
			}
		}
	}
	for _, cc := range f.crosses {
		if _, bad := f.Errors[cc.field]; bad {
			continue
		}
		if _, bad := f.Errors[cc.other]; bad {
			continue
		}
		if msg := cc.test(ctx, f.Get(cc.field), f.Get(cc.other)); msg != "" {
			f.Errors[cc.field] = msg
		}
	}
	return len(f.Errors) == 0
}
