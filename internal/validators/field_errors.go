package validators

import (
	"errors"
	"slices"
	"strings"
)

// AdditionalFieldsKey is the reserved FieldErrors key under which all
// complaints about unexpected (undeclared) fields are aggregated.
const AdditionalFieldsKey = "additionalFields"

// FieldErrors maps a field path (e.g. "name", "address.city") to the list of
// violation messages found for it. It implements error so a Schema can return
// it directly; callers retrieve it with AsFieldErrors.
type FieldErrors map[string][]string

// Add appends message to the violations of field.
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// AddUnknown records messages about undeclared fields under
// AdditionalFieldsKey.
func (fe FieldErrors) AddUnknown(messages ...string) {
	fe[AdditionalFieldsKey] = append(fe[AdditionalFieldsKey], messages...)
}

// Len returns the number of fields with at least one violation.
func (fe FieldErrors) Len() int {
	return len(fe)
}

// Error renders the violations sorted by field path.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	slices.Sort(fields)

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f)
		b.WriteString(": ")
		b.WriteString(strings.Join(fe[f], ", "))
	}
	return b.String()
}

// AsFieldErrors reports whether err is (or wraps) FieldErrors and returns it.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
