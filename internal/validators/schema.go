package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Schema is a Validator for JSON-like documents (objects decoded into
// map[string]any). It is strict: values are never coerced, every declared
// field is checked, and all violations are collected into FieldErrors
// instead of stopping at the first one. Undeclared keys are reported under
// AdditionalFieldsKey unless AllowUnknown was called.
//
// A Schema is built once at startup and is safe for concurrent use afterwards.
type Schema struct {
	fields       []schemaField
	allowUnknown bool
}

type schemaField struct {
	name   string
	rules  []Rule
	nested *Schema
}

// NewSchema returns an empty strict schema.
func NewSchema() *Schema {
	return &Schema{}
}

// Field declares a field checked by rules, in order.
func (s *Schema) Field(name string, rules ...Rule) *Schema {
	s.fields = append(s.fields, schemaField{name: name, rules: rules})
	return s
}

// Object declares a nested object field validated by nested. rules apply to
// the field value itself (typically Required). Nested violations are keyed
// by dotted path, e.g. "address.city".
func (s *Schema) Object(name string, nested *Schema, rules ...Rule) *Schema {
	s.fields = append(s.fields, schemaField{name: name, rules: rules, nested: nested})
	return s
}

// AllowUnknown disables the undeclared-keys check.
func (s *Schema) AllowUnknown() *Schema {
	s.allowUnknown = true
	return s
}

// Validate checks obj against the schema.
//
// Supported inputs:
//   - map[string]any;
//   - url.Values (single values become strings, repeated keys become arrays);
//   - []byte / json.RawMessage holding a JSON object (empty input is an
//     empty object).
//
// Optional fields restrict validation to the named subset; the undeclared-keys
// check is skipped in that case. Naming a field the schema does not declare
// returns ErrUnknownField.
//
// Returns nil, FieldErrors, ErrUnsupportedType or a wrapped
// ErrMalformedDocument.
func (s *Schema) Validate(ctx context.Context, obj any, fields ...string) error {
	doc, err := toDocument(obj)
	if err != nil {
		return err
	}

	selected, err := s.selectFields(fields)
	if err != nil {
		return err
	}

	errs := FieldErrors{}
	s.validate("", doc, selected, len(fields) == 0, errs)
	if errs.Len() > 0 {
		return errs
	}
	return nil
}

func (s *Schema) selectFields(names []string) ([]schemaField, error) {
	if len(names) == 0 {
		return s.fields, nil
	}

	selected := make([]schemaField, 0, len(names))
	for _, name := range names {
		idx := slices.IndexFunc(s.fields, func(f schemaField) bool { return f.name == name })
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		selected = append(selected, s.fields[idx])
	}
	return selected, nil
}

func (s *Schema) validate(prefix string, doc map[string]any, fields []schemaField, checkUnknown bool, errs FieldErrors) {
	for _, f := range fields {
		path := joinPath(prefix, f.name)
		value, present := doc[f.name]

		for _, rule := range f.rules {
			if err := rule(path, value, present); err != nil {
				errs.Add(path, err.Error())
			}
		}

		if f.nested == nil || !present || value == nil {
			continue
		}
		nestedDoc, ok := value.(map[string]any)
		if !ok {
			errs.Add(path, fmt.Sprintf("%s must be a `object` type", path))
			continue
		}
		f.nested.validate(path, nestedDoc, f.nested.fields, true, errs)
	}

	if !checkUnknown || s.allowUnknown {
		return
	}

	var unknown []string
	for key := range doc {
		if !slices.ContainsFunc(s.fields, func(f schemaField) bool { return f.name == key }) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return
	}
	slices.Sort(unknown)

	label := prefix
	if label == "" {
		label = "this"
	}
	errs.AddUnknown(fmt.Sprintf("%s field has unspecified keys: %s", label, strings.Join(unknown, ", ")))
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func toDocument(obj any) (map[string]any, error) {
	switch v := obj.(type) {
	case map[string]any:
		return v, nil
	case url.Values:
		return valuesToDocument(v), nil
	case json.RawMessage:
		return decodeDocument(v)
	case []byte:
		return decodeDocument(v)
	case nil:
		return map[string]any{}, nil
	default:
		return nil, ErrUnsupportedType
	}
}

func decodeDocument(raw []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	if doc == nil {
		return nil, ErrMalformedDocument
	}
	return doc, nil
}

func valuesToDocument(values url.Values) map[string]any {
	doc := make(map[string]any, len(values))
	for key, vals := range values {
		switch len(vals) {
		case 0:
			continue
		case 1:
			doc[key] = vals[0]
		default:
			items := make([]any, len(vals))
			for i, v := range vals {
				items[i] = v
			}
			doc[key] = items
		}
	}
	return doc
}

// Document converts the inputs accepted by Schema.Validate into the
// map[string]any form the rules see.
func Document(obj any) (map[string]any, error) {
	return toDocument(obj)
}
