package resource

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind is the parse type of an editable field.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	// KindStrings parses a comma-separated list, e.g. post tags.
	KindStrings
)

// Field describes one editable field of a record: its wire name, how to
// parse user input for it, and whether a create requires it.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Help     string
}

// ParseValue converts user input to the field's wire value.
func (f Field) ParseValue(raw string) (any, error) {
	switch f.Kind {
	case KindString:
		return raw, nil
	case KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("resource: field %s: %q is not an integer", f.Name, raw)
		}
		return n, nil
	case KindFloat:
		x, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("resource: field %s: %q is not a number", f.Name, raw)
		}
		return x, nil
	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("resource: field %s: %q is not true/false", f.Name, raw)
		}
		return b, nil
	case KindStrings:
		parts := strings.Split(raw, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("resource: field %s: unknown kind", f.Name)
	}
}

// findField returns the spec for name, or false for fields that are not
// editable (unknown names, server-owned fields like id).
func findField(fields []Field, name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ParsePatch converts user-supplied name=value strings into a partial
// update body. Only known fields are accepted; nothing is required.
func ParsePatch(fields []Field, in map[string]string) (map[string]any, error) {
	patch := make(map[string]any, len(in))
	for name, raw := range in {
		f, ok := findField(fields, name)
		if !ok {
			return nil, fmt.Errorf("resource: unknown field %q", name)
		}
		v, err := f.ParseValue(raw)
		if err != nil {
			return nil, err
		}
		patch[name] = v
	}
	if len(patch) == 0 {
		return nil, fmt.Errorf("resource: empty update")
	}
	return patch, nil
}

// parseDraft converts name=value strings into a draft record of type T by
// parsing each field and decoding the resulting wire object. Required
// fields must all be present.
func parseDraft[T any](fields []Field, in map[string]string) (T, error) {
	var zero T
	vals := make(map[string]any, len(in))
	for name, raw := range in {
		f, ok := findField(fields, name)
		if !ok {
			return zero, fmt.Errorf("resource: unknown field %q", name)
		}
		v, err := f.ParseValue(raw)
		if err != nil {
			return zero, err
		}
		vals[name] = v
	}
	for _, f := range fields {
		if f.Required {
			if _, ok := vals[f.Name]; !ok {
				return zero, fmt.Errorf("resource: field %s is required", f.Name)
			}
		}
	}

	blob, err := json.Marshal(vals)
	if err != nil {
		return zero, fmt.Errorf("resource: encoding draft: %w", err)
	}
	var draft T
	if err := json.Unmarshal(blob, &draft); err != nil {
		return zero, fmt.Errorf("resource: decoding draft: %w", err)
	}
	return draft, nil
}
