package storyllms

import (
	"bytes"
	"encoding/json"
	"strings"
)

// PropTypeKind identifies the shape of a prop type descriptor.
type PropTypeKind int

// The known descriptor shapes. Anything the registry emits that does not
// match one of the structured shapes is preserved verbatim as an opaque
// descriptor rather than dropped.
const (
	TypeNone PropTypeKind = iota
	TypePlain
	TypeEnum
	TypeUnion
	TypeArray
	TypeSignature
	TypeNamed
	TypeOpaque
)

// PropType is the normalized form of a docgen type descriptor. The
// registry emits either a plain string or an object keyed by name;
// UnmarshalJSON folds both into this closed set of shapes so that
// rendering is total.
type PropType struct {
	Kind PropTypeKind

	// Name is the descriptor name ("enum", "union", "string", ...).
	Name string

	// Values holds the member list of enum and union descriptors.
	Values []string

	// Elem is the element descriptor of array types.
	Elem *PropType

	// Signature distinguishes function signatures from object signatures.
	Signature string

	// Raw preserves descriptors that match no known shape.
	Raw string
}

// UnmarshalJSON accepts every descriptor shape the registry produces:
// plain strings, named descriptor objects and arbitrary other values.
// It never fails on unknown shapes.
func (t *PropType) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" || string(data) == "{}" {
		*t = PropType{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = PropType{Kind: TypePlain, Name: s}
		return nil
	}

	var desc struct {
		Name  string          `json:"name"`
		Type  string          `json:"type"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &desc); err != nil || desc.Name == "" {
		*t = PropType{Kind: TypeOpaque, Raw: compactJSON(data)}
		return nil
	}

	switch strings.ToLower(desc.Name) {
	case "enum":
		*t = PropType{Kind: TypeEnum, Name: desc.Name, Values: valueList(desc.Value)}
	case "union":
		*t = PropType{Kind: TypeUnion, Name: desc.Name, Values: valueList(desc.Value)}
	case "array", "arrayof":
		*t = PropType{Kind: TypeArray, Name: desc.Name, Elem: elemType(desc.Value)}
	case "signature":
		*t = PropType{Kind: TypeSignature, Name: desc.Name, Signature: signatureKind(desc.Type, desc.Value)}
	default:
		*t = PropType{Kind: TypeNamed, Name: desc.Name}
	}
	return nil
}

// String renders the descriptor as display text. Missing types render as
// an empty string so table cells stay clean.
func (t PropType) String() string {
	switch t.Kind {
	case TypePlain, TypeNamed:
		return t.Name
	case TypeEnum, TypeUnion:
		return strings.Join(t.Values, " ")
	case TypeArray:
		if t.Elem == nil {
			return "[]"
		}
		return t.Elem.String() + "[]"
	case TypeSignature:
		if t.Signature == "function" {
			return "function"
		}
		return t.Name
	case TypeOpaque:
		return t.Raw
	default:
		return ""
	}
}

// valueList extracts display values from an enum or union member list.
// Members appear as bare scalars, wrapped in {value: ...}, or as nested
// descriptors.
func valueList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	values := make([]string, 0, len(items))
	for _, item := range items {
		values = append(values, memberText(item))
	}
	return values
}

// memberText renders a single enum or union member.
func memberText(item json.RawMessage) string {
	trimmed := bytes.TrimSpace(item)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var wrapped struct {
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(item, &wrapped); err == nil && len(wrapped.Value) > 0 {
			return scalarText(wrapped.Value)
		}
		var member PropType
		if err := json.Unmarshal(item, &member); err == nil && member.Kind != TypeNone {
			return member.String()
		}
	}
	return scalarText(item)
}

// elemType parses an array element descriptor, which may itself be any
// descriptor shape.
func elemType(raw json.RawMessage) *PropType {
	if len(raw) == 0 {
		return nil
	}
	var elem PropType
	if err := json.Unmarshal(raw, &elem); err != nil || elem.Kind == TypeNone {
		return nil
	}
	return &elem
}

// signatureKind determines whether a signature descriptor is a function.
// Docgen variants record this either as a type field or as the first
// member value.
func signatureKind(typ string, value json.RawMessage) string {
	if typ != "" {
		return typ
	}
	if vals := valueList(value); len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// scalarText renders a JSON scalar as display text: strings unquoted,
// everything else in its literal JSON form.
func scalarText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return compactJSON(raw)
}

func compactJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
