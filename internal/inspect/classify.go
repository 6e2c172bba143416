package inspect

import (
	"slices"
	"strings"

	"field-inspector/internal/analyze"
	"field-inspector/internal/common"
)

// FieldClass tells the printer what to list below a field.
type FieldClass int

const (
	ClassPrimitive FieldClass = iota // scalar, nothing listed
	ClassEnum                        // enum constants listed
	ClassObject                      // discoverable subtypes listed
)

// String returns a human-readable representation of the FieldClass.
func (c FieldClass) String() string {
	switch c {
	case ClassPrimitive:
		return "primitive"
	case ClassEnum:
		return "enum"
	case ClassObject:
		return "object"
	default:
		return common.UnknownStr
	}
}

// ClassOf classifies a declared field type.
func ClassOf(t *analyze.TypeInfo) FieldClass {
	switch {
	case t.IsEnum():
		return ClassEnum
	case t.IsPrimitive():
		return ClassPrimitive
	case t.Kind == analyze.TypeKindAlias && t.Underlying != nil && t.Underlying.IsPrimitive():
		// Named scalars such as `type Meters float64`
		return ClassPrimitive
	default:
		return ClassObject
	}
}

// Field is an editable field of a participant.
type Field struct {
	Name  string
	Type  *analyze.TypeInfo
	Class FieldClass
}

// Group is a named bucket of editable fields, in declaration order.
type Group struct {
	Name   string
	Fields []Field
}

// IsDefault reports whether g is the unlabelled group.
func (g Group) IsDefault() bool {
	return g.Name == DefaultGroup
}

// Classifier buckets the editable fields of a participant by group label.
type Classifier struct {
	tagKey string
}

// NewClassifier creates a Classifier reading markers from tagKey.
func NewClassifier(tagKey string) *Classifier {
	if tagKey == "" {
		tagKey = DefaultTagKey
	}

	return &Classifier{tagKey: tagKey}
}

// Classify returns the groups of t's editable fields. Only fields declared
// on t are considered; embedded fields are the derivation links and are
// skipped. The default group comes first, the others follow sorted by label.
// Types without fields classify to no groups.
func (c *Classifier) Classify(t *analyze.TypeInfo) ([]Group, error) {
	var groups []Group
	index := make(map[string]int)

	for i := range t.Fields {
		f := &t.Fields[i]
		if !f.Exported || f.Embedded {
			continue
		}

		marker, ok, err := ParseMarker(f.Tag, c.tagKey)
		if err != nil {
			return nil, NewFault(t.ID.String(), f.Name, err.Error())
		}
		if !ok {
			continue
		}

		target := f.Type.Target()
		if target == nil || target.Kind == analyze.TypeKindUnresolved {
			return nil, NewFault(t.ID.String(), f.Name, "unresolved field type")
		}

		pos, seen := index[marker.Group]
		if !seen {
			pos = len(groups)
			index[marker.Group] = pos
			groups = append(groups, Group{Name: marker.Group})
		}

		groups[pos].Fields = append(groups[pos].Fields, Field{
			Name:  f.Name,
			Type:  f.Type,
			Class: ClassOf(target),
		})
	}

	slices.SortStableFunc(groups, compareGroups)

	return groups, nil
}

// compareGroups puts DefaultGroup first and orders the rest by label.
func compareGroups(a, b Group) int {
	switch {
	case a.IsDefault() && b.IsDefault():
		return 0
	case a.IsDefault():
		return -1
	case b.IsDefault():
		return 1
	default:
		return strings.Compare(a.Name, b.Name)
	}
}
