package inspect

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
)

// DefaultGroup is the label of fields whose marker names no group.
const DefaultGroup = "[unassigned]"

// DefaultTagKey is the struct tag key carrying the editable marker.
const DefaultTagKey = "editor"

// skipValue excludes a field even though it carries the tag key.
const skipValue = "-"

var errMalformedTag = errors.New("malformed struct tag")

// Marker is the editable marker attached to a field.
type Marker struct {
	Group string
}

// ParseMarker reads the editable marker stored under key. The boolean is
// false when the field is not editable. An empty value selects DefaultGroup;
// any other value is used verbatim as the group label.
//
// A tag that mentions key but cannot be parsed is an error. Malformed tags
// that do not mention key are left to their own consumers.
func ParseMarker(tag reflect.StructTag, key string) (Marker, bool, error) {
	value, ok := tag.Lookup(key)
	if !ok {
		if strings.Contains(string(tag), key) {
			if err := validateTag(string(tag)); err != nil {
				return Marker{}, false, err
			}
		}

		return Marker{}, false, nil
	}

	if value == skipValue {
		return Marker{}, false, nil
	}

	if value == "" {
		value = DefaultGroup
	}

	return Marker{Group: value}, true, nil
}

// validateTag checks the conventional `key:"value" key:"value"` syntax that
// reflect.StructTag.Lookup silently gives up on.
func validateTag(tag string) error {
	for tag != "" {
		i := 0
		for i < len(tag) && tag[i] == ' ' {
			i++
		}
		tag = tag[i:]
		if tag == "" {
			break
		}

		i = 0
		for i < len(tag) && tag[i] > ' ' && tag[i] != ':' && tag[i] != '"' && tag[i] != 0x7f {
			i++
		}
		if i == 0 || i+1 >= len(tag) || tag[i] != ':' || tag[i+1] != '"' {
			return errMalformedTag
		}
		tag = tag[i+1:]

		i = 1
		for i < len(tag) && tag[i] != '"' {
			if tag[i] == '\\' {
				i++
			}
			i++
		}
		if i >= len(tag) {
			return errMalformedTag
		}

		if _, err := strconv.Unquote(tag[:i+1]); err != nil {
			return errMalformedTag
		}
		tag = tag[i+1:]
	}

	return nil
}
