package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

var (
	errStrictNeedsFields = errors.New("--strict requires at least one --field")
	errInvalidField      = errors.New("invalid field name")
)

// tagPunct lists the punctuation encoding/json accepts in a field tag name.
const tagPunct = "!#$%&()*+-./:;<=>?@[]^_{|}~ "

var rawMessageType = reflect.TypeOf(json.RawMessage(nil))

// fieldSchema returns a pointer to a struct whose JSON fields are exactly
// names. Decoding into it with unknown fields disallowed rejects every other
// key and any payload that is not an object.
func fieldSchema(names []string) (any, error) {
	if len(names) == 0 {
		return nil, errStrictNeedsFields
	}

	fields := make([]reflect.StructField, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if !validFieldName(name) {
			return nil, fmt.Errorf("%w: %q", errInvalidField, name)
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		fields = append(fields, reflect.StructField{
			Name: fmt.Sprintf("F%d", len(fields)),
			Type: rawMessageType,
			Tag:  reflect.StructTag(`json:"` + name + `"`),
		})
	}

	return reflect.New(reflect.StructOf(fields)).Interface(), nil
}

func validFieldName(name string) bool {
	if name == "" || name == "-" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune(tagPunct, r) {
			return false
		}
	}
	return true
}
