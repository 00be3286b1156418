package token

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// Serializer converts payloads to and from their interchange text.
//
// Unmarshal should wrap syntax failures with ErrDecode and shape mismatches
// with ErrSchema. Unclassified errors are reported as ErrDecode.
type Serializer interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSONSerializer is the default Serializer, backed by encoding/json.
// Unknown object fields are ignored unless Strict is set.
type JSONSerializer struct {
	Strict bool
}

func (JSONSerializer) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (s JSONSerializer) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if s.Strict {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(v); err != nil {
		return classifyJSONError(err)
	}

	// A payload is a single JSON value.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.Join(ErrDecode, errors.New("json: trailing data after payload"))
	}

	return nil
}

func classifyJSONError(err error) error {
	var (
		typeErr      *json.UnmarshalTypeError
		invalidErr   *json.InvalidUnmarshalError
		unsupportErr *json.UnsupportedTypeError
	)

	switch {
	case errors.As(err, &typeErr), errors.As(err, &invalidErr), errors.As(err, &unsupportErr):
		return errors.Join(ErrSchema, err)
	case strings.HasPrefix(err.Error(), "json: unknown field"):
		return errors.Join(ErrSchema, err)
	case errors.Is(err, io.EOF):
		return errors.Join(ErrDecode, io.ErrUnexpectedEOF)
	default:
		return errors.Join(ErrDecode, err)
	}
}
