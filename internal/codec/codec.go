// Package codec converts the application state to and from a portable
// restore code that can be pasted between sessions or devices.
//
// A restore code is the prefix "EVC1." followed by the unpadded base64url
// encoding of a JSON envelope:
//
//	{"v":1,"crc":<crc32 of state>,"state":<AppState JSON>}
//
// Decoding fails closed: an unknown prefix or version, trailing data,
// unknown fields, a checksum mismatch or an implausible state are all
// rejected.
package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/model"
)

// Version is the envelope version written by Encode.
const Version = 1

// Prefix starts every restore code of the current version.
const Prefix = "EVC1."

// Unencodable is returned by Encode when the state cannot be serialized.
const Unencodable = ""

// Decode errors. All are wrapped with detail; test with errors.Is.
var (
	ErrMalformed = errors.New("malformed restore code")
	ErrVersion   = errors.New("unsupported restore code version")
	ErrChecksum  = errors.New("restore code checksum mismatch")
	ErrInvalid   = errors.New("restore code holds no usable state")
)

var encoding = base64.RawURLEncoding.Strict()

type envelope struct {
	V     int             `json:"v"`
	CRC   uint32          `json:"crc"`
	State json.RawMessage `json:"state"`
}

// Encode returns the restore code for s, or Unencodable on failure.
func Encode(s model.AppState) string {
	code, err := encode(s)
	if err != nil {
		slog.Warn("encoding restore code failed", "error", err)
		return Unencodable
	}
	return code
}

func encode(s model.AppState) (string, error) {
	state, err := MarshalState(s)
	if err != nil {
		return "", err
	}
	env, err := json.Marshal(envelope{V: Version, CRC: crc32.ChecksumIEEE(state), State: state})
	if err != nil {
		return "", fmt.Errorf("marshaling envelope: %w", err)
	}
	return Prefix + encoding.EncodeToString(env), nil
}

// Decode parses a restore code produced by Encode.
func Decode(code string) (model.AppState, error) {
	code = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, code)

	if !strings.HasPrefix(code, Prefix) {
		if i := strings.IndexByte(code, '.'); i > 0 && strings.HasPrefix(code, "EVC") {
			return model.AppState{}, fmt.Errorf("%w: %q", ErrVersion, code[:i])
		}
		return model.AppState{}, fmt.Errorf("%w: missing %q prefix", ErrMalformed, Prefix)
	}

	raw, err := encoding.DecodeString(code[len(Prefix):])
	if err != nil {
		return model.AppState{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var env envelope
	if err := decodeStrict(raw, &env); err != nil {
		return model.AppState{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if env.V != Version {
		return model.AppState{}, fmt.Errorf("%w: %d", ErrVersion, env.V)
	}
	if crc32.ChecksumIEEE(env.State) != env.CRC {
		return model.AppState{}, ErrChecksum
	}
	return UnmarshalState(env.State)
}

// MarshalState returns the canonical JSON form of s. This is also the
// value kept by the storage collaborator.
func MarshalState(s model.AppState) ([]byte, error) {
	if s.SavedEvents == nil {
		s.SavedEvents = []model.Event{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshaling state: %w", err)
	}
	return b, nil
}

// UnmarshalState parses canonical JSON and checks that it is a plausible
// AppState: it must carry a current event or a saved-events list, and
// every event must pass model validation.
func UnmarshalState(b []byte) (model.AppState, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return model.AppState{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !present(fields, "currentEvent") && !present(fields, "savedEvents") {
		return model.AppState{}, fmt.Errorf("%w: neither currentEvent nor savedEvents", ErrInvalid)
	}

	var s model.AppState
	if err := decodeStrict(b, &s); err != nil {
		return model.AppState{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := s.Validate(); err != nil {
		return model.AppState{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if s.SavedEvents == nil {
		s.SavedEvents = []model.Event{}
	}
	return s, nil
}

func present(fields map[string]json.RawMessage, key string) bool {
	v, ok := fields[key]
	return ok && !bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// decodeStrict rejects unknown fields and anything after the first value.
func decodeStrict(b []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("trailing data after state")
	}
	return nil
}
