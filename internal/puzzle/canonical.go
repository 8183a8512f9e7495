package puzzle

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Content-addressed puzzle identity. Two documents that describe the
// same puzzle (same clues, fleet, hints, solution) hash identically
// regardless of field order, encoding, or Unicode representation of
// the name.

// DomainPuzzle is the hash domain prefix; the version suffix enables
// future algorithm migration.
const DomainPuzzle = "bimaru/puzzle/v1"

// Fingerprint computes the document's content-addressed identity:
// SHA-256 over domain-separated canonical JSON.
func (d *Document) Fingerprint() (string, error) {
	hints := append([]Hint(nil), d.Hints...)
	sort.Slice(hints, func(i, j int) bool {
		if hints[i].Row != hints[j].Row {
			return hints[i].Row < hints[j].Row
		}
		return hints[i].Col < hints[j].Col
	})

	hintList := make([]any, len(hints))
	for i, h := range hints {
		m := map[string]any{
			"row":   h.Row,
			"col":   h.Col,
			"state": h.State,
		}
		if h.Shape != "" {
			m["shape"] = h.Shape
		}
		hintList[i] = m
	}

	obj := map[string]any{
		"name":  d.Name,
		"rows":  intList(d.Rows),
		"cols":  intList(d.Cols),
		"fleet": intList(d.Fleet),
		"hints": hintList,
	}
	if len(d.Solution) > 0 {
		sol := make([]any, len(d.Solution))
		for i, s := range d.Solution {
			sol[i] = s
		}
		obj["solution"] = sol
	}

	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}

	h := sha256.New()
	h.Write([]byte(DomainPuzzle))
	h.Write([]byte{0x00}) // null separator keeps domain/data boundary unambiguous
	h.Write(canonical)
	return hex.EncodeToString(h.Sum(nil)), nil
}

func intList(xs []int) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

// MarshalCanonical produces canonical JSON: object keys sorted,
// strings NFC-normalized, no HTML escaping, no floats, no null.
// Fingerprinting and golden snapshots both rely on it for stable
// bytes.
func MarshalCanonical(v any) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return nil, fmt.Errorf("null is forbidden in canonical JSON")
	case string:
		return marshalCanonicalString(val)
	case int:
		return []byte(fmt.Sprintf("%d", val)), nil
	case int64:
		return []byte(fmt.Sprintf("%d", val)), nil
	case bool:
		if val {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case []any:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			enc, err := MarshalCanonical(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			buf.Write(enc)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kEnc, err := marshalCanonicalString(k)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			buf.Write(kEnc)
			buf.WriteByte(':')
			vEnc, err := MarshalCanonical(val[k])
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", k, err)
			}
			buf.Write(vEnc)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	case float32, float64:
		return nil, fmt.Errorf("floats are forbidden in canonical JSON: %v", val)
	default:
		return nil, fmt.Errorf("unsupported type for canonical JSON: %T", v)
	}
}

// marshalCanonicalString NFC-normalizes then JSON-encodes without HTML
// escaping.
func marshalCanonicalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(norm.NFC.String(s)); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
