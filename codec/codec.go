package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/extendable-lang/el-runtime/errors"
	"github.com/extendable-lang/el-runtime/value"
)

// Decode converts a textual encoding into a collection. The text must be a
// JSON array or object; anything else, including a bare scalar or trailing
// garbage, is invalid input.
func Decode(text string) (value.Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.DecodeFailed(errors.OpDecode, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.InvalidInput(errors.OpDecode, "trailing data after collection encoding")
	}

	switch raw.(type) {
	case []any, map[string]any:
	default:
		return nil, errors.New(errors.OpDecode, errors.KindInvalidInput).
			Detail("top-level value %v is not a sequence or mapping", raw).
			Value(raw).
			Build()
	}
	return fromJSON(raw, nil)
}

func fromJSON(raw any, path []string) (value.Value, error) {
	switch v := raw.(type) {
	case string:
		return value.String(v), nil
	case json.Number:
		return numberValue(v, path)
	case []any:
		seq := make(value.Sequence, 0, len(v))
		for i, elem := range v {
			ev, err := fromJSON(elem, append(path, strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			seq = append(seq, ev)
		}
		return seq, nil
	case map[string]any:
		m := make(value.Mapping, len(v))
		for k, elem := range v {
			ev, err := fromJSON(elem, append(path, k))
			if err != nil {
				return nil, err
			}
			m[k] = ev
		}
		return m, nil
	case bool:
		return nil, errors.New(errors.OpDecode, errors.KindInvalidInput).
			Path(path...).
			Detail("boolean %v is not a collection scalar", v).
			Value(v).
			Build()
	case nil:
		return nil, errors.New(errors.OpDecode, errors.KindInvalidInput).
			Path(path...).
			Detail("null is not a collection scalar").
			Build()
	default:
		return nil, errors.New(errors.OpDecode, errors.KindInvalidInput).
			Path(path...).
			Detail("unexpected value of type %T", v).
			Value(v).
			Build()
	}
}

// numberValue keeps the int/float distinction lexically: a literal without
// '.', 'e', or 'E' is an Int, everything else a Float. Integers too large
// for int64 fall back to Float the way encoding/json itself would.
func numberValue(n json.Number, path []string) (value.Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return value.Int(i), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.New(errors.OpDecode, errors.KindInvalidInput).
			Path(path...).
			Detail("number %q does not fit any scalar", s).
			Cause(err).
			Build()
	}
	return value.Float(f), nil
}

// Encode converts a collection into its textual encoding. Output is
// deterministic: no insignificant whitespace, mapping keys in sorted order,
// so equal collections always encode identically.
func Encode(v value.Value) (string, error) {
	if _, ok := value.ShapeOf(v); !ok {
		return "", errors.New(errors.OpEncode, errors.KindInvalidInput).
			Detail("top-level value %v is not a sequence or mapping", v).
			Value(v).
			Build()
	}
	var b strings.Builder
	if err := writeValue(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeValue(b *strings.Builder, v value.Value) error {
	switch val := v.(type) {
	case value.String:
		quoted, err := json.Marshal(string(val))
		if err != nil {
			return errors.Wrap(errors.OpEncode, errors.KindInvalidInput, err, "encode string scalar")
		}
		b.Write(quoted)
	case value.Int:
		b.WriteString(strconv.FormatInt(int64(val), 10))
	case value.Float:
		s, err := formatFloat(float64(val))
		if err != nil {
			return err
		}
		b.WriteString(s)
	case value.Sequence:
		b.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := writeValue(b, elem); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case value.Mapping:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			quoted, err := json.Marshal(k)
			if err != nil {
				return errors.Wrap(errors.OpEncode, errors.KindInvalidInput, err, "encode mapping key")
			}
			b.Write(quoted)
			b.WriteByte(':')
			if err := writeValue(b, val[k]); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	default:
		return errors.New(errors.OpEncode, errors.KindInvalidInput).
			Detail("value %v has no encoding", v).
			Value(v).
			Build()
	}
	return nil
}

// formatFloat renders a Float so it decodes back as a Float: integral values
// keep a trailing ".0" marker. NaN and infinities have no encoding.
func formatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", errors.InvalidInput(errors.OpEncode, fmt.Sprintf("float %v has no encoding", f))
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s, nil
}

// Text renders a value as script text: scalars print bare (strings without
// quotes), collections print as their encoding, nil prints empty. This is
// the read side of the script boundary, where only text exists.
func Text(v value.Value) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case value.String:
		return string(val), nil
	case value.Int:
		return strconv.FormatInt(int64(val), 10), nil
	case value.Float:
		return formatFloat(float64(val))
	default:
		return Encode(v)
	}
}

// ParseScalar reads script text as a scalar the way the interpreter reads
// literals: an integer if it parses as one, then a float, otherwise the
// text itself.
func ParseScalar(text string) value.Value {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return value.Int(i)
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return value.Float(f)
	}
	return value.String(text)
}
