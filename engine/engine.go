package engine

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/extendable-lang/el-runtime/codec"
	"github.com/extendable-lang/el-runtime/errors"
	"github.com/extendable-lang/el-runtime/value"
)

// AnyShape disables the shape pin on the *As entry points.
const AnyShape = value.Shape("")

// Create returns the blank encoding for the named shape.
func Create(shape string) (string, error) {
	switch value.Shape(shape) {
	case value.ShapeSequence:
		return codec.Encode(value.Sequence{})
	case value.ShapeMapping:
		return codec.Encode(value.Mapping{})
	default:
		return "", errors.UnsupportedShape(errors.OpCreate, shape)
	}
}

// Add inserts into the collection encoded by text and returns the new
// encoding. For a mapping, primary is the key and val is required; an
// existing key is overwritten silently. For a sequence, primary is the
// element: with index it is inserted there (index must satisfy
// 0 <= index <= length), without it is appended.
func Add(text string, primary, val value.Value, index *int) (string, error) {
	return AddAs(AnyShape, text, primary, val, index)
}

// AddAs is Add with a facade's shape pin: a collection of any other shape
// is rejected before the operation dispatches.
func AddAs(want value.Shape, text string, primary, val value.Value, index *int) (string, error) {
	coll, err := decodeAs(errors.OpAdd, want, text)
	if err != nil {
		return "", err
	}

	switch coll := coll.(type) {
	case value.Mapping:
		return addMapping(coll, primary, val, index)
	case value.Sequence:
		return addSequence(coll, primary, val, index)
	}
	return "", errors.InvalidInput(errors.OpAdd, "decoded value is not a collection")
}

func addMapping(coll value.Mapping, primary, val value.Value, index *int) (string, error) {
	if index != nil {
		return "", errors.ConflictingArguments(errors.OpAdd, []string{"mapping"}, "index", "key")
	}
	if primary == nil {
		return "", errors.MissingArgument(errors.OpAdd, []string{"mapping"}, "key")
	}
	if val == nil {
		return "", errors.MissingArgument(errors.OpAdd, []string{"mapping"}, "value")
	}
	key, err := mappingKey(errors.OpAdd, primary)
	if err != nil {
		return "", err
	}
	if _, exists := coll[key]; exists {
		debugf("add overwrites key %q", key)
	}
	coll[key] = val
	return codec.Encode(coll)
}

func addSequence(coll value.Sequence, primary, val value.Value, index *int) (string, error) {
	if primary == nil {
		return "", errors.MissingArgument(errors.OpAdd, []string{"sequence"}, "element")
	}
	if val != nil {
		return "", errors.ConflictingArguments(errors.OpAdd, []string{"sequence"}, "value", "element")
	}
	if index == nil {
		return codec.Encode(append(coll, primary))
	}
	i := *index
	if i < 0 || i > len(coll) {
		return "", errors.IndexOutOfRange(errors.OpAdd, []string{"sequence"}, i, len(coll))
	}
	out := make(value.Sequence, 0, len(coll)+1)
	out = append(out, coll[:i]...)
	out = append(out, primary)
	out = append(out, coll[i:]...)
	return codec.Encode(out)
}

// Remove deletes from the collection encoded by text and returns the new
// encoding. For a mapping, target is the key. For a sequence, either index
// or target selects the element: index removes that position, target removes
// its first occurrence. An absent key, value, or out-of-range index is a
// warned no-op returning text unchanged.
func Remove(text string, target value.Value, index *int) (string, error) {
	return RemoveAs(AnyShape, text, target, index)
}

// RemoveAs is Remove with a facade's shape pin.
func RemoveAs(want value.Shape, text string, target value.Value, index *int) (string, error) {
	coll, err := decodeAs(errors.OpRemove, want, text)
	if err != nil {
		return "", err
	}

	switch coll := coll.(type) {
	case value.Mapping:
		return removeMapping(text, coll, target, index)
	case value.Sequence:
		return removeSequence(text, coll, target, index)
	}
	return "", errors.InvalidInput(errors.OpRemove, "decoded value is not a collection")
}

func removeMapping(text string, coll value.Mapping, target value.Value, index *int) (string, error) {
	if index != nil {
		return "", errors.ConflictingArguments(errors.OpRemove, []string{"mapping"}, "index", "key")
	}
	if target == nil {
		return "", errors.MissingArgument(errors.OpRemove, []string{"mapping"}, "key")
	}
	key, err := mappingKey(errors.OpRemove, target)
	if err != nil {
		return "", err
	}
	if _, exists := coll[key]; !exists {
		Logger().Warn("remove of absent key is a no-op",
			zap.String("shape", string(value.ShapeMapping)),
			zap.String("key", key))
		return text, nil
	}
	delete(coll, key)
	return codec.Encode(coll)
}

func removeSequence(text string, coll value.Sequence, target value.Value, index *int) (string, error) {
	if target != nil && index != nil {
		return "", errors.ConflictingArguments(errors.OpRemove, []string{"sequence"}, "value", "index")
	}
	if target == nil && index == nil {
		return "", errors.MissingArgument(errors.OpRemove, []string{"sequence"}, "value or index")
	}
	at := -1
	if index != nil {
		if *index < 0 || *index >= len(coll) {
			Logger().Warn("remove of out-of-range index is a no-op",
				zap.String("shape", string(value.ShapeSequence)),
				zap.Int("index", *index),
				zap.Int("length", len(coll)))
			return text, nil
		}
		at = *index
	} else {
		for i, elem := range coll {
			if value.Equal(elem, target) {
				at = i
				break
			}
		}
		if at < 0 {
			Logger().Warn("remove of absent value is a no-op",
				zap.String("shape", string(value.ShapeSequence)),
				zap.Any("value", target))
			return text, nil
		}
	}
	out := make(value.Sequence, 0, len(coll)-1)
	out = append(out, coll[:at]...)
	out = append(out, coll[at+1:]...)
	return codec.Encode(out)
}

// Get looks up a value in the collection encoded by text. For a mapping, key
// selects the entry; an absent key returns nil. For a sequence, index selects
// the position; out of range returns nil with a warning. Nil is the script
// null, never an error.
func Get(text string, key *string, index *int) (value.Value, error) {
	return GetAs(AnyShape, text, key, index)
}

// GetAs is Get with a facade's shape pin.
func GetAs(want value.Shape, text string, key *string, index *int) (value.Value, error) {
	coll, err := decodeAs(errors.OpGet, want, text)
	if err != nil {
		return nil, err
	}

	switch coll := coll.(type) {
	case value.Mapping:
		if key != nil && index != nil {
			return nil, errors.ConflictingArguments(errors.OpGet, []string{"mapping"}, "key", "index")
		}
		if key == nil {
			return nil, errors.MissingArgument(errors.OpGet, []string{"mapping"}, "key")
		}
		return coll[*key], nil

	case value.Sequence:
		if key != nil && index != nil {
			return nil, errors.ConflictingArguments(errors.OpGet, []string{"sequence"}, "key", "index")
		}
		if index == nil {
			return nil, errors.MissingArgument(errors.OpGet, []string{"sequence"}, "index")
		}
		i := *index
		if i < 0 || i >= len(coll) {
			Logger().Warn("get of out-of-range index is null",
				zap.String("shape", string(value.ShapeSequence)),
				zap.Int("index", i),
				zap.Int("length", len(coll)))
			return nil, nil
		}
		return coll[i], nil
	}
	return nil, errors.InvalidInput(errors.OpGet, "decoded value is not a collection")
}

// Length reports how many entries the collection encoded by text holds.
func Length(text string) (int, error) {
	return LengthAs(AnyShape, text)
}

// LengthAs is Length with a facade's shape pin.
func LengthAs(want value.Shape, text string) (int, error) {
	coll, err := decodeAs(errors.OpGet, want, text)
	if err != nil {
		return 0, err
	}
	switch coll := coll.(type) {
	case value.Mapping:
		return len(coll), nil
	case value.Sequence:
		return len(coll), nil
	}
	return 0, errors.InvalidInput(errors.OpGet, "decoded value is not a collection")
}

// Shape reports which shape the collection encoded by text has.
func Shape(text string) (value.Shape, error) {
	c, err := codec.Decode(text)
	if err != nil {
		return "", err
	}
	shape, ok := value.ShapeOf(c)
	if !ok {
		return "", errors.InvalidInput(errors.OpGet, "decoded value is not a collection")
	}
	return shape, nil
}

// decodeAs decodes once and enforces the shape pin.
func decodeAs(op errors.Op, want value.Shape, text string) (value.Value, error) {
	coll, err := codec.Decode(text)
	if err != nil {
		return nil, err
	}
	if want == AnyShape {
		return coll, nil
	}
	got, _ := value.ShapeOf(coll)
	if got != want {
		return nil, errors.WrongShape(op, nil, string(want), string(got))
	}
	return coll, nil
}

// mappingKey renders a scalar as a mapping key. Integer and float keys are
// folded to their text form, so add(t, 1, v) and add(t, "1", v) address the
// same entry.
func mappingKey(op errors.Op, v value.Value) (string, error) {
	switch k := v.(type) {
	case value.String:
		return string(k), nil
	case value.Int:
		return strconv.FormatInt(int64(k), 10), nil
	case value.Float:
		text, err := codec.Text(k)
		if err != nil {
			return "", errors.Wrap(op, errors.KindInvalidInput, err, "mapping key")
		}
		return text, nil
	default:
		return "", errors.New(op, errors.KindInvalidInput).
			Path("mapping").
			Detail("mapping key must be a scalar, got a collection").
			Build()
	}
}
