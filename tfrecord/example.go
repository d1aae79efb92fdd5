package tfrecord

import (
	"fmt"
	"math"
	"slices"

	"google.golang.org/protobuf/encoding/protowire"
)

// Feature keys used for image classification datasets.
const (
	LabelKey = "image/class/label"
	ImageKey = "image/encoded"
)

// Field numbers from tensorflow/core/example/{example,feature}.proto.
const (
	fieldExampleFeatures protowire.Number = 1
	fieldFeaturesMap     protowire.Number = 1
	fieldMapKey          protowire.Number = 1
	fieldMapValue        protowire.Number = 2
	fieldBytesList       protowire.Number = 1
	fieldFloatList       protowire.Number = 2
	fieldInt64List       protowire.Number = 3
	fieldListValue       protowire.Number = 1
)

// Feature is one tf.train.Feature. Exactly one of the lists is meant to be
// set; when several are, Bytes wins, then Float, then Int64.
type Feature struct {
	Bytes [][]byte
	Float []float32
	Int64 []int64
}

// Example is a tf.train.Example: a map from feature name to Feature.
type Example struct {
	Features map[string]Feature
}

// NewImageExample returns an Example with the encoded image bytes and the
// integer class label under ImageKey and LabelKey.
func NewImageExample(image []byte, label int64) *Example {
	return &Example{
		Features: map[string]Feature{
			LabelKey: {Int64: []int64{label}},
			ImageKey: {Bytes: [][]byte{image}},
		},
	}
}

// Label returns the first value of the LabelKey feature.
func (e *Example) Label() (int64, bool) {
	f, ok := e.Features[LabelKey]
	if !ok || len(f.Int64) == 0 {
		return 0, false
	}
	return f.Int64[0], true
}

// Image returns the first value of the ImageKey feature.
func (e *Example) Image() ([]byte, bool) {
	f, ok := e.Features[ImageKey]
	if !ok || len(f.Bytes) == 0 {
		return nil, false
	}
	return f.Bytes[0], true
}

// Marshal encodes the Example in protobuf wire format.
// Map entries are written in key order so output is deterministic.
func (e *Example) Marshal() []byte {
	keys := make([]string, 0, len(e.Features))
	for k := range e.Features {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var features []byte
	for _, k := range keys {
		var entry []byte
		entry = protowire.AppendTag(entry, fieldMapKey, protowire.BytesType)
		entry = protowire.AppendString(entry, k)
		entry = protowire.AppendTag(entry, fieldMapValue, protowire.BytesType)
		entry = protowire.AppendBytes(entry, marshalFeature(e.Features[k]))

		features = protowire.AppendTag(features, fieldFeaturesMap, protowire.BytesType)
		features = protowire.AppendBytes(features, entry)
	}

	var b []byte
	b = protowire.AppendTag(b, fieldExampleFeatures, protowire.BytesType)
	b = protowire.AppendBytes(b, features)
	return b
}

func marshalFeature(f Feature) []byte {
	var list []byte
	var field protowire.Number

	switch {
	case f.Bytes != nil:
		field = fieldBytesList
		for _, v := range f.Bytes {
			list = protowire.AppendTag(list, fieldListValue, protowire.BytesType)
			list = protowire.AppendBytes(list, v)
		}
	case f.Float != nil:
		field = fieldFloatList
		var packed []byte
		for _, v := range f.Float {
			packed = protowire.AppendFixed32(packed, math.Float32bits(v))
		}
		list = protowire.AppendTag(list, fieldListValue, protowire.BytesType)
		list = protowire.AppendBytes(list, packed)
	default:
		field = fieldInt64List
		var packed []byte
		for _, v := range f.Int64 {
			packed = protowire.AppendVarint(packed, uint64(v))
		}
		list = protowire.AppendTag(list, fieldListValue, protowire.BytesType)
		list = protowire.AppendBytes(list, packed)
	}

	var b []byte
	b = protowire.AppendTag(b, field, protowire.BytesType)
	b = protowire.AppendBytes(b, list)
	return b
}

// UnmarshalExample decodes a tf.train.Example. Unknown fields are skipped.
func UnmarshalExample(b []byte) (*Example, error) {
	ex := &Example{Features: map[string]Feature{}}

	err := walk(b, func(num protowire.Number, typ protowire.Type, v []byte) error {
		if num != fieldExampleFeatures || typ != protowire.BytesType {
			return nil
		}
		return walk(v, func(num protowire.Number, typ protowire.Type, entry []byte) error {
			if num != fieldFeaturesMap || typ != protowire.BytesType {
				return nil
			}
			key, feature, err := unmarshalEntry(entry)
			if err != nil {
				return err
			}
			ex.Features[key] = feature
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return ex, nil
}

func unmarshalEntry(b []byte) (string, Feature, error) {
	var key string
	var feature Feature

	err := walk(b, func(num protowire.Number, typ protowire.Type, v []byte) error {
		if typ != protowire.BytesType {
			return nil
		}
		switch num {
		case fieldMapKey:
			key = string(v)
		case fieldMapValue:
			f, err := unmarshalFeature(v)
			if err != nil {
				return err
			}
			feature = f
		}
		return nil
	})
	return key, feature, err
}

func unmarshalFeature(b []byte) (Feature, error) {
	var f Feature

	err := walk(b, func(num protowire.Number, typ protowire.Type, list []byte) error {
		if typ != protowire.BytesType {
			return nil
		}
		switch num {
		case fieldBytesList:
			f.Bytes = [][]byte{}
			return walkValues(list, func(typ protowire.Type, raw []byte) error {
				if typ != protowire.BytesType {
					return nil
				}
				v, n := protowire.ConsumeBytes(raw)
				if n < 0 {
					return malformed(n)
				}
				f.Bytes = append(f.Bytes, slices.Clone(v))
				return nil
			})
		case fieldFloatList:
			f.Float = []float32{}
			return walkValues(list, func(typ protowire.Type, raw []byte) error {
				return decodeRepeated(typ, raw, protowire.Fixed32Type, func(b []byte) (int, error) {
					v, n := protowire.ConsumeFixed32(b)
					if n < 0 {
						return 0, malformed(n)
					}
					f.Float = append(f.Float, math.Float32frombits(v))
					return n, nil
				})
			})
		case fieldInt64List:
			f.Int64 = []int64{}
			return walkValues(list, func(typ protowire.Type, raw []byte) error {
				return decodeRepeated(typ, raw, protowire.VarintType, func(b []byte) (int, error) {
					v, n := protowire.ConsumeVarint(b)
					if n < 0 {
						return 0, malformed(n)
					}
					f.Int64 = append(f.Int64, int64(v))
					return n, nil
				})
			})
		}
		return nil
	})
	return f, err
}

// walk calls fn for every length-delimited or scalar field of b. For
// BytesType fields v is the payload; for other types v is nil.
func walk(b []byte, fn func(num protowire.Number, typ protowire.Type, v []byte) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return malformed(n)
		}
		b = b[n:]

		var v []byte
		if typ == protowire.BytesType {
			v, n = protowire.ConsumeBytes(b)
		} else {
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return malformed(n)
		}
		b = b[n:]

		if err := fn(num, typ, v); err != nil {
			return err
		}
	}
	return nil
}

// walkValues calls fn with the wire type and raw encoding (tag stripped) of
// each `value` field (number 1) of a list message.
func walkValues(b []byte, fn func(typ protowire.Type, raw []byte) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return malformed(n)
		}
		b = b[n:]

		m := protowire.ConsumeFieldValue(num, typ, b)
		if m < 0 {
			return malformed(m)
		}
		if num == fieldListValue {
			if err := fn(typ, b[:m]); err != nil {
				return err
			}
		}
		b = b[m:]
	}
	return nil
}

// decodeRepeated handles both packed and unpacked encodings of a scalar
// repeated field. consume decodes one element and returns its length.
func decodeRepeated(typ protowire.Type, raw []byte, scalar protowire.Type, consume func([]byte) (int, error)) error {
	switch typ {
	case scalar:
		_, err := consume(raw)
		return err
	case protowire.BytesType:
		packed, n := protowire.ConsumeBytes(raw)
		if n < 0 {
			return malformed(n)
		}
		for len(packed) > 0 {
			m, err := consume(packed)
			if err != nil {
				return err
			}
			packed = packed[m:]
		}
	}
	return nil
}

func malformed(n int) error {
	return fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
}
