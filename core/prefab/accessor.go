package prefab

import (
	"reflect"

	"prefab-manager/core/utils"
)

// GetProperty reads a property value from a live component. The second
// result is false when the component type does not declare the property.
func GetProperty(spec *ComponentSpec, component any, name string) (any, bool) {
	prop, _, ok := spec.Property(name)
	if !ok {
		return nil, false
	}
	return prop.Get(component), true
}

// SetProperty writes a property value on a live component. It returns false
// (never panics) when the property is unknown or the value's runtime type is
// incompatible with the declared kind; callers must check the result and
// report rather than assume success.
func SetProperty(spec *ComponentSpec, component any, name string, value any) bool {
	prop, _, ok := spec.Property(name)
	if !ok {
		return false
	}
	return prop.Set(component, value)
}

// SetElement writes one slot of a sequence-valued property (e.g. an indexed
// material slot). It returns false when the property is not a sequence or
// the index is out of bounds for the current slot count.
func SetElement(spec *ComponentSpec, component any, name string, index int, value any) bool {
	prop, _, ok := spec.Property(name)
	if !ok || !prop.Kind.Sequence() {
		return false
	}

	switch prop.Kind {
	case KindStringList:
		current, ok := prop.Get(component).([]string)
		if !ok || index < 0 || index >= len(current) {
			return false
		}
		v, ok := value.(string)
		if !ok {
			return false
		}
		next := make([]string, len(current))
		copy(next, current)
		next[index] = v
		return prop.Set(component, next)
	case KindFloatList:
		current, ok := prop.Get(component).([]float64)
		if !ok || index < 0 || index >= len(current) {
			return false
		}
		v, ok := DecodeValue(KindFloat, value)
		if !ok {
			return false
		}
		next := make([]float64, len(current))
		copy(next, current)
		next[index] = v.(float64)
		return prop.Set(component, next)
	default:
		return false
	}
}

// DecodeValue converts a structured-document value (as decoded by
// encoding/json) into the Go value for a property kind. The second result
// is false when the document value is incompatible with the kind; numeric
// kinds accept any JSON number, everything else is strict.
func DecodeValue(kind Kind, raw any) (any, bool) {
	switch kind {
	case KindString:
		s, ok := raw.(string)
		return s, ok
	case KindBool:
		b, ok := raw.(bool)
		return b, ok
	case KindInt:
		if !isNumber(raw) {
			return nil, false
		}
		return utils.ToInt(raw), true
	case KindFloat:
		if !isNumber(raw) {
			return nil, false
		}
		return utils.ToFloat(raw), true
	case KindStringList:
		switch v := raw.(type) {
		case []string:
			return append([]string(nil), v...), true
		case []any:
			out := make([]string, len(v))
			for i, el := range v {
				s, ok := el.(string)
				if !ok {
					return nil, false
				}
				out[i] = s
			}
			return out, true
		}
		return nil, false
	case KindFloatList:
		switch v := raw.(type) {
		case []float64:
			return append([]float64(nil), v...), true
		case []any:
			out := make([]float64, len(v))
			for i, el := range v {
				if !isNumber(el) {
					return nil, false
				}
				out[i] = utils.ToFloat(el)
			}
			return out, true
		}
		return nil, false
	default:
		return nil, false
	}
}

// valuesEqual compares a live property value against a decoded master value.
func valuesEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}
