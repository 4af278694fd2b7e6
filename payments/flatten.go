package payments

import "strconv"

// Flatten collapses a decoded JSON value into a single-level map of dotted
// keys. Arrays flatten with numeric segments, e.g. {"images": ["a"]} becomes
// {"images.0": "a"}, which is the shape the mobile client indexes into. The
// transform is lossless: every leaf appears under exactly one dotted key.
func Flatten(v map[string]interface{}) map[string]interface{} {
	out := map[string]interface{}{}
	flattenInto(out, "", v)
	return out
}

func flattenInto(out map[string]interface{}, prefix string, v interface{}) {
	switch value := v.(type) {
	case map[string]interface{}:
		for key, child := range value {
			flattenInto(out, join(prefix, key), child)
		}
	case []interface{}:
		for i, child := range value {
			flattenInto(out, join(prefix, strconv.Itoa(i)), child)
		}
	default:
		out[prefix] = value
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
