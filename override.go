package pageforge

import (
	"strconv"
	"strings"
)

// Overrides is a sparse patch set recorded apart from authoritative section
// content. Keys are string-encoded section indexes (the wire format is a
// JSON object, so indexes travel as strings); values map dotted field paths
// to replacement values.
type Overrides map[string]map[string]any

// Set records an override for the given section index and dotted path,
// replacing any earlier value at the same path.
func (o Overrides) Set(index int, path string, value any) {
	key := strconv.Itoa(index)
	if o[key] == nil {
		o[key] = make(map[string]any)
	}
	o[key][path] = value
}

// SectionFieldPath splits a field path of the form "sections.<index>.<rest>"
// into its section index and remaining dotted path. ok is false if the path
// does not address a section field.
func SectionFieldPath(path string) (index int, rest string, ok bool) {
	const prefix = "sections."
	if !strings.HasPrefix(path, prefix) {
		return 0, "", false
	}
	tail := path[len(prefix):]
	idxStr, rest, found := strings.Cut(tail, ".")
	if !found || rest == "" {
		return 0, "", false
	}
	index, err := strconv.Atoi(idxStr)
	if err != nil || index < 0 {
		return 0, "", false
	}
	return index, rest, true
}

// ApplyOverrides merges the patch set onto a copy of the section list and
// returns the result. The input sections are never mutated, so the same
// patch set produces identical output on every call.
//
// Dotted paths are walked permissively: missing intermediate keys are
// created as maps, and values of the wrong shape are replaced. Indexes
// outside the section list and paths that address unknown section fields
// are skipped silently.
func ApplyOverrides(sections []Section, overrides Overrides) []Section {
	out := make([]Section, len(sections))
	for i, sec := range sections {
		out[i] = sec
		out[i].Data = deepCopyMap(sec.Data)
	}

	for key, fields := range overrides {
		index, err := strconv.Atoi(key)
		if err != nil || index < 0 || index >= len(out) {
			continue
		}
		for path, value := range fields {
			applySectionField(&out[index], path, value)
		}
	}

	return out
}

// applySectionField writes one dotted-path override into a section.
func applySectionField(sec *Section, path string, value any) {
	head, rest, nested := strings.Cut(path, ".")

	switch head {
	case "type":
		if s, ok := value.(string); ok && !nested {
			sec.Type = s
		}
	case "enabled":
		if b, ok := value.(bool); ok && !nested {
			sec.Enabled = b
		}
	case "order":
		if n, ok := toInt(value); ok && !nested {
			sec.Order = n
		}
	case "data":
		if !nested {
			if m, ok := value.(map[string]any); ok {
				sec.Data = deepCopyMap(m)
			}
			return
		}
		if sec.Data == nil {
			sec.Data = make(map[string]any)
		}
		setPermissive(sec.Data, strings.Split(rest, "."), value)
	}
}

// setPermissive walks segs into m, creating intermediate maps as needed,
// and writes the leaf value.
func setPermissive(m map[string]any, segs []string, value any) {
	for _, seg := range segs[:len(segs)-1] {
		next, ok := m[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[seg] = next
		}
		m = next
	}
	m[segs[len(segs)-1]] = value
}

// SetNestedField writes value at the dotted path inside doc. Unlike the
// override read path this is strict: a missing or non-map intermediate key
// is an EINVALID error. A path without dots writes the leaf directly.
func SetNestedField(doc map[string]any, path string, value any) error {
	segs := strings.Split(path, ".")
	m := doc
	for _, seg := range segs[:len(segs)-1] {
		next, ok := m[seg].(map[string]any)
		if !ok {
			return Errorf(EINVALID, "invalid field path: %s", path)
		}
		m = next
	}
	m[segs[len(segs)-1]] = value
	return nil
}

// deepCopyMap copies nested maps and slices so override application cannot
// reach back into stored section data.
func deepCopyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return deepCopyMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return v
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
