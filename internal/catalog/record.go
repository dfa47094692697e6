package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"mirrorpick/internal/domain"
)

const mirrorKeyPrefix = "link"

// record is one raw list entry. List files are hand-edited, so scalar fields
// may arrive as strings or numbers and mirrors as any number of linkN keys.
type record map[string]json.RawMessage

func decodeRecords(data []byte) ([]record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var records []record
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

// scalar returns the canonical string form of a string or number field
func (r record) scalar(key string) string {
	raw, ok := r[key]
	if !ok {
		return ""
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return canonicalNumber(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// canonicalNumber renders 7, 7.0 and 7e0 all as "7"
func canonicalNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if f, err := n.Float64(); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return n.String()
}

func (r record) text(key string) string {
	raw, ok := r[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// mirrors collects linkN keys into an index-ordered list. Keys whose suffix is
// not a canonical positive integer and values that are not non-empty strings
// are skipped.
func (r record) mirrors() []domain.Mirror {
	var out []domain.Mirror
	for key := range r {
		index, ok := mirrorIndex(key)
		if !ok {
			continue
		}
		url := strings.TrimSpace(r.text(key))
		if url == "" {
			continue
		}
		out = append(out, domain.Mirror{Index: index, URL: url})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

func mirrorIndex(key string) (int, bool) {
	suffix, ok := strings.CutPrefix(key, mirrorKeyPrefix)
	if !ok || suffix == "" {
		return 0, false
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n <= 0 || strconv.Itoa(n) != suffix {
		return 0, false
	}
	return n, true
}

func (r record) entry(source string, position int) domain.CatalogEntry {
	id := r.scalar("id")
	if id == "" {
		id = fmt.Sprintf("%s#%d", source, position)
	}

	instruction := r.text("instruction")
	if instruction == "" {
		instruction = r.text("instructions")
	}

	return domain.CatalogEntry{
		ID:              id,
		Filename:        r.text("filename"),
		Category:        domain.Category(r.text("category")),
		OSMin:           r.scalar("os_min"),
		Size:            r.scalar("size"),
		Preview:         r.text("preview"),
		OriginalName:    r.text("originalName"),
		Mirrors:         r.mirrors(),
		LegacyLink:      strings.TrimSpace(r.text(mirrorKeyPrefix)),
		InstructionText: instruction,
		Selected:        false,
	}
}
