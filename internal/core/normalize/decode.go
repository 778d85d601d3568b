package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"extractor/internal/core/taxonomy"
	"extractor/internal/domain"
)

var toolRecordKeySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(domain.ToolRecordKeys))
	for _, k := range domain.ToolRecordKeys {
		set[k] = struct{}{}
	}
	return set
}()

// DecodeToolRecord parses a raw model response into a ToolRecord. The key set must match exactly,
// no value may be null, every field must have its declared type and every classification ID must
// belong to tx.
func DecodeToolRecord(raw string, tx *taxonomy.Taxonomy) (domain.ToolRecord, error) {
	text := StripCodeFences(raw)
	if text == "" {
		return domain.ToolRecord{}, domain.NewNormalizationError("empty model response", nil)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return domain.ToolRecord{}, domain.NewNormalizationError("response is not a JSON object", err)
	}
	if err := checkKeys(fields); err != nil {
		return domain.ToolRecord{}, err
	}

	var record domain.ToolRecord
	dec := json.NewDecoder(strings.NewReader(text))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&record); err != nil {
		return domain.ToolRecord{}, domain.NewNormalizationError("response does not match the record schema", err)
	}

	record.Categories = dedupe(record.Categories)
	record.Subcategories = dedupe(record.Subcategories)
	record.Tags = dedupe(record.Tags)
	if err := tx.Contains(record.Categories, record.Subcategories, record.Tags); err != nil {
		return domain.ToolRecord{}, domain.NewNormalizationError("classification outside taxonomy", err)
	}
	return record.WithDefaults(), nil
}

func checkKeys(fields map[string]json.RawMessage) error {
	var missing, nulls, extra []string
	for _, k := range domain.ToolRecordKeys {
		v, ok := fields[k]
		if !ok {
			missing = append(missing, k)
			continue
		}
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			nulls = append(nulls, k)
		}
	}
	for k := range fields {
		if _, ok := toolRecordKeySet[k]; !ok {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)

	switch {
	case len(missing) > 0:
		return domain.NewNormalizationError(fmt.Sprintf("missing keys: %s", strings.Join(missing, ", ")), nil)
	case len(nulls) > 0:
		return domain.NewNormalizationError(fmt.Sprintf("null values for: %s", strings.Join(nulls, ", ")), nil)
	case len(extra) > 0:
		return domain.NewNormalizationError(fmt.Sprintf("unexpected keys: %s", strings.Join(extra, ", ")), nil)
	}
	return nil
}

func dedupe(ids []int) []int {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[int]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
