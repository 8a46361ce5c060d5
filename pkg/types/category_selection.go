package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CategorySelection holds category ids as a client submitted them. Two
// client conventions are in the wild: the web form posts a comma separated
// string ("1, 2,3") while the mobile app sends a JSON array of integers.
// Both normalize to a set of ids here, before anything touches storage.
type CategorySelection struct {
	raw        string
	ids        []int
	structured bool
}

func CategoriesFromString(s string) CategorySelection {
	return CategorySelection{raw: s}
}

func CategoriesFromInts(ids []int) CategorySelection {
	return CategorySelection{ids: ids, structured: true}
}

// UnmarshalJSON accepts either encoding of the selection.
func (c *CategorySelection) UnmarshalJSON(b []byte) error {
	var ids []int
	if err := json.Unmarshal(b, &ids); err == nil {
		*c = CategoriesFromInts(ids)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*c = CategoriesFromString(s)
		return nil
	}

	return fmt.Errorf("categories must be a comma separated string or an array of integers")
}

// IDs normalizes the selection strictly: every token must coerce to an
// integer and at least one id must remain. Any bad token fails the whole
// selection with a ValidationError. Duplicates collapse, first-seen order
// is kept.
func (c CategorySelection) IDs() ([]int, error) {
	if c.structured {
		ids := dedupe(c.ids)
		if len(ids) == 0 {
			return nil, NewValidationError("categories", "at least one category is required")
		}
		return ids, nil
	}

	if strings.TrimSpace(c.raw) == "" {
		return nil, NewValidationError("categories", "at least one category is required")
	}

	var ids []int
	for _, token := range strings.Split(c.raw, ",") {
		token = strings.TrimSpace(token)
		id, err := strconv.Atoi(token)
		if err != nil {
			return nil, NewValidationError("categories", fmt.Sprintf("invalid category id %q", token))
		}
		ids = append(ids, id)
	}

	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil, NewValidationError("categories", "at least one category is required")
	}

	return ids, nil
}

// FilterIDs normalizes leniently for list filtering: tokens that fail to
// coerce are dropped. An empty result means the filter matches nothing,
// never everything.
func (c CategorySelection) FilterIDs() []int {
	if c.structured {
		return dedupe(c.ids)
	}

	var ids []int
	for _, token := range strings.Split(c.raw, ",") {
		token = strings.TrimSpace(token)
		id, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return dedupe(ids)
}

func dedupe(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	if len(out) == 0 {
		return nil
	}

	return out
}
