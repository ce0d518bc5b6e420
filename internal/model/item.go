package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Item is a category of recyclable material, seeded by migration.
type Item struct {
	ID    int64  `db:"id"`
	Image string `db:"image"`
	Title string `db:"title"`
}

// PointItem links a point to an item it accepts.
type PointItem struct {
	ID      int64 `db:"id"`
	PointID int64 `db:"point_id"`
	ItemID  int64 `db:"item_id"`
}

// ErrEmptyItemIDs is returned when a list contains no ids at all.
var ErrEmptyItemIDs = errors.New("no item ids given")

// ItemIDs is an ordered list of item identifiers. Duplicates are kept.
type ItemIDs []int64

// ParseItemIDs parses a comma-separated list such as "1, 2,3".
//
// Every entry is trimmed and must be a positive integer; an empty list or
// any malformed entry is an error.
func ParseItemIDs(csv string) (ItemIDs, error) {
	if strings.TrimSpace(csv) == "" {
		return nil, ErrEmptyItemIDs
	}

	parts := strings.Split(csv, ",")
	ids := make(ItemIDs, 0, len(parts))
	for _, part := range parts {
		raw := strings.TrimSpace(part)
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid item id %q", raw)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// String renders the list back into its comma-separated form.
func (ids ItemIDs) String() string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
