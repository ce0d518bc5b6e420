package model

import (
	"github.com/shopspring/decimal"
)

// Point is a registered waste-collection location.
//
// Image holds the stored upload filename, never a URL; URLs are derived when
// the point is serialized.
type Point struct {
	ID        int64           `db:"id"`
	Image     string          `db:"image"`
	Name      string          `db:"name"`
	Email     string          `db:"email"`
	Whatsapp  string          `db:"whatsapp"`
	Latitude  decimal.Decimal `db:"latitude"`
	Longitude decimal.Decimal `db:"longitude"`
	City      string          `db:"city"`
	UF        string          `db:"uf"`
}

// PointDetail is a point together with the titles of the items it accepts.
type PointDetail struct {
	Point      Point
	ItemTitles []string
}

// PointFilter selects points in a city and state that accept at least one
// of ItemIDs.
type PointFilter struct {
	City    string
	UF      string
	ItemIDs ItemIDs
}
