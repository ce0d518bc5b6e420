// Package repository handles all interactions with the database.
//
// It contains the raw SQL for points, items and their association, and
// hides transaction handling behind single operations such as
// PointRepository.CreateWithItems.
package repository

import "errors"

// ErrPointNotFound is returned when no point has the requested id.
var ErrPointNotFound = errors.New("point not found")
