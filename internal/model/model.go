// Package model holds the domain types of the collection point marketplace:
// points, the recyclable items they accept and the association between them.
package model
