// Package inventory holds the CD record model and the two mutations the
// session applies to it.
//
// An Inventory is an ordered slice of Records in insertion order. Duplicate
// IDs are allowed; ID-keyed operations act on the first match. Functions take
// the inventory as an argument and return the updated value so ownership stays
// with the caller.
package inventory
