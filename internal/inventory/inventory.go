package inventory

import "fmt"

// Record is one CD in the catalog.
type Record struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// String renders the record as an inventory row: id<TAB>title (by:artist).
func (r Record) String() string {
	return fmt.Sprintf("%d\t%s (by:%s)", r.ID, r.Title, r.Artist)
}

// Inventory is the ordered collection of records for a session.
type Inventory []Record

// Len returns the number of records.
func (inv Inventory) Len() int {
	return len(inv)
}

// Clone returns a copy that shares no backing storage with inv. A nil
// inventory clones to an empty, non-nil one.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	copy(out, inv)
	return out
}

// Append returns inv with record placed at the end. It never fails and does
// not check for duplicate IDs.
func Append(inv Inventory, record Record) Inventory {
	out := make(Inventory, len(inv), len(inv)+1)
	copy(out, inv)
	return append(out, record)
}

// RemoveByID removes the first record whose ID equals id. The boolean reports
// whether a record was removed; on a miss inv is returned unchanged.
func RemoveByID(inv Inventory, id int) (Inventory, bool) {
	for i, record := range inv {
		if record.ID != id {
			continue
		}
		out := make(Inventory, 0, len(inv)-1)
		out = append(out, inv[:i]...)
		return append(out, inv[i+1:]...), true
	}
	return inv, false
}
