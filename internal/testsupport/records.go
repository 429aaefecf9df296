package testsupport

import "cdinventory/internal/inventory"

// SampleInventory returns a small inventory that includes a duplicate ID.
func SampleInventory() inventory.Inventory {
	return inventory.Inventory{
		{ID: 101, Title: "Abbey Road", Artist: "The Beatles"},
		{ID: 102, Title: "Kind of Blue", Artist: "Miles Davis"},
		{ID: 101, Title: "Let It Be", Artist: "The Beatles"},
		{ID: -4, Title: "Ünïcødé\ttabs", Artist: ""},
	}
}
