package inventory

import (
	"reflect"
	"testing"
)

func sample() Inventory {
	return Inventory{
		{ID: 1, Title: "Abbey Road", Artist: "The Beatles"},
		{ID: 2, Title: "Kind of Blue", Artist: "Miles Davis"},
		{ID: 3, Title: "Blue", Artist: "Joni Mitchell"},
	}
}

func TestRecordString(t *testing.T) {
	r := Record{ID: 101, Title: "Abbey Road", Artist: "The Beatles"}
	if got, want := r.String(), "101\tAbbey Road (by:The Beatles)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestAppendPlacesRecordAtEnd(t *testing.T) {
	inv := sample()
	rec := Record{ID: 4, Title: "Rumours", Artist: "Fleetwood Mac"}

	out := Append(inv, rec)
	if out.Len() != inv.Len()+1 {
		t.Fatalf("expected length %d, got %d", inv.Len()+1, out.Len())
	}
	if !reflect.DeepEqual(out[:inv.Len()], inv) {
		t.Fatalf("prefix changed: %v", out)
	}
	if out[out.Len()-1] != rec {
		t.Fatalf("expected %v at end, got %v", rec, out[out.Len()-1])
	}
}

func TestAppendToEmptyAndDuplicateIDs(t *testing.T) {
	var inv Inventory
	inv = Append(inv, Record{ID: 7, Title: "A", Artist: "X"})
	inv = Append(inv, Record{ID: 7, Title: "B", Artist: "Y"})
	if inv.Len() != 2 {
		t.Fatalf("expected duplicates to be kept, got %v", inv)
	}
}

func TestAppendDoesNotAliasCallerSlice(t *testing.T) {
	base := make(Inventory, 1, 4)
	base[0] = Record{ID: 1}
	a := Append(base, Record{ID: 2})
	b := Append(base, Record{ID: 3})
	if a[1].ID != 2 || b[1].ID != 3 {
		t.Fatalf("appends share storage: a=%v b=%v", a, b)
	}
}

func TestRemoveByID(t *testing.T) {
	tests := []struct {
		name    string
		inv     Inventory
		id      int
		want    Inventory
		removed bool
	}{
		{
			name:    "middle",
			inv:     sample(),
			id:      2,
			want:    Inventory{sample()[0], sample()[2]},
			removed: true,
		},
		{
			name:    "first match only",
			inv:     Inventory{{ID: 5, Title: "first"}, {ID: 6}, {ID: 5, Title: "second"}},
			id:      5,
			want:    Inventory{{ID: 6}, {ID: 5, Title: "second"}},
			removed: true,
		},
		{
			name:    "miss",
			inv:     sample(),
			id:      42,
			want:    sample(),
			removed: false,
		},
		{
			name:    "empty",
			inv:     nil,
			id:      1,
			want:    nil,
			removed: false,
		},
		{
			name:    "last remaining",
			inv:     Inventory{{ID: 9}},
			id:      9,
			want:    Inventory{},
			removed: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, removed := RemoveByID(tc.inv, tc.id)
			if removed != tc.removed {
				t.Fatalf("removed = %v, want %v", removed, tc.removed)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRemoveByIDLeavesInputIntact(t *testing.T) {
	inv := sample()
	_, _ = RemoveByID(inv, 1)
	if !reflect.DeepEqual(inv, sample()) {
		t.Fatalf("input mutated: %v", inv)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	inv := sample()
	cp := inv.Clone()
	cp[0].Title = "changed"
	if inv[0].Title == "changed" {
		t.Fatal("clone shares storage with source")
	}
	if Inventory(nil).Clone() == nil {
		t.Fatal("expected non-nil clone of nil inventory")
	}
}
