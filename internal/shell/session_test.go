package shell

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"cdinventory/internal/inventory"
	"cdinventory/internal/storage"
	"cdinventory/internal/testsupport"
)

type memoryGateway struct {
	stored  inventory.Inventory
	exists  bool
	loadErr error
	saveErr error
	loads   int
	saves   int
}

func (m *memoryGateway) Load(context.Context) (inventory.Inventory, error) {
	m.loads++
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if !m.exists {
		return nil, storage.ErrNotFound
	}
	return m.stored.Clone(), nil
}

func (m *memoryGateway) Save(_ context.Context, inv inventory.Inventory) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.stored = inv.Clone()
	m.exists = true
	return nil
}

func (m *memoryGateway) Location() string { return "memory" }

func (m *memoryGateway) Close() error { return nil }

func runSession(t *testing.T, gw storage.Gateway, input string) (*Session, string) {
	t.Helper()
	var out bytes.Buffer
	s := New(strings.NewReader(input), &out, gw, nil)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return s, out.String()
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

func TestAbbeyRoadSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CDInventory.dat")

	_, out := runSession(t, storage.NewFile(path, nil), lines(
		"a", "101", "Abbey Road", "The Beatles",
		"i",
		"s", "y",
		"x",
	))
	row := "101\tAbbey Road (by:The Beatles)"
	if !strings.Contains(out, "File not found") {
		t.Fatalf("expected first run to report missing file, got:\n%s", out)
	}
	if !strings.Contains(out, row) {
		t.Fatalf("expected row %q in output:\n%s", row, out)
	}

	s, out := runSession(t, storage.NewFile(path, nil), lines("i", "x"))
	if strings.Contains(out, "File not found") {
		t.Fatalf("expected snapshot to exist on restart:\n%s", out)
	}
	if strings.Count(out, row) != 1 {
		t.Fatalf("expected exactly one row after restart:\n%s", out)
	}
	want := inventory.Inventory{{ID: 101, Title: "Abbey Road", Artist: "The Beatles"}}
	if !reflect.DeepEqual(s.Inventory(), want) {
		t.Fatalf("unexpected inventory %v", s.Inventory())
	}
}

func TestAddRejectsNonIntegerID(t *testing.T) {
	gw := &memoryGateway{}
	s, out := runSession(t, gw, lines(
		"a", "abc", "7", "Blue", "Joni Mitchell",
		"x",
	))

	if !strings.Contains(out, "Not an integer") {
		t.Fatalf("expected format diagnostic:\n%s", out)
	}
	if !strings.Contains(out, `parsing "abc"`) {
		t.Fatalf("expected parse error detail:\n%s", out)
	}
	if strings.Count(out, "Enter ID: ") != 2 {
		t.Fatalf("expected id to be re-prompted once:\n%s", out)
	}
	want := inventory.Inventory{{ID: 7, Title: "Blue", Artist: "Joni Mitchell"}}
	if !reflect.DeepEqual(s.Inventory(), want) {
		t.Fatalf("unexpected inventory %v", s.Inventory())
	}
}

func TestAddTrimsTextFields(t *testing.T) {
	s, _ := runSession(t, &memoryGateway{}, lines("a", " 12 ", "  Blue Train ", " John Coltrane  ", "x"))
	want := inventory.Inventory{{ID: 12, Title: "Blue Train", Artist: "John Coltrane"}}
	if !reflect.DeepEqual(s.Inventory(), want) {
		t.Fatalf("unexpected inventory %v", s.Inventory())
	}
}

func TestInvalidMenuChoiceIsReprompted(t *testing.T) {
	_, out := runSession(t, &memoryGateway{}, lines("q", "", "load please", "X"))
	prompt := "Which operation would you like to perform?"
	if got := strings.Count(out, prompt); got != 4 {
		t.Fatalf("expected 4 prompts, got %d:\n%s", got, out)
	}
	if strings.Contains(out, "General Error") {
		t.Fatalf("invalid input must never reach dispatch:\n%s", out)
	}
}

func TestDeleteRemovesFirstMatchOnly(t *testing.T) {
	gw := &memoryGateway{exists: true, stored: testsupport.SampleInventory()}
	s, out := runSession(t, gw, lines("d", "nope", "101", "x"))

	if !strings.Contains(out, "Not an integer") {
		t.Fatalf("expected format diagnostic for bad id:\n%s", out)
	}
	if !strings.Contains(out, "The CD was removed") {
		t.Fatalf("expected removal notice:\n%s", out)
	}
	want := testsupport.SampleInventory()[1:]
	if !reflect.DeepEqual(s.Inventory(), want) {
		t.Fatalf("unexpected inventory %v", s.Inventory())
	}
}

func TestDeleteMissReportsNotFound(t *testing.T) {
	gw := &memoryGateway{exists: true, stored: testsupport.SampleInventory()}
	s, out := runSession(t, gw, lines("d", "999", "x"))

	if !strings.Contains(out, "Could not find this CD!") {
		t.Fatalf("expected not-found notice:\n%s", out)
	}
	if !reflect.DeepEqual(s.Inventory(), testsupport.SampleInventory()) {
		t.Fatalf("inventory changed on miss: %v", s.Inventory())
	}
}

func TestSaveRequiresConfirmation(t *testing.T) {
	gw := &memoryGateway{}
	_, out := runSession(t, gw, lines("a", "1", "A", "B", "s", "n", "", "x"))

	if gw.saves != 0 {
		t.Fatalf("expected no save, got %d", gw.saves)
	}
	if !strings.Contains(out, "The inventory was NOT saved to file.") {
		t.Fatalf("expected not-saved notice:\n%s", out)
	}

	gw = &memoryGateway{}
	runSession(t, gw, lines("a", "1", "A", "B", "s", " Y ", "x"))
	if gw.saves != 1 {
		t.Fatalf("expected one save, got %d", gw.saves)
	}
	if gw.stored.Len() != 1 {
		t.Fatalf("expected stored record, got %v", gw.stored)
	}
}

func TestSaveFailureIsReported(t *testing.T) {
	gw := &memoryGateway{saveErr: errors.New("disk full")}
	s, out := runSession(t, gw, lines("a", "1", "A", "B", "s", "y", "x"))

	if !strings.Contains(out, "Could not save inventory: disk full") {
		t.Fatalf("expected save failure notice:\n%s", out)
	}
	if s.Inventory().Len() != 1 {
		t.Fatalf("working inventory should survive a failed save: %v", s.Inventory())
	}
}

func TestExitDoesNotSave(t *testing.T) {
	gw := &memoryGateway{}
	runSession(t, gw, lines("a", "1", "A", "B", "x"))
	if gw.saves != 0 {
		t.Fatalf("exit must not save, got %d saves", gw.saves)
	}
}

func TestReloadRequiresLiteralYes(t *testing.T) {
	gw := &memoryGateway{exists: true, stored: inventory.Inventory{{ID: 1, Title: "Stored", Artist: "S"}}}
	s, out := runSession(t, gw, lines(
		"a", "2", "Unsaved", "U",
		"l", "y", "",
		"x",
	))
	if !strings.Contains(out, "canceling... Inventory data NOT reloaded.") {
		t.Fatalf("expected cancel notice:\n%s", out)
	}
	if s.Inventory().Len() != 2 {
		t.Fatalf("declined reload changed inventory: %v", s.Inventory())
	}

	s, out = runSession(t, gw, lines(
		"a", "2", "Unsaved", "U",
		"l", "YES",
		"x",
	))
	if !strings.Contains(out, "reloading...") {
		t.Fatalf("expected reload notice:\n%s", out)
	}
	want := inventory.Inventory{{ID: 1, Title: "Stored", Artist: "S"}}
	if !reflect.DeepEqual(s.Inventory(), want) {
		t.Fatalf("expected reloaded inventory %v, got %v", want, s.Inventory())
	}
}

func TestReloadConfirmationIgnoresSurroundingSpace(t *testing.T) {
	for _, tc := range []struct {
		answer string
		reload bool
	}{
		{answer: "  Yes\t", reload: true},
		{answer: "yess", reload: false},
		{answer: "y es", reload: false},
	} {
		t.Run(tc.answer, func(t *testing.T) {
			gw := &memoryGateway{exists: true, stored: inventory.Inventory{{ID: 1, Title: "Stored", Artist: "S"}}}
			input := []string{"a", "2", "Unsaved", "U", "l", tc.answer}
			if !tc.reload {
				input = append(input, "")
			}
			s, out := runSession(t, gw, lines(append(input, "x")...))

			if got := strings.Contains(out, "reloading..."); got != tc.reload {
				t.Fatalf("answer %q: reload=%v, want %v\n%s", tc.answer, got, tc.reload, out)
			}
			wantLen := 2
			if tc.reload {
				wantLen = 1
			}
			if s.Inventory().Len() != wantLen {
				t.Fatalf("answer %q: inventory %v", tc.answer, s.Inventory())
			}
		})
	}
}

func TestReloadWithMissingFileKeepsInventory(t *testing.T) {
	gw := &memoryGateway{}
	s, out := runSession(t, gw, lines("a", "5", "T", "A", "l", "yes", "x"))

	if strings.Count(out, "File not found") != 2 {
		t.Fatalf("expected not-found on start and reload:\n%s", out)
	}
	if s.Inventory().Len() != 1 {
		t.Fatalf("missing file must not clear inventory: %v", s.Inventory())
	}
}

func TestCorruptSnapshotIsReported(t *testing.T) {
	gw := &memoryGateway{loadErr: errors.New("parse snapshot: bad data")}
	s, out := runSession(t, gw, lines("x"))

	if !strings.Contains(out, "Could not load inventory: parse snapshot: bad data") {
		t.Fatalf("expected load failure notice:\n%s", out)
	}
	if s.Inventory().Len() != 0 {
		t.Fatalf("expected empty inventory, got %v", s.Inventory())
	}
}

func TestEndOfInputEndsSession(t *testing.T) {
	tests := []string{
		"",
		"a\n",
		"a\n1\nTitle\n",
		"d\n",
		"s\n",
		"l\n",
		"q\nz\n",
	}
	for _, input := range tests {
		t.Run(strings.ReplaceAll(input, "\n", "|"), func(t *testing.T) {
			gw := &memoryGateway{}
			runSession(t, gw, input)
			if gw.saves != 0 {
				t.Fatalf("unexpected save on closed input")
			}
		})
	}
}

func TestFinalLineWithoutNewline(t *testing.T) {
	s, _ := runSession(t, &memoryGateway{}, "a\n3\nT\nA\nx")
	if s.Inventory().Len() != 1 {
		t.Fatalf("expected record from unterminated input, got %v", s.Inventory())
	}
}

func TestListRendersBanners(t *testing.T) {
	gw := &memoryGateway{exists: true, stored: inventory.Inventory{{ID: 3, Title: "Blue", Artist: "Joni Mitchell"}}}
	_, out := runSession(t, gw, lines("i", "x"))

	want := strings.Join([]string{
		"======= The Current Inventory: =======",
		"ID\tCD Title (by: Artist)",
		"",
		"3\tBlue (by:Joni Mitchell)",
		"======================================",
	}, "\n")
	if !strings.Contains(out, want) {
		t.Fatalf("expected listing block:\n%s\ngot:\n%s", want, out)
	}
	if strings.Contains(out, ansiBlue) {
		t.Fatal("expected no color codes when output is not a terminal")
	}
}

func TestDispatchFallthrough(t *testing.T) {
	var out bytes.Buffer
	s := New(strings.NewReader(""), &out, &memoryGateway{}, nil)
	if err := s.dispatch(context.Background(), command("?")); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if !strings.Contains(out.String(), "General Error") {
		t.Fatalf("expected generic notice, got %q", out.String())
	}
}
