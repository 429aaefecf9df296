package storage

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"unicode/utf8"

	"cdinventory/internal/inventory"
)

// snapshotRecord is the on-disk form of a record in the file backend.
type snapshotRecord struct {
	ID     int          `json:"id"`
	Title  snapshotText `json:"title"`
	Artist snapshotText `json:"artist"`
}

// snapshotText is a string that survives a JSON round trip byte for byte.
// Valid UTF-8 is written as a plain JSON string; anything else is written as
// {"base64": "..."} since encoding/json would replace the bad bytes.
type snapshotText string

type rawText struct {
	Base64 string `json:"base64"`
}

func (t snapshotText) MarshalJSON() ([]byte, error) {
	if utf8.ValidString(string(t)) {
		return json.Marshal(string(t))
	}
	return json.Marshal(rawText{Base64: base64.StdEncoding.EncodeToString([]byte(t))})
}

func (t *snapshotText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = snapshotText(s)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var raw struct {
		Base64 *string `json:"base64"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Base64 == nil {
		return errors.New("text must be a string or a base64 object")
	}
	decoded, err := base64.StdEncoding.DecodeString(*raw.Base64)
	if err != nil {
		return err
	}
	*t = snapshotText(decoded)
	return nil
}

func encodeSnapshot(inv inventory.Inventory) ([]byte, error) {
	records := make([]snapshotRecord, 0, inv.Len())
	for _, r := range inv {
		records = append(records, snapshotRecord{ID: r.ID, Title: snapshotText(r.Title), Artist: snapshotText(r.Artist)})
	}
	return json.MarshalIndent(records, "", "  ")
}

func decodeSnapshot(data []byte) (inventory.Inventory, error) {
	inv := inventory.Inventory{}
	if len(bytes.TrimSpace(data)) == 0 {
		return inv, nil
	}
	var records []snapshotRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	for _, r := range records {
		inv = append(inv, inventory.Record{ID: r.ID, Title: string(r.Title), Artist: string(r.Artist)})
	}
	return inv, nil
}
