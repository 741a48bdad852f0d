package export

import (
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"

	"github.com/greenbag/intervention-cli/internal/model"
)

// EncodeJSON writes rows as an indented JSON array. A nil slice encodes as
// an empty array.
func EncodeJSON(w io.Writer, rows []model.CustomerRecord) error {
	if rows == nil {
		rows = []model.CustomerRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return eris.Wrap(err, "export: encode json")
	}
	return nil
}

// DecodeJSON reads an array written by EncodeJSON.
func DecodeJSON(r io.Reader) ([]model.CustomerRecord, error) {
	var rows []model.CustomerRecord
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, eris.Wrap(err, "export: decode json")
	}
	return rows, nil
}
