package storage

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"time"
)

// utf8BOM prefixes the store so spreadsheet tools pick the right encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func encodeNotes(notes []Note) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(Columns); err != nil {
		return nil, err
	}
	for _, n := range notes {
		record := []string{
			n.Subject,
			n.Title,
			n.Content,
			n.Summary,
			n.Date.Format(DateLayout),
			n.AudioFile,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// decodeNotes parses a store. An empty input is an empty store; anything
// else must start with the exact header.
func decodeNotes(data []byte) ([]Note, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = len(Columns)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrCorruptStore, err)
	}
	if !slices.Equal(header, Columns) {
		return nil, fmt.Errorf("%w: unexpected header %v", ErrCorruptStore, header)
	}

	var notes []Note
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
		}

		date, err := time.ParseInLocation(DateLayout, record[4], time.Local)
		if err != nil {
			line, _ := reader.FieldPos(4)
			return nil, fmt.Errorf("%w: line %d: date %q", ErrCorruptStore, line, record[4])
		}

		notes = append(notes, Note{
			Subject:   record[0],
			Title:     record[1],
			Content:   record[2],
			Summary:   record[3],
			Date:      date,
			AudioFile: record[5],
		})
	}

	return notes, nil
}
