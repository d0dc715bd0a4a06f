package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/handiism/rtk-site/internal/catalog/dto"
	"github.com/handiism/rtk-site/internal/model"
	"github.com/sirupsen/logrus"
)

// errNotArray is wrapped in an ErrInvalidShape LoadError when the document
// root is valid JSON but not an array.
var errNotArray = errors.New("document root is not an array")

// Parser turns the catalog document into normalized releases.
//
// The Parser is the single place where the loosely typed catalog rows are
// validated. After parsing, every model.Release has all fields set and all
// derived fields computed.
//
// Example usage:
//
//	parser := NewParser(logger)
//	releases, err := parser.Parse(body)
//	if err != nil {
//	    // body is not a JSON array
//	}
type Parser struct {
	log logrus.FieldLogger
}

// NewParser creates a Parser. A nil logger discards warnings.
func NewParser(log logrus.FieldLogger) *Parser {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Parser{log: log}
}

// Parse decodes a catalog document.
//
// This method performs the following steps:
//  1. Checks that the root is a JSON array
//  2. Skips elements that are not JSON objects (logged as warnings)
//  3. Coerces every field to a string
//  4. Normalizes each row with model.NewRelease
//
// The returned list keeps document order and includes every type,
// album tracks included.
//
// Returns errNotArray (or the JSON decoding error) if the document has
// the wrong shape.
func (p *Parser) Parse(data []byte) ([]model.Release, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty document: %w", errNotArray)
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(trimmed, &rows); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, errNotArray
		}
		return nil, err
	}
	if trimmed[0] != '[' {
		// "null" decodes into a nil slice without error
		return nil, errNotArray
	}

	releases := make([]model.Release, 0, len(rows))
	for i, row := range rows {
		raw, ok := p.parseRow(i, row)
		if !ok {
			continue
		}

		release := model.NewRelease(raw)
		if raw.ReleaseDate != "" && !release.HasDate() {
			p.log.WithFields(logrus.Fields{
				"id":   raw.ID,
				"date": raw.ReleaseDate,
			}).Warn("Invalid release date, showing TBD")
		}

		releases = append(releases, release)
	}

	return releases, nil
}

// parseRow decodes one array element. Non-object elements are skipped.
func (p *Parser) parseRow(index int, row json.RawMessage) (model.RawRelease, bool) {
	row = bytes.TrimSpace(row)
	if len(row) == 0 || row[0] != '{' {
		p.log.WithField("index", index).Warn("Skipping catalog row that is not an object")
		return model.RawRelease{}, false
	}

	var jr dto.JSONRelease
	if err := json.Unmarshal(row, &jr); err != nil {
		p.log.WithFields(logrus.Fields{
			"index": index,
			"error": err,
		}).Warn("Skipping unreadable catalog row")
		return model.RawRelease{}, false
	}

	return jr.ToRawRelease(), true
}
