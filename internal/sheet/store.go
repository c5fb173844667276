// Package sheet is the record store facade over the Google Sheets API.
// One spreadsheet tab holds every condominium record; the first row is the
// column header.
package sheet

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/evcraddock/condo-registry/internal/condo"
	"github.com/evcraddock/condo-registry/internal/metrics"
)

// DefaultTimeout bounds each outbound store call.
const DefaultTimeout = 10 * time.Second

// StoreError wraps a failed store operation with the operation name so the
// caller can report a retryable failure with context.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Row is one stored record keyed by column header. Blank cells are empty
// strings. Physical column order matters only on append, never on read.
type Row map[string]string

// Store appends and reads condominium records in a spreadsheet tab.
//
// Append has at-least-once semantics: there is no idempotency key, so a
// resubmission after a reported failure can double-append when the write
// actually landed before the error surfaced. The store does not retry.
type Store struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
	timeout       time.Duration
}

// New opens the store for one spreadsheet tab. Credentials come in through
// client options (option.WithCredentialsFile for a service account); tests
// pass an endpoint override instead.
func New(ctx context.Context, spreadsheetID, sheetName string, opts ...option.ClientOption) (*Store, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id is required")
	}
	if sheetName == "" {
		return nil, fmt.Errorf("sheet name is required")
	}

	opts = append([]option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}, opts...)
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}

	return &Store{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		timeout:       DefaultTimeout,
	}, nil
}

// Append serializes the record in the schema's column order and issues a
// single append call. A failure surfaces immediately as *StoreError; the
// caller decides whether to resubmit.
func (s *Store) Append(ctx context.Context, rec *condo.Record) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	vr := &sheets.ValueRange{Values: [][]interface{}{rec.Row()}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, s.sheetName, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		metrics.RecordAppends.WithLabelValues("error").Inc()
		return &StoreError{Op: "append", Err: err}
	}

	metrics.RecordAppends.WithLabelValues("ok").Inc()
	return nil
}

// ReadAll fetches every row from the tab and keys cells by the header row.
// The read is a single unpaginated fetch; table sizes are hundreds of rows,
// not millions. An empty or header-only tab yields no rows and no error.
func (s *Store) ReadAll(ctx context.Context) ([]Row, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.sheetName).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &StoreError{Op: "read", Err: err}
	}

	if len(resp.Values) < 2 {
		return nil, nil
	}

	header := make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		header[i] = cellString(cell)
	}

	rows := make([]Row, 0, len(resp.Values)-1)
	for _, cells := range resp.Values[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			if i < len(cells) {
				row[col] = cellString(cells[i])
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// cellString normalizes a spreadsheet cell to its string form. The API
// decodes numeric cells as float64.
func cellString(v interface{}) string {
	switch c := v.(type) {
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(c)
	case nil:
		return ""
	default:
		return fmt.Sprint(c)
	}
}
