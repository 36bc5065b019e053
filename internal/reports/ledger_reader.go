package reports

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/SscSPs/ops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	colDate    = 0
	colAccount = 1
	colDebit   = 3
	colCredit  = 4
)

// LedgerReader reads ledger entries from every *.csv file in a directory.
// Files have no header; columns are date,account,<ignored>,debit,credit.
type LedgerReader struct {
	dir string
}

// NewLedgerReader creates a reader over dir.
func NewLedgerReader(dir string) *LedgerReader {
	return &LedgerReader{dir: dir}
}

// Dir returns the directory the reader scans.
func (r *LedgerReader) Dir() string {
	return r.dir
}

// Files lists the ledger files of the directory sorted by name.
func (r *LedgerReader) Files() ([]string, error) {
	dirEntries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger directory %s: %w", r.dir, err)
	}

	files := make([]string, 0, len(dirEntries))
	for _, e := range dirEntries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		files = append(files, filepath.Join(r.dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Scan calls fn once for every entry of every ledger file. It stops at the first
// error returned by fn, a read failure, or a cancelled ctx.
func (r *LedgerReader) Scan(ctx context.Context, fn func(domain.LedgerEntry) error) error {
	files, err := r.Files()
	if err != nil {
		return err
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := scanFile(path, fn); err != nil {
			return err
		}
	}
	return nil
}

func scanFile(path string, fn func(domain.LedgerEntry) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open ledger file %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read ledger file %s: %w", filepath.Base(path), err)
		}

		// Lines without an account column carry nothing to post.
		if len(record) <= colAccount {
			continue
		}
		line, _ := cr.FieldPos(0)

		entry := domain.LedgerEntry{
			Date:    strings.TrimSpace(field(record, colDate)),
			Account: strings.TrimSpace(field(record, colAccount)),
			Debit:   parseAmount(field(record, colDebit)),
			Credit:  parseAmount(field(record, colCredit)),
			Source:  filepath.Base(path),
			Line:    line,
		}
		if err := fn(entry); err != nil {
			return err
		}
	}
}

func field(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}

// parseAmount parses a ledger amount; anything unparseable counts as zero.
func parseAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}
