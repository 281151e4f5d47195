package core

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	m "github.com/Live2Bloom/predictive-risk-engine/models"
)

// LoadReturns tokenizes identifier,value rows from r into the store.
// Malformed rows (missing field, unparseable value, oversized identifier)
// are skipped silently per the input contract; only a count is logged.
func (rc *RunContext) LoadReturns(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	loaded, skipped := 0, 0

	for scanner.Scan() {
		record, ok := parseRecord(scanner.Text())
		if !ok {
			skipped++
			continue
		}

		rc.Store.Upsert(record.Identifier, record.Value)
		loaded++
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input rows: %w", err)
	}

	log.Printf("Ingestion complete: %d rows loaded, %d skipped", loaded, skipped)
	return nil
}

// LoadReturnsFile ingests a CSV file from disk.
func (rc *RunContext) LoadReturnsFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening input data: %w", err)
	}
	defer f.Close()

	return rc.LoadReturns(f)
}

// parseRecord splits one raw line into a RawRecord. Trailing \r\n is
// stripped before the identifier is used; otherwise "SPY\r" and "SPY" would
// hash apart. Only the first two fields matter, trailing fields are ignored.
func parseRecord(line string) (m.RawRecord, bool) {
	line = strings.TrimRight(line, "\r\n")

	identifier, rest, found := strings.Cut(line, ",")
	if !found || identifier == "" || len(identifier) > MaxIdentifierLen {
		return m.RawRecord{}, false
	}

	valueField, _, _ := strings.Cut(rest, ",")
	value, err := strconv.ParseFloat(strings.TrimSpace(valueField), 64)
	if err != nil {
		return m.RawRecord{}, false
	}

	return m.RawRecord{Identifier: identifier, Value: value}, true
}
