// Package vocabulary loads reference corpora for the term-importance
// model. All file I/O stays in this package; the engine only ever sees an
// ordered collection of corpus-document strings.
package vocabulary

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// LoadCSV reads a vocabulary corpus from a CSV file, one reference
// document per row. Multi-field rows are joined with a single space so a
// row like `title,body` still contributes one corpus document. Ragged rows
// are tolerated, blank rows are skipped.
func LoadCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening vocabulary file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing vocabulary file %s: %w", path, err)
	}

	var corpus []string
	for _, record := range records {
		doc := strings.TrimSpace(strings.Join(record, " "))
		if doc == "" {
			continue
		}
		corpus = append(corpus, doc)
	}
	return corpus, nil
}
