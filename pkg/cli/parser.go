package cli

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Record map[string]string

// parseWords reads every word of the file at path and hands it to onWord.
// The format follows the extension: .csv, .tsv, .json, anything else is plain text
// with one word per line.
func parseWords(path string, wordKey string, onWord func(word string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return parseCsv(file, ',', wordKey, onWord)
	case ".tsv":
		return parseCsv(file, '\t', wordKey, onWord)
	case ".json":
		return parseJson(file, wordKey, onWord)
	default:
		return parseText(file, onWord)
	}
}

// parseText reads one word per line; blank lines and lines starting with '#' are skipped.
func parseText(r io.Reader, onWord func(word string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := onWord(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseCsv(r io.Reader, separator rune, wordKey string, onWord func(word string) error) error {
	reader := csv.NewReader(r)
	reader.Comma = separator

	// Read the header to build the key mapping
	headers, err := reader.Read()
	if err != nil {
		return err
	}
	if !contains(headers, wordKey) {
		return fmt.Errorf("column %q not found in header %v", wordKey, headers)
	}

	line := 1
	for {
		recordData, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		line++

		record := make(Record)
		for i, value := range recordData {
			record[headers[i]] = value
		}

		word, err := wordFromRecord(record, wordKey)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := onWord(word); err != nil {
			return err
		}
	}
}

func parseJson(r io.Reader, wordKey string, onWord func(word string) error) error {
	decoder := json.NewDecoder(r)

	// Read opening bracket of the array
	if _, err := decoder.Token(); err != nil {
		return err
	}

	// Decode each element of the array
	for i := 0; decoder.More(); i++ {
		data := Record{}
		if err := decoder.Decode(&data); err != nil {
			return err
		}
		word, err := wordFromRecord(data, wordKey)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		if err := onWord(word); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	_, err := decoder.Token()
	return err
}

func wordFromRecord(record Record, wordKey string) (string, error) {
	word, found := record[wordKey]
	if !found {
		return "", fmt.Errorf("no %q key in record: %v", wordKey, record)
	}
	return strings.TrimSpace(word), nil
}

func contains(s []string, e string) bool {
	for _, a := range s {
		if a == e {
			return true
		}
	}
	return false
}
