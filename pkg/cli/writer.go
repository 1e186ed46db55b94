package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/khalid-nowaf/wordtrie/pkg/trie"
)

var formats = []string{"text", "csv", "tsv", "json"}

type Writer interface {
	Write(words trie.WordSet) error
}

// NewWriter returns the writer for format, writing records keyed by wordKey.
func NewWriter(format string, out io.Writer, wordKey string) (Writer, error) {
	switch strings.ToLower(format) {
	case "text":
		return TextWriter{out: out}, nil
	case "csv":
		return CsvWriter{out: out, wordKey: wordKey}, nil
	case "tsv":
		return CsvWriter{out: out, wordKey: wordKey, isTSV: true}, nil
	case "json":
		return JsonWriter{out: out, wordKey: wordKey}, nil
	}
	return nil, fmt.Errorf("unknown format %q, expected one of %v", format, formats)
}

type TextWriter struct {
	out io.Writer
}

func (w TextWriter) Write(words trie.WordSet) error {
	for _, word := range words {
		if _, err := fmt.Fprintln(w.out, word); err != nil {
			return err
		}
	}
	return nil
}

type JsonWriter struct {
	out     io.Writer
	wordKey string
}

func (w JsonWriter) Write(words trie.WordSet) error {
	encoder := json.NewEncoder(w.out)

	if _, err := w.out.Write([]byte("[")); err != nil {
		return err
	}
	for i, word := range words {
		if i > 0 {
			if _, err := w.out.Write([]byte(",")); err != nil {
				return err
			}
		}
		if err := encoder.Encode(Record{w.wordKey: word}); err != nil {
			return err
		}
	}
	_, err := w.out.Write([]byte("]\n"))
	return err
}

type CsvWriter struct {
	out     io.Writer
	wordKey string
	isTSV   bool
}

func (w CsvWriter) Write(words trie.WordSet) error {
	writer := csv.NewWriter(w.out)
	if w.isTSV {
		writer.Comma = '\t'
	}

	if err := writer.Write([]string{w.wordKey}); err != nil {
		return err
	}
	for _, word := range words {
		if err := writer.Write([]string{word}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
