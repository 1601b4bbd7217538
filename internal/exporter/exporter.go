// Package exporter writes the topics document out for backups and
// spreadsheets.
package exporter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/flipword/api/internal/model"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatCSV      = "csv"
	FormatMarkdown = "md"
)

type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown export format %q, use json, yaml, csv or md", e.Format)
}

// ParseFormat normalises a format name. "yml" and "markdown" are accepted.
func ParseFormat(name string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(name)); f {
	case FormatJSON, FormatYAML, FormatCSV, FormatMarkdown:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "markdown":
		return FormatMarkdown, nil
	default:
		return "", &UnknownFormatError{Format: name}
	}
}

func ContentType(format string) string {
	switch format {
	case FormatJSON:
		return "application/json; charset=utf-8"
	case FormatYAML:
		return "application/yaml; charset=utf-8"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	}
	return "application/octet-stream"
}

// Write encodes doc in format. JSON and YAML round-trip through the
// importer; CSV and Markdown are one-way.
func Write(w io.Writer, format string, doc model.TopicsDocument) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatCSV:
		return writeCSV(w, doc)
	case FormatMarkdown:
		return writeMarkdown(w, doc)
	}
	return &UnknownFormatError{Format: format}
}

func writeCSV(w io.Writer, doc model.TopicsDocument) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"topic", "title", "order", "id", "en", "zh", "pos", "enSent", "zhSent"}); err != nil {
		return err
	}
	for _, t := range doc.Topics {
		for i, word := range t.Words {
			row := []string{t.Slug, t.Title, strconv.Itoa(i + 1), word.ID, word.En, word.Zh, word.Pos, word.EnSent, word.ZhSent}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeMarkdown(w io.Writer, doc model.TopicsDocument) error {
	var buf bytes.Buffer
	for _, t := range doc.Topics {
		fmt.Fprintf(&buf, "# %s\n\n", t.Title)
		fmt.Fprintf(&buf, "**Slug:** %s\n\n", t.Slug)
		for i, word := range t.Words {
			fmt.Fprintf(&buf, "### %d. %s (%s) %s\n\n", i+1, word.En, word.Pos, word.Zh)
			fmt.Fprintf(&buf, "%s\n\n%s\n\n", word.EnSent, word.ZhSent)
		}
		buf.WriteString("---\n\n")
	}
	_, err := w.Write(buf.Bytes())
	return err
}
