// Package export renders fetched messages and writes the flat-text
// export files.
package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	e "nuclight.org/discord-fetcher/pkg/entities"
)

// WriteError is returned when an export file cannot be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

var separator = strings.Repeat("=", 80)

// WriteMessages writes the messages export: a 4-line header, then one
// rendered block per message separated by blank lines. The input batch
// is newest-first, the file is chronological, so blocks are emitted in
// reverse order. An empty batch still produces the full header.
func WriteMessages(path string, messages []e.Message) error {
	var sb strings.Builder

	writeHeader(&sb, "Discord Messages Export", "Total messages", len(messages))

	for i := len(messages) - 1; i >= 0; i-- {
		sb.WriteString(FormatMessage(messages[i]))
		sb.WriteString("\n\n")
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	return nil
}

// WriteLinks writes the links export: the same header shape, then one
// URL per line in extractor order.
func WriteLinks(path string, links []string) error {
	var sb strings.Builder

	writeHeader(&sb, "Extracted Links", "Total links", len(links))

	for _, link := range links {
		sb.WriteString(link)
		sb.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	return nil
}

func writeHeader(sb *strings.Builder, title, countLabel string, count int) {
	sb.WriteString(title + "\n")
	sb.WriteString(fmt.Sprintf("%s: %d\n", countLabel, count))
	sb.WriteString("Exported on: " + time.Now().Format("2006-01-02 15:04:05") + "\n")
	sb.WriteString(separator + "\n\n")
}
