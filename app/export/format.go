package export

import (
	"fmt"
	"strings"
	"time"

	e "nuclight.org/discord-fetcher/pkg/entities"
)

// FormatMessage renders a message as a multi-line text block:
//
//	[2024-05-01 13:37:00 UTC] alice: hello
//	  Attachments:
//	    - pic.png: https://cdn.example/pic.png
//	  Embeds: 1 embed(s)
//
// It never fails: an unparseable timestamp is emitted verbatim.
func FormatMessage(msg e.Message) string {
	var sb strings.Builder

	author := msg.Author.Username
	if author == "" {
		author = "Unknown"
	}

	sb.WriteString(fmt.Sprintf("[%s] %s: %s", formatTimestamp(msg.Timestamp), author, msg.Content))

	if msg.HasAttachments() {
		sb.WriteString("\n  Attachments:")
		for _, att := range msg.Attachments {
			filename := att.Filename
			if filename == "" {
				filename = "file"
			}
			sb.WriteString(fmt.Sprintf("\n    - %s: %s", filename, att.URL))
		}
	}

	if msg.HasEmbeds() {
		sb.WriteString(fmt.Sprintf("\n  Embeds: %d embed(s)", len(msg.Embeds)))
	}

	return sb.String()
}

func formatTimestamp(ts string) string {
	// the API uses a trailing Z or an explicit +00:00 offset
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}

	return t.UTC().Format("2006-01-02 15:04:05") + " UTC"
}
