package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	e "nuclight.org/discord-fetcher/pkg/entities"
)

func TestFormatMessagePlain(t *testing.T) {
	msg := e.Message{
		Author:    e.User{Username: "alice"},
		Timestamp: "2024-05-01T13:37:00.123000+00:00",
		Content:   "hello world",
	}

	assert.Equal(t, "[2024-05-01 13:37:00 UTC] alice: hello world", FormatMessage(msg))
}

func TestFormatMessageZuluTimestamp(t *testing.T) {
	msg := e.Message{
		Author:    e.User{Username: "bob"},
		Timestamp: "2024-05-01T13:37:00Z",
		Content:   "zulu",
	}

	assert.Equal(t, "[2024-05-01 13:37:00 UTC] bob: zulu", FormatMessage(msg))
}

func TestFormatMessageBadTimestampFallsBack(t *testing.T) {
	msg := e.Message{
		Author:    e.User{Username: "carol"},
		Timestamp: "not-a-timestamp",
		Content:   "hi",
	}

	assert.Equal(t, "[not-a-timestamp] carol: hi", FormatMessage(msg))
}

func TestFormatMessageUnknownAuthor(t *testing.T) {
	msg := e.Message{
		Timestamp: "2024-05-01T13:37:00Z",
		Content:   "ghost",
	}

	assert.True(t, strings.Contains(FormatMessage(msg), "] Unknown: ghost"))
}

func TestFormatMessageAttachments(t *testing.T) {
	msg := e.Message{
		Author:    e.User{Username: "dave"},
		Timestamp: "2024-05-01T13:37:00Z",
		Content:   "files",
		Attachments: []e.Attachment{
			{Filename: "pic.png", URL: "https://cdn.example/pic.png"},
			{URL: "https://cdn.example/unnamed"},
		},
	}

	got := FormatMessage(msg)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "[2024-05-01 13:37:00 UTC] dave: files", lines[0])
	assert.Equal(t, "  Attachments:", lines[1])
	assert.Equal(t, "    - pic.png: https://cdn.example/pic.png", lines[2])
	assert.Equal(t, "    - file: https://cdn.example/unnamed", lines[3])
}

func TestFormatMessageEmbeds(t *testing.T) {
	msg := e.Message{
		Author:    e.User{Username: "erin"},
		Timestamp: "2024-05-01T13:37:00Z",
		Content:   "embeds",
		Embeds:    []e.Embed{{URL: "https://a.example"}, {URL: "https://b.example"}},
	}

	got := FormatMessage(msg)
	assert.True(t, strings.HasSuffix(got, "\n  Embeds: 2 embed(s)"))
}

func TestFormatMessageShape(t *testing.T) {
	msgs := []e.Message{
		{Author: e.User{Username: "a"}, Timestamp: "2024-05-01T13:37:00Z", Content: "x"},
		{Author: e.User{Username: "b"}, Timestamp: "bad", Content: ""},
		{Author: e.User{}, Timestamp: "2024-05-01T13:37:00Z", Content: "with: colon"},
	}

	for _, msg := range msgs {
		got := FormatMessage(msg)
		assert.True(t, strings.HasPrefix(got, "["), "block must start with a timestamp bracket: %q", got)
		assert.Contains(t, strings.Split(got, "\n")[0], ": ")
	}
}
