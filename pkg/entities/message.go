package entities

// Message is a single message from a channel history, as returned by the
// Discord REST API. The ID is an opaque snowflake used only as a pagination
// cursor, it is never parsed or compared.
type Message struct {
	ID          string       `json:"id"`
	Author      User         `json:"author"`
	Timestamp   string       `json:"timestamp"`
	Content     string       `json:"content"`
	Attachments []Attachment `json:"attachments"`
	Embeds      []Embed      `json:"embeds"`
}

type User struct {
	Username string `json:"username"`
}

type Attachment struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// Embed carries only the URL-bearing fields of a Discord embed object.
// Image, Thumbnail and Video are nil when the embed does not have them.
type Embed struct {
	URL       string      `json:"url,omitempty"`
	Image     *EmbedMedia `json:"image,omitempty"`
	Thumbnail *EmbedMedia `json:"thumbnail,omitempty"`
	Video     *EmbedMedia `json:"video,omitempty"`
}

type EmbedMedia struct {
	URL string `json:"url"`
}

func (m *Message) HasAttachments() bool {
	return len(m.Attachments) > 0
}

func (m *Message) HasEmbeds() bool {
	return len(m.Embeds) > 0
}
