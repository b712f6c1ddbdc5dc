// Package links pulls URLs out of fetched message batches.
package links

import (
	"regexp"

	e "nuclight.org/discord-fetcher/pkg/entities"
)

// urlPattern matches http(s) URLs: a run of letters, digits, the $-_
// character range, @.&+!*(), and %XX escapes. The $-_ range admits /,
// ?, = and most other punctuation, so a trailing comma or paren is
// absorbed into the match.
var urlPattern = regexp.MustCompile(`https?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*(),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`)

// Extract collects every URL referenced by the messages, walking them in
// the given (fetch) order. Per message: URLs found in the text content,
// then attachment URLs, then embed direct/image/thumbnail/video URLs.
// Duplicates are dropped globally, first occurrence wins.
func Extract(messages []e.Message) []string {
	var links []string

	for _, msg := range messages {
		links = append(links, urlPattern.FindAllString(msg.Content, -1)...)

		for _, att := range msg.Attachments {
			if att.URL != "" {
				links = append(links, att.URL)
			}
		}

		for _, embed := range msg.Embeds {
			if embed.URL != "" {
				links = append(links, embed.URL)
			}
			if embed.Image != nil {
				links = append(links, embed.Image.URL)
			}
			if embed.Thumbnail != nil {
				links = append(links, embed.Thumbnail.URL)
			}
			if embed.Video != nil {
				links = append(links, embed.Video.URL)
			}
		}
	}

	seen := make(map[string]struct{}, len(links))
	unique := make([]string, 0, len(links))

	for _, link := range links {
		if _, exists := seen[link]; exists {
			continue
		}
		seen[link] = struct{}{}
		unique = append(unique, link)
	}

	return unique
}
