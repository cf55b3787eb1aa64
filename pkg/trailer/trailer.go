// Package trailer classifies trailer links into playback strategies.
package trailer

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Strategy defines how a trailer link is played.
type Strategy string

const (
	// StrategyNone means there is no trailer.
	StrategyNone = Strategy("none")
	// StrategyEmbed plays the trailer in an embedded video-sharing player.
	StrategyEmbed = Strategy("embed")
	// StrategyDirectMedia plays a video file directly.
	StrategyDirectMedia = Strategy("direct_media")
	// StrategyExternalLink opens the link in a new context; it cannot be embedded.
	StrategyExternalLink = Strategy("external_link")
)

const embedURLFormat = "https://www.youtube.com/embed/%s?autoplay=1"

var (
	videoHosts     = []string{"youtube.com", "youtu.be"}
	shortLinkHost  = "youtu.be"
	mediaExtension = map[string]bool{
		".mp4":  true,
		".m4v":  true,
		".webm": true,
		".mov":  true,
		".ogv":  true,
	}
)

// Classification is the playback strategy derived from a trailer link.
type Classification struct {
	Strategy Strategy `json:"strategy"`
	// Source is the URL to play or open; empty for StrategyNone.
	Source string `json:"source,omitempty"`
	// VideoID is the extracted video identifier for StrategyEmbed.
	VideoID string `json:"videoId,omitempty"`
}

// Classify resolves a nullable trailer link.
func Classify(link *string) Classification {
	if link == nil {
		return Classification{Strategy: StrategyNone}
	}
	return ClassifyString(*link)
}

// ClassifyString resolves a trailer link. It never fails: links that cannot be
// embedded fall back to StrategyExternalLink.
func ClassifyString(link string) Classification {
	if strings.TrimSpace(link) == "" {
		return Classification{Strategy: StrategyNone}
	}

	lower := strings.ToLower(link)
	if matchesVideoHost(lower) {
		id := extractVideoID(link)
		if id == "" {
			return Classification{Strategy: StrategyExternalLink, Source: link}
		}
		return Classification{
			Strategy: StrategyEmbed,
			Source:   fmt.Sprintf(embedURLFormat, id),
			VideoID:  id,
		}
	}

	if mediaExtension[path.Ext(linkPath(lower))] {
		return Classification{Strategy: StrategyDirectMedia, Source: link}
	}
	return Classification{Strategy: StrategyExternalLink, Source: link}
}

func matchesVideoHost(lower string) bool {
	for _, h := range videoHosts {
		if strings.Contains(lower, h) {
			return true
		}
	}
	return false
}

// extractVideoID returns the path of a short link without its leading slash,
// or the "v" query parameter of a full link, or "" when the link cannot be
// parsed. Further path segments are kept as they are.
func extractVideoID(link string) string {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || u.Host == "" {
		return ""
	}
	if strings.Contains(strings.ToLower(u.Hostname()), shortLinkHost) {
		return strings.TrimPrefix(u.EscapedPath(), "/")
	}
	return strings.TrimSpace(u.Query().Get("v"))
}

// linkPath returns the path component of link, ignoring query and fragment.
func linkPath(link string) string {
	if u, err := url.Parse(link); err == nil {
		return u.Path
	}
	if i := strings.IndexAny(link, "?#"); i >= 0 {
		return link[:i]
	}
	return link
}
