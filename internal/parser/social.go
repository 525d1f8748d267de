package parser

import (
	"regexp"
	"strings"
)

var socialKeyToPlatform = map[string]struct {
	host  string
	label string
}{
	"twitter":   {"twitter.com", LabelTwitter},
	"x":         {"twitter.com", LabelTwitter},
	"instagram": {"instagram.com", LabelInstagram},
	"insta":     {"instagram.com", LabelInstagram},
	"ig":        {"instagram.com", LabelInstagram},
	"github":    {"github.com", LabelGitHub},
	"facebook":  {"facebook.com", LabelFacebook},
	"fb":        {"facebook.com", LabelFacebook},
	"youtube":   {"youtube.com", LabelYouTube},
	"yt":        {"youtube.com", LabelYouTube},
}

var socialHandlePattern = regexp.MustCompile(`(?i)\b(Twitter|X|Instagram|Insta|IG|GitHub|Facebook|FB|YouTube|YT)\s*:\s*@?([A-Za-z0-9_.\-]+)`)

// SocialHandleDetector recognizes "Key: handle" lines for a closed set of
// platform keys and emits a full profile URL.
type SocialHandleDetector struct{}

func (SocialHandleDetector) Name() string { return "social_handle" }

func (SocialHandleDetector) Detect(chunks []Chunk) []Scored[string] {
	var out []Scored[string]
	for _, c := range chunks {
		for _, m := range socialHandlePattern.FindAllStringSubmatch(c.Text, -1) {
			key := strings.ToLower(m[1])
			handle := strings.TrimPrefix(m[2], "@")
			platform, ok := socialKeyToPlatform[key]
			if !ok || handle == "" {
				continue
			}
			url := "https://" + platform.host + "/" + handle
			out = append(out, newScored(url, 0.9, platform.label, "social_handle"))
		}
	}
	return out
}

// socialHostLabel maps host substrings to labels for the reconciler's URL
// social classification step.
var socialHostLabel = []struct {
	substr string
	label  string
}{
	{"linkedin.com", LabelLinkedIn},
	{"xing.com", LabelXing},
	{"twitter.com", LabelTwitter},
	{"x.com", LabelTwitter},
	{"instagram.com", LabelInstagram},
	{"facebook.com", LabelFacebook},
	{"github.com", LabelGitHub},
	{"youtube.com", LabelYouTube},
	{"youtu.be", LabelYouTube},
}

// classifySocialURL returns the social label for a URL's host, or "" if
// none of the known social hosts match.
func classifySocialURL(url string) string {
	lower := strings.ToLower(url)
	for _, e := range socialHostLabel {
		if strings.Contains(lower, e.substr) {
			return e.label
		}
	}
	return ""
}
