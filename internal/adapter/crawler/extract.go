package crawler

import (
	"html"
	"regexp"
	"strings"
)

var (
	reH1        = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	reTitleTag  = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	reScript    = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	reStyle     = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	reTag       = regexp.MustCompile(`(?s)<[^>]*>`)
	reSpaceRuns = regexp.MustCompile(`\s+`)
)

// ExtractTitle pulls the thread title from the first <h1>, falling back
// to <title>, then to a fixed placeholder.
func ExtractTitle(page string) string {
	for _, re := range []*regexp.Regexp{reH1, reTitleTag} {
		if m := re.FindStringSubmatch(page); m != nil {
			title := cleanFragment(m[1])
			if title != "" {
				return title
			}
		}
	}
	return "No title"
}

// ExtractContent strips scripts, styles, and markup from the page and
// returns the remaining text with whitespace collapsed.
func ExtractContent(page string) string {
	page = reScript.ReplaceAllString(page, " ")
	page = reStyle.ReplaceAllString(page, " ")
	return cleanFragment(page)
}

func cleanFragment(fragment string) string {
	text := reTag.ReplaceAllString(fragment, " ")
	text = html.UnescapeString(text)
	text = reSpaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
