package src

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxReferenceChars bounds how much page text is attached to a prompt.
const maxReferenceChars = 8000

// FetchPageText downloads a page and extracts its visible text so it can be
// attached to a prompt as reference material.
func FetchPageText(url string) (string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch %s: received status code %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML from %s: %w", url, err)
	}

	doc.Find("script, style, nav, footer").Remove()

	text := doc.Find("body").Text()
	text = collapseWhitespace(text)

	if text == "" {
		return "", fmt.Errorf("no readable text found at %s", url)
	}
	if len(text) > maxReferenceChars {
		text = text[:maxReferenceChars]
	}
	return text, nil
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !lastSpace {
				b.WriteRune(' ')
			}
			lastSpace = true
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(b.String())
}
