package pipeline

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// markup matches a closing tag or a line break. Bare angle brackets in plain text do not count.
var markup = regexp.MustCompile(`(?i)</(p|div|span|ul|ol|li|b|strong|em|i|u|a|h[1-6]|section|article|table|tr|td|th)\s*>|<br\s*/?>`)

// PlainText turns an HTML job description into readable text.
// Input without markup is returned trimmed but otherwise unchanged.
func PlainText(description string) string {
	description = strings.TrimSpace(description)
	if !markup.MatchString(description) {
		return description
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return description
	}

	return tidyLines(parseHTMLContent(doc.Find("body")))
}

// parseHTMLContent walks through HTML elements in order and preserves formatting
func parseHTMLContent(selection *goquery.Selection) string {
	var result strings.Builder

	selection.Contents().Each(func(i int, s *goquery.Selection) {
		tagName := goquery.NodeName(s)
		if tagName == "#text" {
			result.WriteString(collapseSpaces(s.Text()))
			return
		}

		if tagName == "br" {
			result.WriteString("\n")
			return
		}

		text := collapseSpaces(strings.TrimSpace(s.Text()))
		if text == "" {
			return
		}

		switch tagName {
		case "p", "h1", "h2", "h3", "h4", "h5", "h6":
			result.WriteString("\n")
			result.WriteString(text)
			result.WriteString("\n\n")
		case "strong", "b":
			result.WriteString("**")
			result.WriteString(text)
			result.WriteString("**")
		case "em", "i":
			result.WriteString("*")
			result.WriteString(text)
			result.WriteString("*")
		case "li":
			result.WriteString("\n• ")
			result.WriteString(text)
			result.WriteString("\n")
		case "ul", "ol":
			result.WriteString("\n")
			s.Find("li").Each(func(j int, li *goquery.Selection) {
				liText := collapseSpaces(strings.TrimSpace(li.Text()))
				if liText != "" {
					result.WriteString("• ")
					result.WriteString(liText)
					result.WriteString("\n")
				}
			})
			result.WriteString("\n")
		case "div", "span", "section", "article":
			if s.Children().Length() > 0 {
				result.WriteString(parseHTMLContent(s))
			} else {
				result.WriteString(text)
				result.WriteString(" ")
			}
		default:
			result.WriteString(text)
			result.WriteString(" ")
		}
	})

	return result.String()
}

// collapseSpaces folds whitespace runs into one space, keeping a single
// leading or trailing space so inline elements stay separated.
func collapseSpaces(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s != "" {
			return " "
		}
		return ""
	}

	out := strings.Join(fields, " ")
	if unicode.IsSpace(rune(s[0])) {
		out = " " + out
	}
	if unicode.IsSpace(rune(s[len(s)-1])) {
		out += " "
	}
	return out
}

// tidyLines trims every line and keeps at most one blank line between blocks.
func tidyLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, line)
		blank = false
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
