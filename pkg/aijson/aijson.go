// Package aijson pulls JSON payloads out of free-form model output.
package aijson

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxRawExcerpt = 500

var (
	objectPattern = regexp.MustCompile(`(?s)\{.*\}`)
	arrayPattern  = regexp.MustCompile(`(?s)\[.*\]`)
	fencePattern  = regexp.MustCompile("(?s)```([A-Za-z0-9_+-]*)[ \t]*\r?\n?(.*?)```")
)

// ParseError means the model text held no parseable JSON of the expected shape
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse AI response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ExtractObject decodes the outermost {...} found in text into v
func ExtractObject(text string, v any) error {
	return extract(text, objectPattern, v)
}

// ExtractArray decodes the outermost [...] found in text into v
func ExtractArray(text string, v any) error {
	return extract(text, arrayPattern, v)
}

// extract tries json fences first, then other fences, then the whole text
func extract(text string, pattern *regexp.Regexp, v any) error {
	var firstErr error
	for _, candidate := range candidates(text) {
		match := pattern.FindString(candidate)
		if match == "" {
			continue
		}
		err := json.Unmarshal([]byte(match), v)
		if err == nil {
			return nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	if firstErr == nil {
		firstErr = fmt.Errorf("no JSON found in response")
	}
	return &ParseError{Raw: excerpt(text), Err: firstErr}
}

func candidates(text string) []string {
	var tagged, other []string
	for _, m := range fencePattern.FindAllStringSubmatch(text, -1) {
		if strings.EqualFold(m[1], "json") {
			tagged = append(tagged, m[2])
		} else {
			other = append(other, m[2])
		}
	}
	return append(append(tagged, other...), text)
}

func excerpt(text string) string {
	text = strings.TrimSpace(text)
	if len(text) <= maxRawExcerpt {
		return text
	}
	cut := maxRawExcerpt
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
