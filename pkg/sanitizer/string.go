package sanitizer

import (
	"strings"
	"unicode"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var (
	emailPipeline     = Pipeline{strings.TrimSpace, strings.ToLower}
	utterancePipeline = Pipeline{TrimAndNormalize, strings.ToLower}
)

// TrimAndNormalize trims the string and collapses inner whitespace runs to a
// single space.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

func NormalizeCity(city string) string {
	return TrimAndNormalize(city)
}

// NormalizeUsername only trims; usernames are case sensitive.
func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

func NormalizeEmail(email string) string {
	return emailPipeline.Apply(email)
}

// NormalizeUtterance prepares chat input for keyword matching.
func NormalizeUtterance(s string) string {
	return utterancePipeline.Apply(s)
}
