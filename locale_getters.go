package intl

import (
	"cmp"
	"net/http"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength bounds the header length that is parsed.
const maxAcceptLanguageLength = 4096

type languageTag struct {
	tag     string
	quality float64
}

func parseLanguageTags(header string) []languageTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []languageTag
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tag, q, hasQ := strings.Cut(part, ";q=")
		quality := 1.0
		if hasQ {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(q), 64)
			if err != nil {
				parsed = 0
			}
			quality = parsed
		}
		tags = append(tags, languageTag{tag: strings.TrimSpace(tag), quality: quality})
	}

	slices.SortStableFunc(tags, func(a, b languageTag) int {
		return cmp.Compare(b.quality, a.quality)
	})
	return tags
}

// LocaleFromAcceptLanguage picks a locale from an Accept-Language header.
// Without available locales the highest quality tag is returned. Otherwise
// the header is walked by quality looking for a full match, then a match of
// the header tag's base language. An available locale whose base equals a
// header tag is remembered, and a later header tag sharing that base may
// still claim a full match. "" means no match.
func LocaleFromAcceptLanguage(header string, available []string) string {
	if header == "" {
		return ""
	}

	tags := parseLanguageTags(header)
	if len(tags) == 0 {
		return ""
	}
	if len(available) == 0 {
		return tags[0].tag
	}

	var baseMatch, baseTag string
	for _, t := range tags {
		tag := strings.ToLower(t.tag)

		if baseMatch != "" && !strings.HasPrefix(tag, baseTag+"-") {
			continue
		}
		if full := findFold(available, tag); full != "" {
			return full
		}
		if baseMatch != "" {
			continue
		}

		base, _, _ := strings.Cut(tag, "-")
		if match := findFold(available, base); match != "" {
			return match
		}

		for _, candidate := range available {
			candidateBase, _, _ := strings.Cut(candidate, "-")
			if strings.ToLower(candidateBase) == tag {
				baseMatch, baseTag = candidate, tag
				break
			}
		}
	}
	return baseMatch
}

func findFold(values []string, search string) string {
	for _, value := range values {
		if strings.EqualFold(value, search) {
			return value
		}
	}
	return ""
}

// LocaleFromPathname returns the first capture group of pattern in path.
func LocaleFromPathname(pattern *regexp.Regexp, path string) string {
	return firstMatch(pattern, path)
}

// LocaleFromHostname returns the first capture group of pattern in host.
func LocaleFromHostname(pattern *regexp.Regexp, host string) string {
	return firstMatch(pattern, host)
}

func firstMatch(pattern *regexp.Regexp, value string) string {
	if pattern == nil {
		return ""
	}
	match := pattern.FindStringSubmatch(value)
	if len(match) < 2 {
		return ""
	}
	return match[1]
}

// LocaleFromRequest picks a locale for req from its Accept-Language header.
func LocaleFromRequest(req *http.Request, available []string) string {
	if req == nil {
		return ""
	}
	return LocaleFromAcceptLanguage(req.Header.Get("Accept-Language"), available)
}
