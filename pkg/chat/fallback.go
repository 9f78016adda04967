package chat

import (
	"regexp"
	"strings"
)

// Archive-time text recovery heuristics. Some upstream models leak the
// whole response into the "thinking" field instead of separating
// reasoning from the answer; these helpers reconstruct a usable split
// when a message arrives with empty text but non-empty thinking. They
// are applied only during archival reconstruction, never while
// streaming live.

const zeroWidthJoiner = "\u200d"

// minRecoveredTextLen guards against splitting off a trailer that is
// just punctuation or a stray character.
const minRecoveredTextLen = 2

var userMetadataPrefixRE = regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2}[^\]]*\]\s*`)

// SplitThinkingFallback recovers a response text from a thinking-only
// message using three ordered strategies:
//  1. a complete <think>...</think> wrapper followed by trailing text
//  2. a zero-width-joiner field separator (split at its last occurrence)
//  3. treat the whole string as the response and clear thinking;
//     showing something beats showing nothing
func SplitThinkingFallback(thinking string) (string, string) {
	if openIdx := strings.Index(thinking, "<think>"); openIdx != -1 {
		if closeIdx := strings.Index(thinking[openIdx:], "</think>"); closeIdx != -1 {
			interior := thinking[openIdx+len("<think>") : openIdx+closeIdx]
			trailer := strings.TrimSpace(thinking[openIdx+closeIdx+len("</think>"):])
			if len(trailer) >= minRecoveredTextLen {
				return strings.TrimSpace(interior), trailer
			}
		}
	}

	if idx := strings.LastIndex(thinking, zeroWidthJoiner); idx != -1 {
		trailer := strings.TrimSpace(thinking[idx+len(zeroWidthJoiner):])
		if len(trailer) >= minRecoveredTextLen {
			return strings.TrimSpace(thinking[:idx]), trailer
		}
	}

	return "", strings.TrimSpace(thinking)
}

// StripUserMetadataPrefix removes the "[2024-01-01 10:00:00 UTC] "
// delivery-metadata prefix the gateway prepends to relayed user
// messages. Text without the prefix is returned unchanged.
func StripUserMetadataPrefix(text string) string {
	return userMetadataPrefixRE.ReplaceAllString(text, "")
}

// StripFinalTags removes <final>...</final> wrapper tags from
// assistant text. Multiple occurrences are all stripped.
func StripFinalTags(text string) string {
	text = strings.ReplaceAll(text, "<final>", "")
	text = strings.ReplaceAll(text, "</final>", "")
	return strings.TrimSpace(text)
}
