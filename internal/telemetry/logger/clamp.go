package logger

import (
	"fmt"
	"log/slog"
	"strconv"
	"unicode/utf8"
)

// DefaultMaxValueLen is the default limit for attribute values.
const DefaultMaxValueLen = 256

// clampAttr truncates values whose rendering is longer than maxLen
// bytes, recursing into groups. Sampled values reach the log as KindAny
// (maps and slices decoded from documents), so those are rendered and
// clamped too. Truncated values end with a marker giving the original size.
func clampAttr(a slog.Attr, maxLen int) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		if s := a.Value.String(); len(s) > maxLen {
			return slog.String(a.Key, Clamp(s, maxLen))
		}
	case slog.KindAny:
		if s := fmt.Sprint(a.Value.Any()); len(s) > maxLen {
			return slog.String(a.Key, Clamp(s, maxLen))
		}
	case slog.KindGroup:
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = clampAttr(attr, maxLen)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}
	return a
}

// Clamp shortens s to at most maxLen bytes on a rune boundary and appends
// "...(N bytes)". Strings within the limit are returned unchanged.
func Clamp(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "...(" + strconv.Itoa(len(s)) + " bytes)"
}
