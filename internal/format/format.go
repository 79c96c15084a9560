package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FmtDate formats t the way article bylines show it ("January 16, 2025").
func FmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

// FmtShortDate formats t for cards and lists ("Jan 16, 2025").
func FmtShortDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// FmtISODate formats t for <time datetime> attributes.
func FmtISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

// FmtRating renders a star rating with one decimal ("4.9").
func FmtRating(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// FmtCount adds thousands separators: FmtCount(12345) => "12,345".
func FmtCount(n int) string {
	return thousandSep(int64(n))
}

// FmtReadingTime renders minutes as "10 min read".
func FmtReadingTime(minutes int) string {
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// Stars expands a rating into five slots for star icons; true marks a filled star.
func Stars(rating float64) []bool {
	filled := int(rating + 0.5)
	out := make([]bool, 5)
	for i := range out {
		out[i] = i < filled
	}
	return out
}

func thousandSep(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
