package workout

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/diegoclair/workout-reminder-bot/internal/domain"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/entity"
)

const (
	paragraphSep = "\n\n"
	lineSep      = "\n"
)

// Chunk splits body into parts of at most limit characters, packing whole
// paragraphs first and falling back to whole lines for oversized paragraphs.
// A single line longer than limit is emitted as its own part, never cut.
// When more than one part results, each gets a "(Part i/total)" header.
func Chunk(body string, limit int) []entity.MessagePart {
	if limit <= 0 {
		limit = domain.DefaultMaxMessageChars
	}

	var texts []string
	emit := func(s string) {
		if trimmed := strings.TrimRightFunc(s, unicode.IsSpace); trimmed != "" {
			texts = append(texts, trimmed)
		}
	}

	cur, curLen := "", 0
	for _, paragraph := range strings.Split(body, paragraphSep) {
		add := paragraph + paragraphSep
		addLen := utf8.RuneCountInString(add)

		if curLen+addLen <= limit {
			cur += add
			curLen += addLen
			continue
		}

		if cur != "" {
			emit(cur)
			cur, curLen = "", 0
		}

		if addLen > limit {
			packLines(paragraph, limit, emit)
			continue
		}

		cur, curLen = add, addLen
	}
	emit(cur)

	parts := make([]entity.MessagePart, len(texts))
	total := len(texts)
	for i, text := range texts {
		if total > 1 {
			text = fmt.Sprintf("(Part %d/%d)%s%s", i+1, total, paragraphSep, text)
		}
		parts[i] = entity.MessagePart{Index: i + 1, Total: total, Text: text}
	}

	return parts
}

func packLines(paragraph string, limit int, emit func(string)) {
	block, blockLen := "", 0
	for _, line := range strings.Split(paragraph+lineSep, lineSep) {
		add := line + lineSep
		addLen := utf8.RuneCountInString(add)

		if blockLen+addLen <= limit {
			block += add
			blockLen += addLen
			continue
		}

		emit(block)
		block, blockLen = add, addLen
	}
	emit(block)
}

// StripPartHeader removes the "(Part i/total)" header added by Chunk
func StripPartHeader(part entity.MessagePart) string {
	if part.Total <= 1 {
		return part.Text
	}
	header := fmt.Sprintf("(Part %d/%d)%s", part.Index, part.Total, paragraphSep)
	return strings.TrimPrefix(part.Text, header)
}
