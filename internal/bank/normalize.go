package bank

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"mcq-trainer/internal/domain"
)

const (
	// OptionCount is the fixed number of options every normalized
	// question carries.
	OptionCount = 4
	// DefaultCategory is assigned when a raw record names no category.
	DefaultCategory = "General"
	// DefaultExplanation fills in for questions without one.
	DefaultExplanation = "No explanation available for this question."
)

// NormalizeQuestion repairs a raw, untrusted question record into a
// canonical Question. It never fails: a blank id is synthesized from the
// record's position in the feed, options are padded or truncated to
// exactly 4 entries, and an out-of-range correct index resets to 0. The
// bank must never be empty or malformed, so repair always wins over
// rejection.
func NormalizeQuestion(raw any, index int) domain.Question {
	rec, _ := raw.(map[string]any)

	id := strings.TrimSpace(asString(rec["id"]))
	if id == "" {
		id = fmt.Sprintf("q-%04d", index+1)
	}

	category := strings.TrimSpace(asString(rec["category"]))
	if category == "" {
		category = strings.TrimSpace(asString(rec["topic"]))
	}
	if category == "" {
		category = DefaultCategory
	}

	explanation := strings.TrimSpace(asString(rec["explanation"]))
	if explanation == "" {
		explanation = DefaultExplanation
	}

	options := normalizeOptions(rec["options"])

	correct := asIndex(rec["correct"])
	if correct < 0 || correct >= len(options) {
		correct = 0
	}

	return domain.Question{
		ID:          id,
		Question:    strings.TrimSpace(asString(rec["question"])),
		Options:     options,
		Correct:     correct,
		Category:    category,
		Explanation: explanation,
	}
}

// NormalizeFeed maps a whole `{questions: [...]}` payload through
// NormalizeQuestion. Anything that is not list-shaped yields an empty
// bank rather than an error.
func NormalizeFeed(raw any) []domain.Question {
	rec, _ := raw.(map[string]any)
	list, _ := rec["questions"].([]any)
	questions := make([]domain.Question, 0, len(list))
	for i, entry := range list {
		questions = append(questions, NormalizeQuestion(entry, i))
	}
	return questions
}

func normalizeOptions(raw any) []string {
	list, _ := raw.([]any)
	options := make([]string, 0, OptionCount)
	for _, entry := range list {
		if len(options) == OptionCount {
			break
		}
		text := strings.TrimSpace(asString(entry))
		if text == "" {
			continue
		}
		options = append(options, text)
	}
	for len(options) < OptionCount {
		options = append(options, fmt.Sprintf("Option %d", len(options)+1))
	}
	return options
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asIndex parses an answer index from whatever shape the feed carries.
// Anything non-integral maps to -1 so the caller's range check resets it.
func asIndex(v any) int {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return -1
		}
		return int(n)
	case int:
		return n
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return -1
}
