package emotion

import "strings"

var positiveWords = []string{"楽しい", "嬉しい", "幸せ", "良い", "最高", "素晴らしい", "感謝", "満足"}

var negativeWords = []string{"悲しい", "辛い", "疲れた", "困った", "不安", "心配", "大変"}

// Score 是基于关键词匹配的情绪分布，三个分量之和为 1
type Score struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// Analyze 统计正/负面关键词命中数并归一化，每个关键词最多计一次
func Analyze(text string) Score {
	lower := strings.ToLower(text)

	positive := countMatches(lower, positiveWords)
	negative := countMatches(lower, negativeWords)

	total := max(positive+negative, 1)

	return Score{
		Positive: float64(positive) / float64(total),
		Negative: float64(negative) / float64(total),
		Neutral:  1 - float64(positive+negative)/float64(total),
	}
}

func countMatches(text string, words []string) int {
	count := 0
	for _, word := range words {
		if strings.Contains(text, word) {
			count++
		}
	}
	return count
}

// Dominant 返回占比最高的情绪，持平时视为 neutral
func (s Score) Dominant() string {
	switch {
	case s.Positive > s.Negative && s.Positive > s.Neutral:
		return "positive"
	case s.Negative > s.Positive && s.Negative > s.Neutral:
		return "negative"
	default:
		return "neutral"
	}
}
