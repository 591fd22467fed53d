package moderation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

const (
	spamKeywordPoints         = 20
	inappropriateKeywordPoint = 30
	repetitionPoints          = 15
	capsPoints                = 10
	punctuationPoints         = 10
	lengthPoints              = 5

	spamThreshold          = 25
	inappropriateThreshold = 30

	capsRatioLimit     = 0.7
	capsMinLength      = 20
	punctuationLimit   = 3
	shortCommentLength = 10
	longCommentLength  = 800

	matchTimeout = 50 * time.Millisecond
)

var (
	spamKeywords = []string{
		"viagra", "casino", "lottery", "winner", "congratulations",
		"click here", "free money", "make money fast", "work from home",
		"buy now", "limited time", "act now", "urgent", "guaranteed",
	}

	inappropriateKeywords = []string{
		"hate", "racist", "discrimination", "violence", "threat",
	}

	// Backreferences are not supported by RE2.
	repetitionPatterns = []*regexp2.Regexp{
		withTimeout(regexp2.MustCompile(`(.)\1{4,}`, regexp2.ECMAScript)),
		withTimeout(regexp2.MustCompile(`(\w+)\s+\1\s+\1`, regexp2.ECMAScript|regexp2.IgnoreCase)),
	}

	punctuationRun = regexp.MustCompile(`[!?]{2,}`)
)

const (
	ReasonRepetition  = "Contains excessive repetition"
	ReasonCaps        = "Excessive use of capital letters"
	ReasonPunctuation = "Excessive punctuation"
	ReasonTooShort    = "Comment too short"
	ReasonTooLong     = "Comment unusually long"
)

type Result struct {
	IsSpam          bool
	IsInappropriate bool
	Confidence      float64
	Reasons         []string
}

// Moderate scores free-text review content. It is deterministic and never fails.
func Moderate(comment string) Result {
	lower := strings.ToLower(comment)
	reasons := make([]string, 0, 4)
	spam, inappropriate := 0, 0

	if hits := matchKeywords(lower, spamKeywords); len(hits) > 0 {
		spam += len(hits) * spamKeywordPoints
		reasons = append(reasons, fmt.Sprintf("Contains spam keywords: %s", strings.Join(hits, ", ")))
	}
	if hits := matchKeywords(lower, inappropriateKeywords); len(hits) > 0 {
		inappropriate += len(hits) * inappropriateKeywordPoint
		reasons = append(reasons, fmt.Sprintf("Contains inappropriate content: %s", strings.Join(hits, ", ")))
	}

	for _, re := range repetitionPatterns {
		// A timed out match counts as no match.
		if ok, err := re.MatchString(comment); err == nil && ok {
			spam += repetitionPoints
			reasons = append(reasons, ReasonRepetition)
			break
		}
	}

	length := utf8.RuneCountInString(comment)
	if length > capsMinLength && float64(countUpper(comment))/float64(length) > capsRatioLimit {
		spam += capsPoints
		reasons = append(reasons, ReasonCaps)
	}

	if len(punctuationRun.FindAllStringIndex(comment, -1)) > punctuationLimit {
		spam += punctuationPoints
		reasons = append(reasons, ReasonPunctuation)
	}

	if utf8.RuneCountInString(strings.TrimSpace(comment)) < shortCommentLength {
		spam += lengthPoints
		reasons = append(reasons, ReasonTooShort)
	} else if length > longCommentLength {
		spam += lengthPoints
		reasons = append(reasons, ReasonTooLong)
	}

	return Result{
		IsSpam:          spam >= spamThreshold,
		IsInappropriate: inappropriate >= inappropriateThreshold,
		Confidence:      float64(min(max(spam+inappropriate, 0), 100)) / 100,
		Reasons:         reasons,
	}
}

func matchKeywords(lower string, keywords []string) []string {
	var hits []string
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			hits = append(hits, k)
		}
	}
	return hits
}

func countUpper(s string) int {
	n := 0
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			n++
		}
	}
	return n
}

func withTimeout(re *regexp2.Regexp) *regexp2.Regexp {
	re.MatchTimeout = matchTimeout
	return re
}
