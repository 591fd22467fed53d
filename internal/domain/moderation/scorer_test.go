//go:build unit

package moderation_test

import (
	"strings"
	"testing"

	"charter-booking/internal/domain/moderation"

	"github.com/stretchr/testify/assert"
)

func TestModerate(t *testing.T) {
	cases := []struct {
		name            string
		comment         string
		isSpam          bool
		isInappropriate bool
		confidence      float64
		reasons         []string
	}{
		{
			name:       "shouting spam stacks past threshold",
			comment:    "FREE MONEY!!! CLICK HERE CLICK HERE CLICK HERE",
			isSpam:     true,
			confidence: 0.5,
			reasons: []string{
				"Contains spam keywords: click here, free money",
				moderation.ReasonCaps,
			},
		},
		{
			name:    "genuine review is clean",
			comment: "Great trip, caught three fish, highly recommend!",
			reasons: []string{},
		},
		{
			name:            "inappropriate keyword",
			comment:         "I hate this captain, the service was terrible",
			isInappropriate: true,
			confidence:      0.3,
			reasons:         []string{"Contains inappropriate content: hate"},
		},
		{
			name:       "repeated character",
			comment:    "Sooooo good, best day on the water ever",
			confidence: 0.15,
			reasons:    []string{moderation.ReasonRepetition},
		},
		{
			name:       "repeated word ignores case",
			comment:    "Great great GREAT trip with the crew",
			confidence: 0.15,
			reasons:    []string{moderation.ReasonRepetition},
		},
		{
			name:       "too short",
			comment:    "  ok  ",
			confidence: 0.05,
			reasons:    []string{moderation.ReasonTooShort},
		},
		{
			name:       "empty comment",
			comment:    "",
			confidence: 0.05,
			reasons:    []string{moderation.ReasonTooShort},
		},
		{
			name:       "unusually long",
			comment:    strings.Repeat("Calm seas and good bites. ", 40),
			confidence: 0.05,
			reasons:    []string{moderation.ReasonTooLong},
		},
		{
			name:       "excessive punctuation",
			comment:    "Wow!! Amazing!! Loved it!! Go now!!",
			confidence: 0.1,
			reasons:    []string{moderation.ReasonPunctuation},
		},
		{
			name:       "confidence is capped at one",
			comment:    "CONGRATULATIONS WINNER! Click here for free money at the casino, guaranteed!",
			isSpam:     true,
			confidence: 1,
			reasons: []string{
				"Contains spam keywords: casino, winner, congratulations, click here, free money, guaranteed",
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual := moderation.Moderate(c.comment)

			assert.Equal(t, c.isSpam, actual.IsSpam)
			assert.Equal(t, c.isInappropriate, actual.IsInappropriate)
			assert.InDelta(t, c.confidence, actual.Confidence, 1e-9)
			assert.ElementsMatch(t, c.reasons, actual.Reasons)
			if len(c.reasons) > 0 {
				assert.Equal(t, c.reasons, actual.Reasons)
			}
		})
	}

	t.Run("deterministic", func(t *testing.T) {
		in := "Casino night!! lottery!! act now!! GUARANTEED!!"
		assert.Equal(t, moderation.Moderate(in), moderation.Moderate(in))
	})
}
