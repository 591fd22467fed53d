//go:build unit

package moderation_test

import (
	"testing"

	"charter-booking/internal/domain/moderation"

	"github.com/stretchr/testify/assert"
)

func TestShouldAutoReject(t *testing.T) {
	t.Run("inappropriate always rejects", func(t *testing.T) {
		for _, spam := range []bool{true, false} {
			for _, conf := range []float64{0, 0.3, 0.9} {
				r := moderation.Result{IsInappropriate: true, IsSpam: spam, Confidence: conf}
				assert.True(t, moderation.ShouldAutoReject(r))
			}
		}
	})

	t.Run("spam needs confidence above 0.8", func(t *testing.T) {
		assert.False(t, moderation.ShouldAutoReject(moderation.Result{IsSpam: true, Confidence: 0.8}))
		assert.True(t, moderation.ShouldAutoReject(moderation.Result{IsSpam: true, Confidence: 0.85}))
		assert.False(t, moderation.ShouldAutoReject(moderation.Result{Confidence: 0.95}))
	})
}

func TestShouldRequireManualReview(t *testing.T) {
	cases := []struct {
		name   string
		result moderation.Result
		want   bool
	}{
		{"spam above half", moderation.Result{IsSpam: true, Confidence: 0.6}, true},
		{"spam at half", moderation.Result{IsSpam: true, Confidence: 0.5}, false},
		{"many reasons", moderation.Result{Confidence: 0.35, Reasons: []string{"a", "b", "c"}}, true},
		{"many reasons low confidence", moderation.Result{Confidence: 0.3, Reasons: []string{"a", "b", "c"}}, false},
		{"two reasons", moderation.Result{Confidence: 0.45, Reasons: []string{"a", "b"}}, false},
		{"clean", moderation.Result{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, moderation.ShouldRequireManualReview(c.result))
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, moderation.DecisionReject, moderation.Classify(moderation.Result{IsInappropriate: true, IsSpam: true, Confidence: 0.6}))
	assert.Equal(t, moderation.DecisionManualReview, moderation.Classify(moderation.Result{IsSpam: true, Confidence: 0.6}))
	assert.Equal(t, moderation.DecisionApprove, moderation.Classify(moderation.Result{Confidence: 0.1}))

	t.Run("scored content", func(t *testing.T) {
		assert.Equal(t, moderation.DecisionApprove, moderation.Classify(moderation.Moderate("Great trip, caught three fish, highly recommend!")))
		assert.Equal(t, moderation.DecisionManualReview, moderation.Classify(moderation.Moderate("Casino night, lottery win, guaranteed fun on this boat trip")))
		assert.Equal(t, moderation.DecisionReject, moderation.Classify(moderation.Moderate("Pure violence on board, avoid")))
	})
}
