package scoring

import (
	"testing"
	"time"

	"github.com/alexanderramin/ember/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC)

func answers(exhaustion, boredom, efficiency int) []domain.DailyAnswer {
	return []domain.DailyAnswer{
		{Dimension: domain.DimensionExhaustion, Value: exhaustion, AnsweredAt: testNow},
		{Dimension: domain.DimensionBoredom, Value: boredom, AnsweredAt: testNow.Add(time.Minute)},
		{Dimension: domain.DimensionEfficiency, Value: efficiency, AnsweredAt: testNow.Add(2 * time.Minute)},
	}
}

func TestComputeDailyScore_HighRisk(t *testing.T) {
	rec, err := ComputeDailyScore(answers(5, 4, 2))
	require.NoError(t, err)
	// inverted efficiency = 6-2 = 4, score = (5+4+4)/3
	assert.InDelta(t, 13.0/3.0, rec.RiskScore, 1e-9)
	assert.True(t, rec.IsRiskDay)
}

func TestComputeDailyScore_LowRisk(t *testing.T) {
	rec, err := ComputeDailyScore(answers(2, 2, 4))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, rec.RiskScore, 1e-9)
	assert.False(t, rec.IsRiskDay)
}

func TestComputeDailyScore_ThresholdIsInclusive(t *testing.T) {
	// (4+4+(6-3))/3 = 11/3 = 3.67 ; (4+3+(6-3))/3 = 10/3 = 3.33
	rec, err := ComputeDailyScore(answers(4, 4, 3))
	require.NoError(t, err)
	assert.True(t, rec.IsRiskDay)

	rec, err = ComputeDailyScore(answers(4, 3, 3))
	require.NoError(t, err)
	assert.False(t, rec.IsRiskDay)

	assert.True(t, IsRiskDay(3.5))
	assert.False(t, IsRiskDay(3.4999))
}

func TestComputeDailyScore_RiskFlagMatchesThresholdForAllInputs(t *testing.T) {
	for e := 1; e <= 5; e++ {
		for b := 1; b <= 5; b++ {
			for f := 1; f <= 5; f++ {
				rec, err := ComputeDailyScore(answers(e, b, f))
				require.NoError(t, err)
				assert.Equal(t, rec.RiskScore >= RiskDayThreshold, rec.IsRiskDay)
				assert.GreaterOrEqual(t, rec.RiskScore, MinScore)
				assert.LessOrEqual(t, rec.RiskScore, MaxScore)

				again, err := ComputeDailyScore(answers(e, b, f))
				require.NoError(t, err)
				assert.Equal(t, rec, again)
			}
		}
	}
}

func TestComputeDailyScore_Insufficient(t *testing.T) {
	_, err := ComputeDailyScore(answers(3, 3, 3)[:2])
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientAnswers)

	var insufficient *InsufficientAnswersError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, []domain.Dimension{domain.DimensionEfficiency}, insufficient.Missing)
	assert.Contains(t, err.Error(), "efficiency")
}

func TestComputeDailyScore_Empty(t *testing.T) {
	_, err := ComputeDailyScore(nil)
	var insufficient *InsufficientAnswersError
	require.ErrorAs(t, err, &insufficient)
	assert.Len(t, insufficient.Missing, 3)
}

func TestComputeDailyScore_DuplicateDimensionLatestWins(t *testing.T) {
	in := answers(1, 1, 5)
	in = append(in, domain.DailyAnswer{
		Dimension:  domain.DimensionExhaustion,
		Value:      5,
		AnsweredAt: testNow.Add(time.Hour),
	})
	rec, err := ComputeDailyScore(in)
	require.NoError(t, err)
	// (5+1+1)/3
	assert.InDelta(t, 7.0/3.0, rec.RiskScore, 1e-9)
	assert.Equal(t, testNow.Add(time.Hour), rec.CompletedAt)
}

func TestComputeDailyScore_DatesOnLatestAnswerDay(t *testing.T) {
	rec, err := ComputeDailyScore(answers(3, 3, 3))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), rec.Date)
	assert.Equal(t, testNow.Add(2*time.Minute), rec.CompletedAt)
}

func TestComputeDailyScore_RejectsInvalidValue(t *testing.T) {
	_, err := ComputeDailyScore(answers(3, 7, 3))
	assert.ErrorIs(t, err, domain.ErrAnswerOutOfRange)
}

func TestContribution(t *testing.T) {
	assert.Equal(t, 5, Contribution(domain.DimensionExhaustion, 5))
	assert.Equal(t, 2, Contribution(domain.DimensionBoredom, 2))
	assert.Equal(t, 1, Contribution(domain.DimensionEfficiency, 5))
	assert.Equal(t, 5, Contribution(domain.DimensionEfficiency, 1))
}
