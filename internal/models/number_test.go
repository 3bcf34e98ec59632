package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundedInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want RoundedInt
	}{
		{`72`, 72},
		{`72.5`, 73},
		{`72.4`, 72},
		{`-0.6`, -1},
		{`"88.2"`, 88},
		{`null`, 0},
	}

	for _, tt := range tests {
		var got RoundedInt
		require.NoError(t, json.Unmarshal([]byte(tt.in), &got), tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestRoundedInt_Invalid(t *testing.T) {
	var got RoundedInt
	assert.Error(t, json.Unmarshal([]byte(`"high"`), &got))
	assert.Error(t, json.Unmarshal([]byte(`true`), &got))
}

func TestSustainabilityReport_DecimalScores(t *testing.T) {
	raw := `{"overallScore":72.5,"carbonFootprint":{"score":40.2,"estimatedKgCO2":1.5},
		"sdgAlignment":[{"goal":7,"relevance":66.6}],"socialImpact":{"score":"81"}}`

	var report SustainabilityReport
	require.NoError(t, json.Unmarshal([]byte(raw), &report))
	assert.Equal(t, RoundedInt(73), report.OverallScore)
	assert.Equal(t, RoundedInt(40), report.CarbonFootprint.Score)
	assert.Equal(t, RoundedInt(67), report.SDGAlignment[0].Relevance)
	assert.Equal(t, RoundedInt(81), report.SocialImpact.Score)
}

func TestVideoScene_DecimalDuration(t *testing.T) {
	var scene VideoScene
	require.NoError(t, json.Unmarshal([]byte(`{"scene":1,"duration":7.5,"visual":"v"}`), &scene))
	assert.Equal(t, RoundedInt(8), scene.Duration)
}
