package services

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/hackflow/hackflow-api/pkg/errors"
)

//go:embed data/*.json
var datasets embed.FS

const sustainabilityPrompt = `You assess the sustainability of software projects. Reply with one JSON object only, no prose:
{"overallScore":0,"carbonFootprint":{"score":0,"estimatedKgCO2":0,"mainSources":[""]},
"sdgAlignment":[{"goal":0,"name":"","relevance":0,"explanation":""}],
"socialImpact":{"score":0,"beneficiaries":[""],"accessibility":"","communityValue":""},
"recommendations":[""]}
Scores are integers from 0 to 100. estimatedKgCO2 is the yearly estimate for a small production deployment.`

// SustainabilityService scores projects and serves reference datasets
type SustainabilityService struct {
	llm LLM
}

func NewSustainabilityService(llm LLM) *SustainabilityService {
	return &SustainabilityService{llm: llm}
}

func (s *SustainabilityService) Analyze(ctx context.Context, req *models.SustainabilityRequest) (*models.SustainabilityReport, error) {
	user := fmt.Sprintf("Project: %s\n\nDescription:\n%s", req.ProjectName, req.Description)
	if techs := cleanList(req.Technologies); len(techs) > 0 {
		user += "\n\nTechnologies: " + strings.Join(techs, ", ")
	}

	var report models.SustainabilityReport
	if err := generateObject(ctx, s.llm, "sustainability", sustainabilityPrompt, user, &report); err != nil {
		return nil, err
	}

	report.OverallScore = clampScore(report.OverallScore)
	report.CarbonFootprint.Score = clampScore(report.CarbonFootprint.Score)
	report.SocialImpact.Score = clampScore(report.SocialImpact.Score)
	for i := range report.SDGAlignment {
		report.SDGAlignment[i].Relevance = clampScore(report.SDGAlignment[i].Relevance)
	}
	if report.Recommendations == nil {
		report.Recommendations = []string{}
	}
	return &report, nil
}

// Dataset returns one of the embedded reference datasets
func (s *SustainabilityService) Dataset(kind string) (json.RawMessage, error) {
	switch kind {
	case models.DatasetGlobal, models.DatasetCarbon, models.DatasetSDG, models.DatasetInnovation:
	default:
		return nil, errors.InvalidInputError("type", "must be one of global, carbon, sdg, innovation")
	}

	data, err := datasets.ReadFile("data/" + kind + ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to read %s dataset: %w", kind, err)
	}
	return json.RawMessage(data), nil
}

func clampScore(v models.RoundedInt) models.RoundedInt {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
