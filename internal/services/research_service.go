package services

import (
	"context"
	"fmt"

	"github.com/hackflow/hackflow-api/internal/models"
)

const analyzeProjectPrompt = `You review hackathon projects. Reply with one JSON object only, no prose:
{"similarProjects":[{"name":"","description":"","url":""}],"missingElements":[""],"improvementTips":[""]}
List up to 5 similar existing projects, then what the project is missing and how to improve it.`

const findHackathonsPrompt = `You track upcoming hackathons. Reply with one JSON array only, no prose:
[{"name":"","date":"","location":"","description":"","url":"","prize":""}]
Return up to 8 real upcoming events. Use "Online" as location for virtual events.`

// ResearchService runs project analysis and hackathon lookups through the LLM
type ResearchService struct {
	llm LLM
}

func NewResearchService(llm LLM) *ResearchService {
	return &ResearchService{llm: llm}
}

func (s *ResearchService) AnalyzeProject(ctx context.Context, req *models.AnalyzeProjectRequest) (*models.ProjectAnalysis, error) {
	user := fmt.Sprintf("Project title: %s\n\nDescription:\n%s", req.Title, req.Description)

	var analysis models.ProjectAnalysis
	if err := generateObject(ctx, s.llm, "analyzeProject", analyzeProjectPrompt, user, &analysis); err != nil {
		return nil, err
	}

	if analysis.SimilarProjects == nil {
		analysis.SimilarProjects = []models.SimilarProject{}
	}
	if analysis.MissingElements == nil {
		analysis.MissingElements = []string{}
	}
	if analysis.ImprovementTips == nil {
		analysis.ImprovementTips = []string{}
	}
	return &analysis, nil
}

func (s *ResearchService) FindHackathons(ctx context.Context, req *models.FindHackathonsRequest) (*models.FindHackathonsResponse, error) {
	user := fmt.Sprintf("Find upcoming hackathons about: %s", req.Interest)

	hackathons := []models.Hackathon{}
	if err := generateArray(ctx, s.llm, "findHackathons", findHackathonsPrompt, user, &hackathons); err != nil {
		return nil, err
	}
	return &models.FindHackathonsResponse{Hackathons: hackathons}, nil
}
