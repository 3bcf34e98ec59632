package models

type SustainabilityRequest struct {
	ProjectName  string   `json:"projectName" binding:"required,max=200"`
	Description  string   `json:"description" binding:"required,max=10000"`
	Technologies []string `json:"technologies" binding:"max=50"`
}

type CarbonFootprint struct {
	Score          RoundedInt `json:"score"`
	EstimatedKgCO2 float64    `json:"estimatedKgCO2"`
	MainSources    []string   `json:"mainSources"`
}

type SDGAlignment struct {
	Goal        RoundedInt `json:"goal"`
	Name        string     `json:"name"`
	Relevance   RoundedInt `json:"relevance"`
	Explanation string     `json:"explanation"`
}

type SocialImpact struct {
	Score          RoundedInt `json:"score"`
	Beneficiaries  []string   `json:"beneficiaries"`
	Accessibility  string     `json:"accessibility"`
	CommunityValue string     `json:"communityValue"`
}

type SustainabilityReport struct {
	OverallScore    RoundedInt      `json:"overallScore"`
	CarbonFootprint CarbonFootprint `json:"carbonFootprint"`
	SDGAlignment    []SDGAlignment  `json:"sdgAlignment"`
	SocialImpact    SocialImpact    `json:"socialImpact"`
	Recommendations []string        `json:"recommendations"`
}

// Dataset types served by GET /api/sustainability/data
const (
	DatasetGlobal     = "global"
	DatasetCarbon     = "carbon"
	DatasetSDG        = "sdg"
	DatasetInnovation = "innovation"
)
