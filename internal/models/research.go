package models

type AnalyzeProjectRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=10000"`
}

type SimilarProject struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

type ProjectAnalysis struct {
	SimilarProjects []SimilarProject `json:"similarProjects"`
	MissingElements []string         `json:"missingElements"`
	ImprovementTips []string         `json:"improvementTips"`
}

type FindHackathonsRequest struct {
	Interest string `json:"interest" binding:"required,max=200"`
}

type Hackathon struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Prize       string `json:"prize,omitempty"`
}

type FindHackathonsResponse struct {
	Hackathons []Hackathon `json:"hackathons"`
}
