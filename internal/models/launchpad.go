package models

// StartupBrief is the common input of every launchpad generator
type StartupBrief struct {
	ProjectName    string `json:"projectName" binding:"required,max=200"`
	Description    string `json:"description" binding:"required,max=10000"`
	TargetAudience string `json:"targetAudience" binding:"max=1000"`
	Industry       string `json:"industry" binding:"max=200"`
}

type PitchSlide struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
	Notes   string   `json:"notes,omitempty"`
}

type Pitch struct {
	Tagline         string       `json:"tagline"`
	Problem         string       `json:"problem"`
	Solution        string       `json:"solution"`
	MarketSize      string       `json:"marketSize"`
	BusinessModel   string       `json:"businessModel"`
	CompetitiveEdge string       `json:"competitiveEdge"`
	Traction        string       `json:"traction"`
	Ask             string       `json:"ask"`
	ElevatorPitch   string       `json:"elevatorPitch"`
	Slides          []PitchSlide `json:"slides"`
}

type VideoRequest struct {
	StartupBrief
	DurationSeconds int    `json:"durationSeconds" binding:"omitempty,min=15,max=600"`
	Narrate         bool   `json:"narrate"`
	VoiceID         string `json:"voiceId" binding:"max=100"`
}

type VideoScene struct {
	Scene     RoundedInt `json:"scene"`
	Duration  RoundedInt `json:"duration"`
	Visual    string     `json:"visual"`
	Narration string     `json:"narration"`
}

type VideoScript struct {
	Title  string       `json:"title"`
	Scenes []VideoScene `json:"scenes"`
}

// Narration is set when audio was requested and produced. Exactly one of
// AudioURL or AudioBase64 is filled.
type Narration struct {
	ContentType string `json:"contentType"`
	AudioURL    string `json:"audioUrl,omitempty"`
	AudioBase64 string `json:"audioBase64,omitempty"`
}

type VideoResponse struct {
	Script    VideoScript `json:"script"`
	Narration *Narration  `json:"narration,omitempty"`
}

type PricingTier struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
}

type MonetizationStrategy struct {
	Model          string        `json:"model"`
	Tiers          []PricingTier `json:"tiers"`
	RevenueStreams []string      `json:"revenueStreams"`
	Projections    string        `json:"projections"`
	Tips           []string      `json:"tips"`
}

type MonetizationResponse struct {
	Strategy           MonetizationStrategy `json:"strategy"`
	RevenueCatTemplate string               `json:"revenueCatTemplate"`
	APIKeyConfigured   bool                 `json:"apiKeyConfigured"`
}
