package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/uuid"
	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/hackflow/hackflow-api/pkg/elevenlabs"
	"github.com/hackflow/hackflow-api/pkg/logger"
	"go.uber.org/zap"
)

const defaultVideoSeconds = 60

const pitchPrompt = `You are a startup pitch coach. Reply with one JSON object only, no prose:
{"tagline":"","problem":"","solution":"","marketSize":"","businessModel":"","competitiveEdge":"","traction":"","ask":"","elevatorPitch":"",
"slides":[{"title":"","bullets":[""],"notes":""}]}
Write 8 to 10 slides. Keep bullets under 12 words.`

const videoPrompt = `You write scripts for short product demo videos. Reply with one JSON object only, no prose:
{"title":"","scenes":[{"scene":1,"duration":0,"visual":"","narration":""}]}
Scene durations are in seconds and must add up to the requested length. Narration is spoken text only.`

const monetizationPrompt = `You design monetization for early-stage apps. Reply with one JSON object only, no prose:
{"model":"","tiers":[{"name":"","price":"","features":[""]}],"revenueStreams":[""],"projections":"","tips":[""]}
Suggest 2 to 4 tiers. Prices are display strings such as "$9.99/month".`

// revenueCatTemplate is returned to the client as a starting point. The API
// key is never rendered into it.
var revenueCatTemplate = template.Must(template.New("revenuecat").Funcs(template.FuncMap{
	"literal": jsLiteral,
	"comment": commentText,
}).Parse(`import Purchases from "@revenuecat/purchases-js";

// {{comment .ProjectName}}: {{comment .Model}} monetization
const purchases = Purchases.configure("<REVENUECAT_API_KEY>", appUserId);

export const ENTITLEMENTS = {
{{- range .Tiers}}
  {{.Key}}: {{literal .Name}}, // {{comment .Price}}
{{- end}}
};

export async function loadOfferings() {
  const offerings = await purchases.getOfferings();
  return offerings.current?.availablePackages ?? [];
}

export async function purchase(pkg) {
  const { customerInfo } = await purchases.purchase({ rcPackage: pkg });
  return Object.keys(customerInfo.entitlements.active);
}
`))

type templateTier struct {
	Key   string
	Name  string
	Price string
}

// LaunchpadService generates pitch, video and monetization material
type LaunchpadService struct {
	llm              LLM
	speech           SpeechSynthesizer
	uploader         AudioUploader
	revenueCatAPIKey string
}

// NewLaunchpadService creates the service. uploader may be nil, in which
// case narration is returned inline.
func NewLaunchpadService(llm LLM, speech SpeechSynthesizer, uploader AudioUploader, revenueCatAPIKey string) *LaunchpadService {
	return &LaunchpadService{
		llm:              llm,
		speech:           speech,
		uploader:         uploader,
		revenueCatAPIKey: revenueCatAPIKey,
	}
}

func (s *LaunchpadService) Pitch(ctx context.Context, req *models.StartupBrief) (*models.Pitch, error) {
	var pitch models.Pitch
	if err := generateObject(ctx, s.llm, "pitch", pitchPrompt, briefPrompt(req), &pitch); err != nil {
		return nil, err
	}
	if pitch.Slides == nil {
		pitch.Slides = []models.PitchSlide{}
	}
	return &pitch, nil
}

// Video writes a scene script and, when asked, narrates it
func (s *LaunchpadService) Video(ctx context.Context, req *models.VideoRequest) (*models.VideoResponse, error) {
	seconds := req.DurationSeconds
	if seconds == 0 {
		seconds = defaultVideoSeconds
	}
	user := fmt.Sprintf("%s\n\nVideo length: %d seconds", briefPrompt(&req.StartupBrief), seconds)

	var script models.VideoScript
	if err := generateObject(ctx, s.llm, "video", videoPrompt, user, &script); err != nil {
		return nil, err
	}
	if script.Scenes == nil {
		script.Scenes = []models.VideoScene{}
	}

	resp := &models.VideoResponse{Script: script}
	if !req.Narrate {
		return resp, nil
	}

	narration, err := s.narrate(ctx, script, req.VoiceID)
	if err != nil {
		return nil, err
	}
	resp.Narration = narration
	return resp, nil
}

func (s *LaunchpadService) narrate(ctx context.Context, script models.VideoScript, voiceID string) (*models.Narration, error) {
	lines := make([]string, 0, len(script.Scenes))
	for _, scene := range script.Scenes {
		if t := strings.TrimSpace(scene.Narration); t != "" {
			lines = append(lines, t)
		}
	}

	audio, err := s.speech.Synthesize(ctx, strings.Join(lines, "\n\n"), voiceID)
	if err != nil {
		return nil, err
	}

	narration := &models.Narration{ContentType: elevenlabs.AudioContentType}
	if s.uploader == nil {
		narration.AudioBase64 = base64.StdEncoding.EncodeToString(audio)
		return narration, nil
	}

	key := fmt.Sprintf("videos/%s.mp3", uuid.NewString())
	url, err := s.uploader.UploadAudio(ctx, audio, key, elevenlabs.AudioContentType)
	if err != nil {
		logger.Error("Failed to upload narration", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	narration.AudioURL = url
	return narration, nil
}

// Monetization suggests a strategy and renders a RevenueCat starter snippet
func (s *LaunchpadService) Monetization(ctx context.Context, req *models.StartupBrief) (*models.MonetizationResponse, error) {
	var strategy models.MonetizationStrategy
	if err := generateObject(ctx, s.llm, "monetization", monetizationPrompt, briefPrompt(req), &strategy); err != nil {
		return nil, err
	}
	if strategy.Tiers == nil {
		strategy.Tiers = []models.PricingTier{}
	}
	if strategy.RevenueStreams == nil {
		strategy.RevenueStreams = []string{}
	}
	if strategy.Tips == nil {
		strategy.Tips = []string{}
	}

	snippet, err := renderRevenueCat(req.ProjectName, strategy)
	if err != nil {
		return nil, err
	}

	return &models.MonetizationResponse{
		Strategy:           strategy,
		RevenueCatTemplate: snippet,
		APIKeyConfigured:   s.revenueCatAPIKey != "",
	}, nil
}

func renderRevenueCat(projectName string, strategy models.MonetizationStrategy) (string, error) {
	tiers := make([]templateTier, 0, len(strategy.Tiers))
	for _, t := range strategy.Tiers {
		tiers = append(tiers, templateTier{Key: entitlementKey(t.Name), Name: t.Name, Price: t.Price})
	}

	var buf bytes.Buffer
	err := revenueCatTemplate.Execute(&buf, map[string]any{
		"ProjectName": projectName,
		"Model":       strategy.Model,
		"Tiers":       tiers,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render RevenueCat template: %w", err)
	}
	return buf.String(), nil
}

// entitlementKey turns "Pro Plus" into "PRO_PLUS" and "10x Team" into
// "TIER_10X_TEAM" so the result is always a JS identifier.
func entitlementKey(name string) string {
	fields := strings.FieldsFunc(strings.ToUpper(name), func(r rune) bool {
		return !(r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	})
	if len(fields) == 0 {
		return "DEFAULT"
	}
	key := strings.Join(fields, "_")
	if key[0] >= '0' && key[0] <= '9' {
		key = "TIER_" + key
	}
	return key
}

// jsLiteral renders s as a double-quoted JS string. JSON escaping covers
// quotes, control characters and U+2028/U+2029.
func jsLiteral(s string) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// commentText keeps s on a single // comment line
func commentText(s string) string {
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
	}), " ")
}

func briefPrompt(b *models.StartupBrief) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Startup: %s\n\nDescription:\n%s", b.ProjectName, b.Description)
	if b.TargetAudience != "" {
		fmt.Fprintf(&sb, "\n\nTarget audience: %s", b.TargetAudience)
	}
	if b.Industry != "" {
		fmt.Fprintf(&sb, "\nIndustry: %s", b.Industry)
	}
	return sb.String()
}
