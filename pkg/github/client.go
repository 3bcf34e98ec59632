package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v57/github"
	"github.com/hackflow/hackflow-api/pkg/errors"
	"github.com/hackflow/hackflow-api/pkg/logger"
	"github.com/hackflow/hackflow-api/pkg/metrics"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const serviceName = "github"

// Profile is the slice of a GitHub account used to build a team member
type Profile struct {
	Login     string
	Name      string
	Location  string
	Bio       string
	CreatedAt time.Time
	// Languages counts owned, non-fork repositories per primary language
	Languages map[string]int
	// Topics are repository topics, deduplicated and lower-cased
	Topics []string
}

// Client fetches public GitHub profiles
type Client struct {
	gh *gh.Client
}

// NewClient creates an authenticated GitHub client. An empty token is
// rejected since anonymous quotas are too small for matching traffic.
func NewClient(ctx context.Context, token string) (*Client, error) {
	if token == "" {
		return nil, errors.NotConfiguredError("github")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	return &Client{gh: gh.NewClient(tc)}, nil
}

// WithBaseURL points the client at another API root, such as GitHub Enterprise
func (c *Client) WithBaseURL(baseURL string) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid github base url: %w", err)
	}
	c.gh.BaseURL = u
	return c, nil
}

// FetchProfile loads the user and their owned repositories
func (c *Client) FetchProfile(ctx context.Context, username string) (*Profile, error) {
	start := time.Now()
	operation := "fetchProfile"

	user, _, err := c.gh.Users.Get(ctx, username)
	if err != nil {
		if isNotFound(err) {
			c.record(operation, "not_found", start, zap.String("username", username))
			return nil, errors.NotFoundError("github user " + username)
		}
		c.record(operation, "error", start, zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch github user %s: %w", username, err)
	}

	repos, _, err := c.gh.Repositories.ListByUser(ctx, username, &gh.RepositoryListByUserOptions{
		Type:        "owner",
		Sort:        "pushed",
		ListOptions: gh.ListOptions{PerPage: 100},
	})
	if err != nil {
		c.record(operation, "error", start, zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("failed to list repositories for %s: %w", username, err)
	}

	profile := &Profile{
		Login:     user.GetLogin(),
		Name:      user.GetName(),
		Location:  user.GetLocation(),
		Bio:       user.GetBio(),
		CreatedAt: user.GetCreatedAt().Time,
		Languages: make(map[string]int),
		Topics:    []string{},
	}
	if profile.Name == "" {
		profile.Name = profile.Login
	}

	seenTopics := make(map[string]struct{})
	for _, repo := range repos {
		if repo.GetFork() {
			continue
		}
		if lang := repo.GetLanguage(); lang != "" {
			profile.Languages[lang]++
		}
		for _, topic := range repo.Topics {
			topic = strings.ToLower(topic)
			if _, ok := seenTopics[topic]; ok {
				continue
			}
			seenTopics[topic] = struct{}{}
			profile.Topics = append(profile.Topics, topic)
		}
	}

	c.record(operation, "success", start,
		zap.String("username", username),
		zap.Int("repositories", len(repos)))

	return profile, nil
}

func isNotFound(err error) bool {
	var resp *gh.ErrorResponse
	return errors.As(err, &resp) && resp.Response != nil && resp.Response.StatusCode == http.StatusNotFound
}

func (c *Client) record(operation, status string, start time.Time, fields ...zap.Field) {
	duration := metrics.MeasureDuration(start)
	metrics.RecordUpstream(serviceName, operation, status, duration)
	logger.LogAPICall(serviceName, operation, status, duration, fields...)
}
