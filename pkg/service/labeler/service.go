package labeler

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

// client implements Service interface
type client struct {
	llmClient gollem.LLMClient
	modelName string
}

// Option is a functional option for client configuration
type Option func(*client)

// WithModelName overrides the model identifier recorded on keywords
func WithModelName(name string) Option {
	return func(c *client) {
		c.modelName = name
	}
}

// New creates a new labeler service with the provided LLM client
func New(llmClient gollem.LLMClient, opts ...Option) (Service, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	c := &client{
		llmClient: llmClient,
		modelName: "gemini",
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *client) Model() string {
	return c.modelName
}

// Label asks the LLM for a {keyword, description, emoji} triple grounded
// on the sample evidence. A response missing the keyword field is treated
// as malformed.
func (c *client) Label(ctx context.Context, input Input) (*Result, error) {
	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(responseSchema()),
		gollem.WithSessionSystemPrompt(systemPrompt),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(buildUserPrompt(input)))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate label from LLM")
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.New("empty LLM response")
	}

	var llmResp llmResponse
	if err := json.Unmarshal([]byte(resp.Texts[0]), &llmResp); err != nil {
		return nil, goerr.Wrap(err, "failed to parse LLM response", goerr.V("response", resp.Texts[0]))
	}

	if llmResp.Keyword == "" {
		return nil, goerr.New("LLM response missing keyword", goerr.V("response", resp.Texts[0]))
	}

	return &Result{
		Keyword:     llmResp.Keyword,
		Description: llmResp.Description,
		Emoji:       llmResp.Emoji,
	}, nil
}

const systemPrompt = `You are a life keyword assistant. Given a sample of a user's recurring activities for a time period, produce one short keyword that names the theme.

## Instructions:

1. The keyword must be 1-3 words, in the same language as the samples.
2. The description is one sentence explaining what the theme covers.
3. Pick a single emoji that represents the theme.
4. Ground the keyword in the samples; do not invent activities that are not present.`

// buildUserPrompt creates the user prompt with period metadata and sample evidence
func buildUserPrompt(input Input) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "## Period\n\n%s (%s)\n\n", input.PeriodLabel, input.PeriodType)
	fmt.Fprintf(&sb, "## Category\n\n%s\n\n", input.Category)

	if len(input.DataTypes) > 0 {
		sb.WriteString("## Data types\n\n")
		for _, dt := range input.DataTypes {
			fmt.Fprintf(&sb, "- %s\n", dt)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Activity samples\n\n")
	for _, s := range input.Samples {
		fmt.Fprintf(&sb, "- %s\n", s)
	}

	return sb.String()
}

// responseSchema creates the JSON schema for structured output
func responseSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "LifeKeywordResponse",
		Description: "One labeled life theme",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"keyword": {
				Type:        gollem.TypeString,
				Description: "Short name of the theme (1-3 words)",
				Required:    true,
			},
			"description": {
				Type:        gollem.TypeString,
				Description: "One-sentence explanation of the theme",
				Required:    true,
			},
			"emoji": {
				Type:        gollem.TypeString,
				Description: "Single emoji representing the theme",
				Required:    true,
			},
		},
	}
}
