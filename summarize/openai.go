package summarize

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemPrompt = "You summarize video transcripts. Reply with the summary text only, " +
	"no preamble, no headings."

// OpenAIModel implements Model against an OpenAI-compatible chat completions
// endpoint via the official openai-go SDK.
type OpenAIModel struct {
	model  string
	client openai.Client
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string

	// Timeout bounds a single completion call; zero means the SDK default.
	Timeout time.Duration
}

func NewOpenAIModel(cfg OpenAIConfig) (*OpenAIModel, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key missing; set OPENAI_API_KEY")
	}
	if cfg.Model == "" {
		return nil, errors.New("summary model is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &OpenAIModel{model: cfg.Model, client: openai.NewClient(opts...)}, nil
}

func (m *OpenAIModel) Summarize(ctx context.Context, text string, params Params) (string, error) {
	user := fmt.Sprintf(
		"Summarize the following transcript excerpt in roughly %d to %d words:\n\n%s",
		params.MinTokens, params.MaxTokens, text,
	)

	resp, err := m.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(m.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(user),
		},
		MaxTokens: openai.Int(int64(params.MaxTokens)),
	})
	if err != nil {
		return "", errors.Wrap(err, "chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
