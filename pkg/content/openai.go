package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrEmptyResponse is returned when the API answers without usable content.
var ErrEmptyResponse = errors.New("openai returned no content")

// OpenAIConfig holds configuration for the OpenAI generator.
type OpenAIConfig struct {
	APIKey     string
	BaseURL    string // Optional: for Azure or compatible APIs
	Model      string
	ImageModel string
	// Timeout bounds every API call. Zero means the caller's context only.
	Timeout time.Duration
}

// OpenAI implements Generator with chat completions and image generation.
type OpenAI struct {
	client     *openai.Client
	model      string
	imageModel string
	timeout    time.Duration
}

// NewOpenAI creates a generator talking to the OpenAI API.
func NewOpenAI(cfg OpenAIConfig) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key not provided (set OPENAI_API_KEY)")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4
	}
	imageModel := cfg.ImageModel
	if imageModel == "" {
		imageModel = openai.CreateImageModelDallE3
	}

	return &OpenAI{
		client:     openai.NewClientWithConfig(clientCfg),
		model:      model,
		imageModel: imageModel,
		timeout:    cfg.Timeout,
	}, nil
}

func (g *OpenAI) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

func (g *OpenAI) chat(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// Tweet implements Generator.
func (g *OpenAI) Tweet(ctx context.Context, req TweetRequest) (string, error) {
	return g.chat(ctx,
		fmt.Sprintf("You are a Twitter content creator specializing in %s. %s. Create engaging tweets that are concise, impactful, and relevant.",
			req.Niche, ToneInstruction(req.Tone)),
		fmt.Sprintf("Create a tweet about: %s. Keep it under 280 characters. Make it engaging and include relevant hashtags.", req.Topic),
		100, 0.8)
}

// Comment implements Generator.
func (g *OpenAI) Comment(ctx context.Context, req CommentRequest) (string, error) {
	return g.chat(ctx,
		fmt.Sprintf("You are a helpful Twitter user who engages authentically. Generate %s comments that add value to conversations.", req.Tone),
		fmt.Sprintf("Generate a thoughtful, engaging comment (max 280 chars) in response to this tweet: %q", req.Tweet),
		80, 0.8)
}

// PersonalizeDM implements Generator.
func (g *OpenAI) PersonalizeDM(ctx context.Context, req DMRequest) (string, error) {
	return g.chat(ctx,
		fmt.Sprintf("You are a professional business development representative in the %s industry. Personalize outreach messages to be warm, professional, and value-focused.", req.Niche),
		fmt.Sprintf("Personalize this DM template for %s: %q. Make it feel genuine and tailored to them.", req.Username, req.Template),
		200, 0.7)
}

// Image implements Generator. It returns the URL of the generated image.
func (g *OpenAI) Image(ctx context.Context, req ImageRequest) (string, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Model:          g.imageModel,
		Prompt:         fmt.Sprintf("Create a professional, eye-catching image for this tweet: %s. Style: modern, clean, suitable for social media.", req.Prompt),
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		Quality:        openai.CreateImageQualityStandard,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return "", fmt.Errorf("openai image generation failed: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", ErrEmptyResponse
	}
	return resp.Data[0].URL, nil
}
