// Package llm generates study content through an OpenAI-compatible chat
// completion API.
package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chinmaypg001-sys/TechWave/internal/model"
	"github.com/chinmaypg001-sys/TechWave/internal/quiz"

	openai "github.com/sashabaranov/go-openai"
)

// Client wraps an OpenAI-compatible API client.
type Client struct {
	api   *openai.Client
	model string
}

// New creates a new LLM client. baseURL may point at any
// OpenAI-compatible endpoint; an empty string keeps the default.
func New(baseURL, apiKey, modelName string) *Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Client{
		api:   openai.NewClientWithConfig(config),
		model: modelName,
	}
}

// Ping verifies that the API endpoint is reachable and the key is valid.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.api.ListModels(ctx); err != nil {
		return fmt.Errorf("LLM API ping: %w", err)
	}
	return nil
}

// GenerateQuiz produces four multiple choice and two short-answer
// questions about a topic. When a video is given, the questions are
// anchored to its title and description.
func (c *Client) GenerateQuiz(ctx context.Context, topic, gradeLevel string, video *model.VideoCandidate) (model.Quiz, error) {
	prompt := buildQuizPrompt(topic, gradeLevel, video)

	content, err := c.complete(ctx, prompt, 1500)
	if err != nil {
		return model.Quiz{}, fmt.Errorf("generate quiz: %w", err)
	}

	q := quiz.Parse(content)
	if q.Len() == 0 {
		return model.Quiz{}, fmt.Errorf("generate quiz: no questions parsed from response")
	}
	slog.Debug("quiz generated", "topic", topic, "mcq", len(q.MCQ), "short", len(q.Short))
	return q, nil
}

// GeneratePassage produces an educational reading passage for a topic,
// grade level, and curriculum board.
func (c *Client) GeneratePassage(ctx context.Context, topic, level, gradeLevel, board, length string) (string, error) {
	prompt := buildPassagePrompt(topic, level, gradeLevel, board, length)

	content, err := c.complete(ctx, prompt, 2000)
	if err != nil {
		return "", fmt.Errorf("generate passage: %w", err)
	}
	return content, nil
}

// GenerateFlowchart produces an ASCII flowchart explaining a topic.
func (c *Client) GenerateFlowchart(ctx context.Context, topic, level, gradeLevel, board, complexity string) (string, error) {
	prompt := buildFlowchartPrompt(topic, level, gradeLevel, board, complexity)

	content, err := c.complete(ctx, prompt, 2000)
	if err != nil {
		return "", fmt.Errorf("generate flowchart: %w", err)
	}
	return content, nil
}

func (c *Client) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("LLM API call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
