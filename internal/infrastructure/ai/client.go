// Package ai talks to the OpenAI-compatible completion gateway. Two request
// strategies exist side by side: plain completions whose text is mined for a
// JSON payload, and forced function calls whose arguments are returned
// verbatim for the caller to decode.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"

	"skillchain/internal/config"
)

var (
	ErrRateLimited    = errors.New("rate limit exceeded")
	ErrQuotaExhausted = errors.New("ai credits exhausted")
)

// FunctionSchema declares a provider-native function-call contract.
// Parameters holds a raw JSON-schema object.
type FunctionSchema struct {
	Name        string
	Description string
	Parameters  map[string]any
}

type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	CallFunction(ctx context.Context, systemPrompt, userPrompt string, fn FunctionSchema) (json.RawMessage, error)
}

type GatewayClient struct {
	client *openai.Client
	model  string
	logger *log.Logger
}

func NewGatewayClient(cfg config.AIConfig, logger *log.Logger) *GatewayClient {
	ocfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		ocfg.BaseURL = cfg.BaseURL
	}
	return &GatewayClient{
		client: openai.NewClientWithConfig(ocfg),
		model:  cfg.Model,
		logger: logger,
	}
}

func (c *GatewayClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", c.classify(err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("ai gateway returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *GatewayClient) CallFunction(ctx context.Context, systemPrompt, userPrompt string, fn FunctionSchema) (json.RawMessage, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Tools: []openai.Tool{{
			Type: openai.ToolTypeFunction,
			Function: openai.FunctionDefinition{
				Name:        fn.Name,
				Description: fn.Description,
				Parameters:  fn.Parameters,
			},
		}},
		ToolChoice: openai.ToolChoice{
			Type:     openai.ToolTypeFunction,
			Function: openai.ToolFunction{Name: fn.Name},
		},
	})
	if err != nil {
		return nil, c.classify(err)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("ai gateway returned no choices")
	}
	calls := resp.Choices[0].Message.ToolCalls
	if len(calls) == 0 {
		return nil, fmt.Errorf("ai gateway returned no %s tool call", fn.Name)
	}
	return json.RawMessage(calls[0].Function.Arguments), nil
}

// classify maps upstream rate-limit and credit-exhaustion statuses onto
// sentinel errors; everything else passes through unretried.
func (c *GatewayClient) classify(err error) error {
	status := 0

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if status == 0 && errors.As(err, &reqErr) {
		status = reqErr.HTTPStatusCode
	}

	switch status {
	case 429:
		if c.logger != nil {
			c.logger.Printf("[AI] gateway rate limited | error=%v", err)
		}
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	case 402:
		if c.logger != nil {
			c.logger.Printf("[AI] gateway quota exhausted | error=%v", err)
		}
		return fmt.Errorf("%w: %v", ErrQuotaExhausted, err)
	default:
		return err
	}
}
