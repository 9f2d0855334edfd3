package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/logger"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/utils"
)

// Client is the hosted text-generation service used for the base chat reply.
// The service is a black box behind an OpenAI-compatible chat-completions
// endpoint (the Hugging Face router in deployment).
type Client interface {
	GenerateText(ctx context.Context, system string, user string) (string, error)
}

// Config is passed explicitly at construction; nothing is read from the
// environment at import time.
type Config struct {
	BaseURL     string
	Model       string
	Token       string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		BaseURL:     strings.TrimRight(utils.GetEnv("TEXTGEN_BASE_URL", "https://router.huggingface.co/v1", log), "/"),
		Model:       utils.GetEnv("TEXTGEN_MODEL", "Qwen/Qwen2.5-7B-Instruct", log),
		Token:       utils.GetEnv("HF_TOKEN", "", log),
		Timeout:     time.Duration(utils.GetEnvAsInt("TEXTGEN_TIMEOUT_SECONDS", 60, log)) * time.Second,
		MaxTokens:   utils.GetEnvAsInt("TEXTGEN_MAX_TOKENS", 300, log),
		Temperature: utils.GetEnvAsFloat("TEXTGEN_TEMPERATURE", 0.7, log),
	}
}

type client struct {
	log        *logger.Logger
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config, log *logger.Logger) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, fmt.Errorf("missing HF_TOKEN")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, fmt.Errorf("missing model identifier")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &client{
		log:        log.With("client", "TextGenClient"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *client) GenerateText(ctx context.Context, system string, user string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal chat completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build chat completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &Error{Kind: KindTimeoutOrNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &Error{Kind: KindStatus, Status: resp.StatusCode, Err: fmt.Errorf("%s", strings.TrimSpace(string(snippet)))}
	}

	var out chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &Error{Kind: KindDecode, Err: err}
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", &Error{Kind: KindDecode, Err: fmt.Errorf("no completion text in response")}
	}
	return out.Choices[0].Message.Content, nil
}
