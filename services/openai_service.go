package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// OpenAIService is a thin client over the OpenAI HTTP API, used for
// question generation, asset generation and free-text/image parsing.
type OpenAIService struct {
	apiKey string
	model  string
	client *http.Client
}

func NewOpenAIService() *OpenAIService {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIService{
		apiKey: os.Getenv("OPENAI_API_KEY"),
		model:  model,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Configured reports whether an API key is available. Callers fall back
// to deterministic stubs when it is not.
func (s *OpenAIService) Configured() bool { return s.apiKey != "" }

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends a single-user-turn chat completion. When imageURL is
// set the content switches to the multimodal part form.
func (s *OpenAIService) Complete(prompt, imageURL string, temperature float64) (string, error) {
	var content any = prompt
	if imageURL != "" {
		content = []map[string]any{
			{"type": "text", "text": prompt},
			{"type": "image_url", "image_url": map[string]string{"url": imageURL}},
		}
	}

	reqBody := chatRequest{
		Model:       s.model,
		Messages:    []chatMessage{{Role: "user", Content: content}},
		Temperature: temperature,
		MaxTokens:   1500,
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.openai.com/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call OpenAI chat API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read chat response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai chat API error %d: %s", resp.StatusCode, string(body))
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("failed to parse chat JSON: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("openai chat API returned no choices")
	}
	return cr.Choices[0].Message.Content, nil
}

type imageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// GenerateImage produces one 1024x1024 asset and returns its URL.
func (s *OpenAIService) GenerateImage(prompt string) (string, error) {
	b, err := json.Marshal(imageRequest{Model: "dall-e-3", Prompt: prompt, N: 1, Size: "1024x1024"})
	if err != nil {
		return "", fmt.Errorf("failed to marshal image payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.openai.com/v1/images/generations", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create image request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call OpenAI image API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai image API error %d: %s", resp.StatusCode, string(body))
	}

	var ir imageResponse
	if err := json.Unmarshal(body, &ir); err != nil {
		return "", fmt.Errorf("failed to parse image JSON: %w", err)
	}
	if len(ir.Data) == 0 {
		return "", fmt.Errorf("openai image API returned no data")
	}
	return ir.Data[0].URL, nil
}

type QuestionRequest struct {
	Type       string `json:"type"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	ImageURL   string `json:"imageUrl"`
	Count      int    `json:"count"`
}

// GenerateQuestions asks for multiple-choice questions as raw JSON,
// either topic-driven or grounded on an image.
func (s *OpenAIService) GenerateQuestions(req QuestionRequest) (json.RawMessage, error) {
	count := req.Count
	if count <= 0 {
		count = 5
	}

	var prompt string
	if req.ImageURL != "" {
		prompt = fmt.Sprintf(`You are an instructional designer. Based on this image, create %d multiple-choice questions.
Focus on observation and interpretation. Each question must include question text, 4 options,
the correct answer index (0-3) and a brief explanation.
Return as JSON: {"questions":[{"question":"...","options":["...","...","...","..."],"correctAnswer":0,"explanation":"..."}]}`, count)
	} else {
		prompt = fmt.Sprintf(`You are an instructional designer.

Generate %d multiple-choice questions about:
Topic: %s
Difficulty: %s
Audience: General learners

Each question must include question text, 4 options, the correct answer index (0-3),
a short explanation, a difficulty rating and tags.
Return as JSON: {"questions":[{"question":"...","options":["...","...","...","..."],"correctAnswer":0,"explanation":"...","difficulty":"%s","tags":["tag1","tag2"]}]}`,
			count, req.Topic, req.Difficulty, req.Difficulty)
	}

	text, err := s.Complete(prompt, req.ImageURL, 0.5)
	if err != nil {
		return nil, err
	}
	parsed := extractJSON(text)
	if parsed == nil {
		return nil, fmt.Errorf("model returned no parseable JSON")
	}
	return parsed, nil
}
