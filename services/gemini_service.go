package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// GeminiService is the gateway to the generative text/vision model.
// Provider failures come back as opaque errors; no retries.
type GeminiService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGeminiService() *GeminiService {
	return &GeminiService{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		baseURL: "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent",
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// PromptPart is one segment of a multimodal prompt: either text or an
// inline image.
type PromptPart struct {
	Text     string
	Image    []byte
	MIMEType string
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *geminiBlob `json:"inline_data,omitempty"`
}

type geminiBlob struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"` // base64-encoded bytes
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateText runs a plain text prompt through the model.
func (g *GeminiService) GenerateText(prompt string) (string, error) {
	return g.generate([]PromptPart{{Text: prompt}})
}

// GenerateParts runs a mixed text/image prompt through the model.
func (g *GeminiService) GenerateParts(parts []PromptPart) (string, error) {
	return g.generate(parts)
}

func (g *GeminiService) generate(parts []PromptPart) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	wireParts := make([]geminiPart, 0, len(parts))
	for _, p := range parts {
		if len(p.Image) > 0 {
			wireParts = append(wireParts, geminiPart{InlineData: &geminiBlob{
				MIMEType: p.MIMEType,
				Data:     base64.StdEncoding.EncodeToString(p.Image),
			}})
			continue
		}
		wireParts = append(wireParts, geminiPart{Text: p.Text})
	}

	body, err := json.Marshal(geminiRequest{Contents: []geminiContent{{Parts: wireParts}}})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", g.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read gemini response error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Try to surface the API error message; fall back to the raw body
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(respBytes, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("gemini api error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("gemini api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out geminiResponse
	if err := json.Unmarshal(respBytes, &out); err != nil {
		bodyPreview := string(respBytes)
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "..."
		}
		return "", fmt.Errorf("decode gemini response error: %v | body: %s", err, bodyPreview)
	}
	if len(out.Candidates) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return text, nil
}
