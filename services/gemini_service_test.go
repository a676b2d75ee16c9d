package services

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testGeminiService(url string) *GeminiService {
	return &GeminiService{
		apiKey:  "test-key",
		baseURL: url,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestGenerateText(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("api key header = %q", got)
		}

		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 1 {
			t.Errorf("unexpected request shape: %+v", req)
		} else if req.Contents[0].Parts[0].Text != "hello" {
			t.Errorf("prompt = %q", req.Contents[0].Parts[0].Text)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"first "},{"text":"second"}]}}]}`))
	}))
	defer ts.Close()

	got, err := testGeminiService(ts.URL).GenerateText("hello")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if got != "first second" {
		t.Fatalf("got %q, want %q", got, "first second")
	}
}

func TestGeneratePartsEncodesInlineImage(t *testing.T) {
	t.Parallel()

	imageData := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		parts := req.Contents[0].Parts
		if len(parts) != 2 {
			t.Errorf("got %d parts, want 2", len(parts))
		}
		blob := parts[1].InlineData
		if blob == nil {
			t.Errorf("second part has no inline data")
		} else {
			if blob.MIMEType != "image/jpeg" {
				t.Errorf("mime type = %q", blob.MIMEType)
			}
			if blob.Data != base64.StdEncoding.EncodeToString(imageData) {
				t.Errorf("image data = %q", blob.Data)
			}
		}

		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer ts.Close()

	got, err := testGeminiService(ts.URL).GenerateParts([]PromptPart{
		{Text: "what is in this photo?"},
		{Image: imageData, MIMEType: "image/jpeg"},
	})
	if err != nil {
		t.Fatalf("GenerateParts: %v", err)
	}
	if got != "ok" {
		t.Fatalf("got %q, want %q", got, "ok")
	}
}

func TestGenerateSurfacesAPIError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer ts.Close()

	_, err := testGeminiService(ts.URL).GenerateText("hello")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("error = %q", err)
	}
}

func TestGenerateErrorFallsBackToRawBody(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream unavailable`))
	}))
	defer ts.Close()

	_, err := testGeminiService(ts.URL).GenerateText("hello")
	if err == nil || !strings.Contains(err.Error(), "upstream unavailable") {
		t.Fatalf("error = %v", err)
	}
}

func TestGenerateEmptyCandidates(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer ts.Close()

	_, err := testGeminiService(ts.URL).GenerateText("hello")
	if err == nil || !strings.Contains(err.Error(), "empty response") {
		t.Fatalf("error = %v", err)
	}
}

func TestGenerateRequiresAPIKey(t *testing.T) {
	t.Parallel()

	svc := &GeminiService{baseURL: "http://unused", client: http.DefaultClient}
	if _, err := svc.GenerateText("hello"); err == nil {
		t.Fatalf("expected an error without an api key")
	}
}
