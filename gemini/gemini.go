package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
)

// Part is one typed unit of model input: either inline text, or a reference
// to externally stored content (URI plus MIME type). File content is always
// passed by reference, never inlined.
type Part struct {
	Text     string
	FileURI  string
	MIMEType string
}

// Client wraps the Vertex AI Gemini client behind a single generation call.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewClient connects to Vertex AI in the given project and location. Output
// is constrained to JSON for every request this client makes.
func NewClient(ctx context.Context, projectID, location, modelName string) (*Client, error) {
	client, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Vertex AI client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.GenerationConfig.ResponseMIMEType = "application/json"

	return &Client{client: client, model: model}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Generate invokes the model with the ordered part sequence and returns the
// text of the first candidate.
func (c *Client) Generate(ctx context.Context, parts []Part) (string, error) {
	in := make([]genai.Part, 0, len(parts))
	for _, p := range parts {
		if p.FileURI != "" {
			in = append(in, genai.FileData{MIMEType: p.MIMEType, FileURI: p.FileURI})
		} else {
			in = append(in, genai.Text(p.Text))
		}
	}

	resp, err := c.model.GenerateContent(ctx, in...)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}
