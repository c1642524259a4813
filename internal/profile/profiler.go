// Package profile talks to the external multimodal model that speculates
// about a photographed face. The model answers in free text that usually,
// but not always, embeds a JSON object; parsing is best effort.
package profile

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// prompt mirrors the contract the front-end used: either a JSON object
// with matchFound/criminalData, or the literal no-match phrase.
const prompt = "You are a criminal face verification assistant. A user has uploaded a photo. " +
	"Analyze the face and determine if this person resembles a famous criminal. " +
	"If yes, generate detailed information about the criminal. " +
	"If the person doesn't resemble a known criminal, simply reply with 'No criminal match found.' " +
	"IMPORTANT: Return the data in JSON format with the following structure: " +
	"{ matchFound: boolean, criminalData: { name, age, status, crimeType, story, " +
	"officerAssigned, victims, notableOperations, knownAssociates, lastKnownLocation } }"

// Profiler sends an image to the model and parses the reply.
type Profiler struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, apiKey, model string) (*Profiler, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("profile API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Profiler{client: client, model: model}, nil
}

// IdentifyFromImage submits the image bytes and returns the parsed result
// together with the raw model text.
func (p *Profiler) IdentifyFromImage(ctx context.Context, image []byte, mimeType string) (*Result, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("image is empty")
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(image, mimeType),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		MaxOutputTokens: 1024,
	})
	if err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("profile service returned no text")
	}
	return ParseResult(text), nil
}
