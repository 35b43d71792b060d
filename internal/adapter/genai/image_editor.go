// Package genai edits campaign images through the Gemini API.
package genai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"pauta-midia/internal/config/configs"
	"pauta-midia/internal/core/port"
)

const defaultModel = "gemini-2.5-flash-image"

// ErrNoImage is returned when the model answers without an image part.
var ErrNoImage = errors.New("model returned no image")

type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ImageEditor implements port.ImageEditor with a multimodal Gemini model.
type ImageEditor struct {
	models  generator
	model   string
	timeout time.Duration
}

var _ port.ImageEditor = (*ImageEditor)(nil)

// NewImageEditor creates a Gemini client from cfg.
func NewImageEditor(ctx context.Context, cfg configs.GenAI) (*ImageEditor, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return newImageEditor(client.Models, cfg.Model, cfg.Timeout), nil
}

func newImageEditor(models generator, model string, timeout time.Duration) *ImageEditor {
	if model == "" {
		model = defaultModel
	}
	return &ImageEditor{models: models, model: model, timeout: timeout}
}

// EditImage sends the image inline together with the instruction and
// returns the first image part of the answer.
func (e *ImageEditor) EditImage(ctx context.Context, img port.Image, prompt string) (*port.Image, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(img.Data, img.MIMEType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}
	resp, err := e.models.GenerateContent(ctx, e.model, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityText), string(genai.ModalityImage)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to edit image: %w", err)
	}

	var text []string
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if p == nil {
				continue
			}
			if p.InlineData != nil && len(p.InlineData.Data) > 0 {
				return &port.Image{Data: p.InlineData.Data, MIMEType: p.InlineData.MIMEType}, nil
			}
			if p.Text != "" {
				text = append(text, p.Text)
			}
		}
	}
	if len(text) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoImage, strings.Join(text, " "))
	}
	return nil, ErrNoImage
}
