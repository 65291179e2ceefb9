// Package agent produces an AI-written commentary on a rendered portfolio
// report. It is an optional extra on top of the pipeline: nothing in the
// report path depends on it.
package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

const instruction = `You are a portfolio analyst. You receive a daily portfolio
report in markdown. Write a short commentary (three to five sentences) on the
portfolio's composition: concentration, notable positions, and anything a
holder should keep an eye on. Do not invent numbers that are not in the
report. Answer in markdown.`

// Commentator asks a model to comment on a rendered report.
type Commentator struct {
	Model string // defaults to defaultModel
}

// Comment sends the report markdown to the model and returns its commentary.
func (c *Commentator) Comment(ctx context.Context, client *genai.Client, reportMD string) (string, error) {
	model := c.Model
	if model == "" {
		model = defaultModel
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
	}
	chat, err := client.Chats.Create(ctx, model, cfg, nil)
	if err != nil {
		return "", err
	}

	resp, err := chat.Send(ctx, &genai.Part{Text: reportMD})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the model")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
