// ABOUTME: Plan generator composing inference, sanitization and fallback
// ABOUTME: Always returns a usable plan; model failures degrade to the deterministic fallback
package planner

import (
	"context"
	"log"

	"github.com/planforge/planforge/models"
)

const (
	generationMaxTokens   = 4096
	generationTemperature = 0.2
)

type Generator struct {
	client *Client
}

// NewGenerator builds a generator. A nil client disables the inference
// endpoint entirely; every request then uses the fallback.
func NewGenerator(client *Client) *Generator {
	return &Generator{client: client}
}

// Generate produces a validated plan for the intent. It never fails: any
// endpoint, sanitization, parse or validation error degrades to the
// deterministic fallback plan.
func (g *Generator) Generate(ctx context.Context, intent models.ProjectIntent) *models.ProjectPlan {
	if g.client == nil {
		return FallbackPlan(intent)
	}

	messages := []Message{
		{Role: "system", Content: BuildSystemPrompt()},
		{Role: "user", Content: BuildUserPrompt(intent)},
	}

	content, err := g.client.CreateChatCompletion(ctx, messages, generationMaxTokens, generationTemperature)
	if err != nil {
		log.Printf("plan generation degraded to fallback: %v", err)
		return FallbackPlan(intent)
	}

	clean := Sanitize(content)
	if clean == "" {
		log.Printf("plan generation degraded to fallback: no JSON object in model output")
		return FallbackPlan(intent)
	}

	plan, err := ParsePlan(clean)
	if err != nil {
		log.Printf("plan generation degraded to fallback: %v", err)
		return FallbackPlan(intent)
	}

	return plan
}
