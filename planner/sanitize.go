// ABOUTME: Sanitizes raw model output into parseable plan JSON
// ABOUTME: Strips reasoning tags and markdown fences, then slices the outermost JSON object
package planner

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"github.com/planforge/planforge/models"
)

var reasoningTagPattern = regexp.MustCompile(`(?is)<(think|thinking|reasoning)>.*?</(think|thinking|reasoning)>`)

// Sanitize extracts the JSON object from raw model output. Models wrap their
// answer in reasoning tags, markdown fences and surrounding prose; all of it
// is discarded. Returns "" when no object can be located. Idempotent on
// already-clean JSON.
func Sanitize(raw string) string {
	text := reasoningTagPattern.ReplaceAllString(raw, "")
	text = strings.TrimSpace(text)

	// Strip leading/trailing markdown fence markers
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}

	return text[start : end+1]
}

// ParsePlan decodes sanitized text into a validated plan. Malformed JSON
// gets one repair attempt before the caller falls back.
func ParsePlan(jsonText string) (*models.ProjectPlan, error) {
	var plan models.ProjectPlan

	if err := json.Unmarshal([]byte(jsonText), &plan); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(jsonText)
		if repairErr != nil {
			return nil, fmt.Errorf("parse plan: %w", err)
		}
		plan = models.ProjectPlan{}
		if err := json.Unmarshal([]byte(repaired), &plan); err != nil {
			return nil, fmt.Errorf("parse repaired plan: %w", err)
		}
	}

	if err := ValidatePlan(&plan); err != nil {
		return nil, err
	}

	return &plan, nil
}
