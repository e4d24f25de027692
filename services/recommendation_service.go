package services

import (
	"QuickBite/models"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
)

const maxRecommendations = 5

// RecommendationService turns a free-text query or meal-type filter plus a
// menu snapshot into an ordered shortlist, asking the model only when the
// local title match comes up empty. Model and parse failures never escape:
// they degrade the result to an empty list.
type RecommendationService struct {
	AI     AIClient
	Logger *slog.Logger
}

func NewRecommendationService(ai AIClient, logger *slog.Logger) *RecommendationService {
	return &RecommendationService{AI: ai, Logger: logger}
}

func (s *RecommendationService) Recommend(ctx context.Context, query, mealType string, menu []models.MenuItem) models.Resolution {
	query = strings.TrimSpace(query)
	mealType = strings.TrimSpace(mealType)

	if query != "" {
		if matches := matchByTitle(query, menu); len(matches) > 0 {
			return models.Resolution{Items: matches}
		}
	}

	prompt, err := buildPrompt(query, mealType, menu)
	if err != nil {
		s.Logger.ErrorContext(ctx, "Failed to build recommendation prompt", slog.Any("error", err))
		return models.Resolution{Degraded: true}
	}

	reply, err := s.AI.Generate(ctx, prompt)
	if err != nil {
		s.Logger.ErrorContext(ctx, "Model call failed", slog.Any("error", err))
		return models.Resolution{Degraded: true}
	}

	candidates, err := parseCandidates(reply)
	if err != nil {
		s.Logger.WarnContext(ctx, "Unparsable model reply",
			slog.Any("error", err),
			slog.String("reply", reply),
		)
		return models.Resolution{Degraded: true}
	}

	// Stable: ties keep the model's emitted order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Relevance > candidates[j].Relevance
	})

	byID := make(map[string]models.MenuItem, len(menu))
	for _, item := range menu {
		byID[item.ID] = item
	}

	var items []models.MenuItem
	for _, candidate := range candidates {
		item, ok := byID[candidate.ID]
		if !ok {
			continue // id not in this snapshot, drop it
		}
		items = append(items, item)
		if len(items) == maxRecommendations {
			break
		}
	}
	return models.Resolution{Items: items}
}

// matchByTitle is the fast path: case-insensitive substring match on the
// product title, store order preserved, no model involved.
func matchByTitle(query string, menu []models.MenuItem) []models.MenuItem {
	query = strings.ToLower(query)

	var matches []models.MenuItem
	for _, item := range menu {
		if strings.Contains(strings.ToLower(item.Title), query) {
			matches = append(matches, item)
			if len(matches) == maxRecommendations {
				break
			}
		}
	}
	return matches
}

func buildPrompt(query, mealType string, menu []models.MenuItem) (string, error) {
	menuJSON, err := json.Marshal(menu)
	if err != nil {
		return "", err
	}

	var directive string
	switch {
	case query != "":
		directive = fmt.Sprintf("Pick up to %d items whose title or description best matches the words in this request: %q.", maxRecommendations, query)
	case mealType != "":
		directive = fmt.Sprintf("Pick %d items suitable for the meal type %q.", maxRecommendations, mealType)
	default:
		directive = fmt.Sprintf("Pick %d items you would generally recommend.", maxRecommendations)
	}

	prompt := fmt.Sprintf(
		"You are a food recommendation assistant for an ordering app.\n\n"+
			"### Menu:\n%s\n\n"+
			"### Task:\n%s\n\n"+
			"### Output rules:\n"+
			"- Respond with a JSON array only, no explanations.\n"+
			"- Each element must be an object {\"id\": \"<menu item id>\", \"relevance\": <number between 0 and 1>}.\n"+
			"- Use only ids that appear in the menu above.",
		string(menuJSON), directive,
	)
	return prompt, nil
}

var fencedBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// cleanJSONResponse removes markdown code block markers like ```json and ```.
func cleanJSONResponse(response string) string {
	cleaned := fencedBlockRe.ReplaceAllString(response, "$1")
	return strings.TrimSpace(cleaned)
}

// parseCandidates decodes the model reply, tolerating a fenced code block
// around the JSON: first the fence-stripped text, then the contents of the
// first fenced block on its own.
func parseCandidates(reply string) ([]models.RecommendationCandidate, error) {
	var candidates []models.RecommendationCandidate
	if err := json.Unmarshal([]byte(cleanJSONResponse(reply)), &candidates); err == nil {
		return candidates, nil
	}
	if match := fencedBlockRe.FindStringSubmatch(reply); match != nil {
		if err := json.Unmarshal([]byte(strings.TrimSpace(match[1])), &candidates); err == nil {
			return candidates, nil
		}
	}
	return nil, fmt.Errorf("model reply is not a JSON candidate array")
}
