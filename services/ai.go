package services

import "context"

// AIClient is the single operation the recommendation resolver needs from a
// generative model backend.
type AIClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
