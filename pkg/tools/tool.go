package tools

import "context"

// Tool is the interface for all tools. Every tool takes a single free-text argument.
type Tool interface {
	Name() string
	Description() string
	Run(ctx context.Context, text string) (string, error)
}
