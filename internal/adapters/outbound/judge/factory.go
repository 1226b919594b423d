package judge

import (
	"fmt"

	"github.com/toolgauge/toolgauge/internal/domain/judging"
)

// Resolve maps a configured provider name to an implementation.
func Resolve(name string) (judging.Provider, error) {
	switch name {
	case "anthropic", "":
		return NewAnthropic()
	case "openai":
		return NewOpenAI()
	case "heuristic":
		return NewHeuristic(), nil
	default:
		return nil, fmt.Errorf("unknown judge provider %q (valid: anthropic, openai, heuristic)", name)
	}
}
