// Package agent wraps the remote text-generation service. An Agent tries an
// ordered chain of model endpoints and classifies the final failure, so
// callers see a single Generate call with a stable error taxonomy.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/msomdec/wysider/internal/domain"
)

// Endpoint is one model tier tried during generation.
type Endpoint struct {
	Model       string
	Temperature float32
}

// Classifier maps the error left after the endpoint chain is exhausted onto
// the domain error taxonomy.
type Classifier func(err error) error

// Invoker performs a single completion call against one endpoint.
type Invoker interface {
	Invoke(ctx context.Context, ep Endpoint, system string, history []domain.Message, prompt string) (string, error)
}

// Agent generates text by trying its endpoints in order. Each call runs to
// completion or failure before the next endpoint is attempted; there is no
// caching or streaming.
type Agent struct {
	inv       Invoker
	system    string
	endpoints []Endpoint
	classify  Classifier
}

// NewStrategist returns the Marketer Agent: high-capability model first,
// one retry against the fast tier, credential failures classified separately.
func NewStrategist(inv Invoker) *Agent {
	return &Agent{
		inv:    inv,
		system: strategistInstruction,
		endpoints: []Endpoint{
			{Model: ModelStrategist, Temperature: 0.8},
			{Model: ModelFast, Temperature: 0.8},
		},
		classify: classifyStrategist,
	}
}

// NewSupport returns the CAI support assistant: single fast endpoint, lower
// temperature, no fallback tier.
func NewSupport(inv Invoker) *Agent {
	return &Agent{
		inv:       inv,
		system:    supportInstruction,
		endpoints: []Endpoint{{Model: ModelFast, Temperature: 0.7}},
		classify:  classifySupport,
	}
}

// Generate sends the prompt plus prior turns through the endpoint chain and
// returns the first successful completion.
func (a *Agent) Generate(ctx context.Context, prompt string, history []domain.Message) (string, error) {
	var lastErr error
	for _, ep := range a.endpoints {
		text, err := a.inv.Invoke(ctx, ep, a.system, history, prompt)
		if err == nil {
			return text, nil
		}
		slog.Warn("generation endpoint failed", "model", ep.Model, "error", err)
		lastErr = err
	}
	return "", a.classify(lastErr)
}

func classifyStrategist(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrConfiguration) || looksLikeCredentialError(err) {
		return fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrGeneration, err)
}

func classifySupport(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrConfiguration) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrConnection, err)
}

func looksLikeCredentialError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "api key") ||
		strings.Contains(msg, "api_key") ||
		strings.Contains(msg, "credential")
}
