package services

import (
	"context"

	"github.com/hackflow/hackflow-api/pkg/aijson"
	"github.com/hackflow/hackflow-api/pkg/metrics"
)

// generateObject asks the model for a JSON object and decodes it into v
func generateObject(ctx context.Context, llm LLM, feature, system, user string, v any) error {
	return generate(ctx, llm, feature, system, user, v, aijson.ExtractObject)
}

// generateArray asks the model for a JSON array and decodes it into v
func generateArray(ctx context.Context, llm LLM, feature, system, user string, v any) error {
	return generate(ctx, llm, feature, system, user, v, aijson.ExtractArray)
}

func generate(ctx context.Context, llm LLM, feature, system, user string, v any, extract func(string, any) error) error {
	text, err := llm.Complete(ctx, feature, system, user)
	if err != nil {
		metrics.AIGenerations.WithLabelValues(feature, "upstream_error").Inc()
		return err
	}
	if err := extract(text, v); err != nil {
		metrics.AIGenerations.WithLabelValues(feature, "parse_error").Inc()
		return err
	}
	metrics.AIGenerations.WithLabelValues(feature, "success").Inc()
	return nil
}
