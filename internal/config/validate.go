package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	if c.Extraction.LookupBatchSize <= 0 {
		return fmt.Errorf("extraction.lookup_batch_size must be > 0 (got %d)", c.Extraction.LookupBatchSize)
	}
	if c.Extraction.WriteBatchSize <= 0 {
		return fmt.Errorf("extraction.write_batch_size must be > 0 (got %d)", c.Extraction.WriteBatchSize)
	}

	if c.Queue.PollInterval <= 0 {
		return fmt.Errorf("queue.poll_interval must be > 0 (got %s)", c.Queue.PollInterval)
	}

	if c.RateLimit.ReviewsPerMinute < 0 || c.RateLimit.ExtractPerMinute < 0 {
		return fmt.Errorf("rate_limit values must be >= 0")
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (s *SRSConfig) validate() error {
	if s.DesiredRetention <= 0 || s.DesiredRetention >= 1 {
		return fmt.Errorf("desired_retention must be in (0, 1) (got %v)", s.DesiredRetention)
	}
	if s.MaxIntervalDays <= 0 {
		return fmt.Errorf("max_interval_days must be > 0 (got %d)", s.MaxIntervalDays)
	}
	if s.MasteredStabilityDays <= 0 {
		return fmt.Errorf("mastered_stability_days must be > 0 (got %v)", s.MasteredStabilityDays)
	}
	if s.FastResponseMs <= 0 || s.SlowResponseMs < s.FastResponseMs {
		return fmt.Errorf("response thresholds must satisfy 0 < fast <= slow (got %d, %d)", s.FastResponseMs, s.SlowResponseMs)
	}

	steps, err := ParseLearningSteps(s.LearningStepsRaw)
	if err != nil {
		return fmt.Errorf("learning_steps: %w", err)
	}
	s.LearningSteps = steps

	steps, err = ParseLearningSteps(s.RelearningStepsRaw)
	if err != nil {
		return fmt.Errorf("relearning_steps: %w", err)
	}
	s.RelearningSteps = steps

	weights, err := ParseWeights(s.WeightsRaw)
	if err != nil {
		return fmt.Errorf("weights: %w", err)
	}
	s.Weights = weights

	return nil
}

// ParseLearningSteps parses a comma-separated string of durations (e.g. "1m,10m")
// into a slice of time.Duration. An empty string returns a nil slice.
func ParseLearningSteps(raw string) ([]time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	steps := make([]time.Duration, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		d, err := time.ParseDuration(p)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", p, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("duration %q must be positive", p)
		}
		steps = append(steps, d)
	}

	return steps, nil
}

// ParseWeights parses 19 comma-separated FSRS weights. An empty string
// returns nil, meaning the built-in defaults.
func ParseWeights(raw string) ([]float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	if len(parts) != 19 {
		return nil, fmt.Errorf("expected 19 weights, got %d", len(parts))
	}

	weights := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("weight %d: %w", i, err)
		}
		weights[i] = v
	}
	return weights, nil
}
