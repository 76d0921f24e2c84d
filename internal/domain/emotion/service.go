package emotion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	apperrors "github.com/moodtrace/dailymood/pkg/errors"
)

// Service exposes day-level emotion classification to callers.
type Service interface {
	Classify(ctx context.Context, req Request) (Response, error)
}

type service struct {
	cfg    Config
	logger *slog.Logger
}

// NewService wires up the classification domain.
func NewService(cfg Config, logger *slog.Logger) Service {
	return &service{cfg: cfg, logger: logger.With("component", "emotion.service")}
}

func (s *service) Classify(ctx context.Context, req Request) (Response, error) {
	strategy := req.Strategy
	if strategy == "" {
		strategy = s.cfg.Strategy
	}
	if _, err := ParseStrategy(string(strategy)); err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeUnknownStrategy, "strategy is not one of the supported algorithms", err)
	}

	if err := s.checkRange(req.Readings); err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidValence, "readings contain an out-of-range valence", err)
	}

	category, err := strategy.Classify(req.Readings)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoReadings):
			return Response{}, apperrors.Wrap(apperrors.CodeEmptyInput, "day has no readings to classify", err)
		default:
			return Response{}, apperrors.Wrap(apperrors.CodeInvalidValence, "readings contain an invalid valence", err)
		}
	}

	res := Response{
		Strategy:     strategy,
		Category:     category,
		ReadingCount: len(req.Readings),
		Tally:        NewTally(req.Readings),
	}
	s.logger.Info("day classified",
		"strategy", strategy,
		"readings", res.ReadingCount,
		"category", category,
	)
	return res, nil
}

// checkRange rejects valence values outside the configured sane range
// before any strategy sees them. A misconfigured or disabled range
// (min >= max) turns the check off; non-finite values are still caught
// by the strategies themselves.
func (s *service) checkRange(readings []Reading) error {
	if s.cfg.MinValence >= s.cfg.MaxValence {
		return nil
	}
	for i, r := range readings {
		if r.Valence < s.cfg.MinValence || r.Valence > s.cfg.MaxValence {
			return fmt.Errorf("%w: reading %d valence %v outside [%v, %v]",
				ErrInvalidValence, i, r.Valence, s.cfg.MinValence, s.cfg.MaxValence)
		}
	}
	return nil
}
