package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"restoran/cart-svc/internal/cart"
	"restoran/i18n"
)

const languagePrefix = "language:"

type LanguageService struct {
	kv     cart.KV
	logger zerolog.Logger
}

func NewLanguageService(kv cart.KV, logger zerolog.Logger) *LanguageService {
	return &LanguageService{kv: kv, logger: logger}
}

// Get returns the session's display language. Anything missing or not
// understood falls back to the default.
func (s *LanguageService) Get(ctx context.Context, session string) i18n.Language {
	data, err := s.kv.Get(ctx, languagePrefix+session)
	switch {
	case errors.Is(err, cart.ErrNotFound):
		return i18n.Default
	case err != nil:
		s.logger.Warn().Err(err).Str("session", session).Msg("failed to read language, using default")
		return i18n.Default
	}
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		s.logger.Debug().Err(err).Str("session", session).Msg("ignoring stored language")
		return i18n.Default
	}
	lang, _ := i18n.Parse(code)
	return lang
}

func (s *LanguageService) Set(ctx context.Context, session, code string) (i18n.Language, error) {
	lang, ok := i18n.Parse(code)
	if !ok {
		return "", fmt.Errorf("%w: unsupported language %q", ErrInvalidInput, code)
	}
	data, _ := json.Marshal(string(lang))
	if err := s.kv.Set(ctx, languagePrefix+session, data); err != nil {
		return "", fmt.Errorf("save language: %w", err)
	}
	return lang, nil
}
