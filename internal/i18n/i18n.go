// Package i18n resolves UI strings for the platform's two languages.
// Lookup never fails: an unrecognized key is returned unchanged.
package i18n

import (
	"sync"

	"github.com/insanmekan/journal_management_app/internal/apperrors"
)

// Language identifies one of the supported languages.
type Language string

const (
	LangTurkish Language = "tr"
	LangEnglish Language = "en"
)

// DefaultLanguage is what a fresh resolver starts in.
const DefaultLanguage = LangTurkish

// Resolver holds the active language and answers key lookups. Safe for
// concurrent use. The active language is session state only, it is not
// mirrored to storage.
type Resolver struct {
	mu   sync.RWMutex
	lang Language
}

// NewResolver returns a resolver starting in the default language.
func NewResolver() *Resolver {
	return &Resolver{lang: DefaultLanguage}
}

// Language returns the active language.
func (r *Resolver) Language() Language {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lang
}

// SetLanguage switches the active language.
func (r *Resolver) SetLanguage(lang Language) error {
	if lang != LangTurkish && lang != LangEnglish {
		return apperrors.ErrValidation
	}
	r.mu.Lock()
	r.lang = lang
	r.mu.Unlock()
	return nil
}

// Translate returns the string for key in the active language, or key
// itself when it is not a recognized symbol.
func (r *Resolver) Translate(key string) string {
	return r.TranslateIn(r.Language(), key)
}

// TranslateIn is Translate for an explicit language.
func (r *Resolver) TranslateIn(lang Language, key string) string {
	var catalog map[string]string
	switch lang {
	case LangEnglish:
		catalog = messagesEN
	default:
		catalog = messagesTR
	}
	if s, ok := catalog[key]; ok {
		return s
	}
	return key
}

// Catalog returns the full message map for a language, for clients that
// want to resolve locally.
func (r *Resolver) Catalog(lang Language) map[string]string {
	var src map[string]string
	switch lang {
	case LangEnglish:
		src = messagesEN
	case LangTurkish:
		src = messagesTR
	default:
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
