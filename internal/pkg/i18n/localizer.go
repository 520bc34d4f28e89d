// Package i18n renders notification catalog keys in the user's language.
package i18n

import (
	"fmt"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Localizer resolves keys through an x/text catalog. English messages are
// the keys themselves, so only translations are registered.
type Localizer struct {
	printers map[user.Language]*message.Printer
	fallback *message.Printer
}

func NewLocalizer() (*Localizer, error) {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, translation := range french {
		if err := builder.SetString(language.French, key, translation); err != nil {
			return nil, fmt.Errorf("register french message %q: %w", key, err)
		}
	}

	english := message.NewPrinter(language.English, message.Catalog(builder))
	return &Localizer{
		printers: map[user.Language]*message.Printer{
			user.French:  message.NewPrinter(language.French, message.Catalog(builder)),
			user.English: english,
		},
		fallback: english,
	}, nil
}

func (l *Localizer) Localize(lang user.Language, key string, args ...any) string {
	printer, ok := l.printers[lang]
	if !ok {
		printer = l.fallback
	}
	return printer.Sprintf(key, args...)
}

// Missing lists the keys without a translation for lang.
func (l *Localizer) Missing(lang user.Language, keys []string) []string {
	if lang == user.English {
		return nil
	}

	var missing []string
	for _, key := range keys {
		if _, ok := french[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
