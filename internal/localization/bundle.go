package localization

import (
	"fmt"
	"sort"
)

// Bundle отвечает на вопрос «какой текст показать пользователю с таким
// языком по такому ключу». Цепочка фолбэка: запрошенный язык → язык по
// умолчанию. Полнота языка по умолчанию проверяется на старте, поэтому
// Resolve всегда возвращает непустую строку для известного ключа.
type Bundle struct {
	defaultLang string
	locales     map[string]map[string]string
}

func NewBundle(defaultLang string) (*Bundle, error) {
	locales := defaultLocales()

	base, ok := locales[defaultLang]
	if !ok {
		return nil, fmt.Errorf("default locale %q is not shipped", defaultLang)
	}

	for _, key := range requiredKeys {
		if _, ok := base[key]; !ok {
			return nil, fmt.Errorf("default locale %q is missing key %q", defaultLang, key)
		}
	}

	return &Bundle{
		defaultLang: defaultLang,
		locales:     locales,
	}, nil
}

// Resolve возвращает текст по ключу: сначала запрошенный язык, затем
// язык по умолчанию. Неизвестный ключ возвращается как есть, чтобы
// опечатка была видна в чате, а не терялась молча.
func (b *Bundle) Resolve(lang, key string) string {
	if locale, ok := b.locales[lang]; ok {
		if text, ok := locale[key]; ok {
			return text
		}
	}

	if text, ok := b.locales[b.defaultLang][key]; ok {
		return text
	}

	return key
}

func (b *Bundle) DefaultLang() string {
	return b.defaultLang
}

// Languages возвращает отсортированный список поддерживаемых языков.
func (b *Bundle) Languages() []string {
	langs := make([]string, 0, len(b.locales))
	for lang := range b.locales {
		langs = append(langs, lang)
	}

	sort.Strings(langs)

	return langs
}

// MatchButton проверяет, является ли текст сообщения кнопкой меню с
// данным ключом на любом из языков. Reply-клавиатура шлёт обычный
// текст, язык пользователя к этому моменту мог уже смениться.
func (b *Bundle) MatchButton(text, key string) bool {
	for _, locale := range b.locales {
		if locale[key] == text {
			return true
		}
	}

	return false
}
