package i18n

import (
	"encoding/json"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	mu     sync.RWMutex
	bundle *goi18n.Bundle
)

// Init sets up the message bundle. Arabic is the storefront default.
func Init() {
	mu.Lock()
	defer mu.Unlock()
	bundle = goi18n.NewBundle(language.Arabic)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
}

func Load(path string) error {
	mu.Lock()
	defer mu.Unlock()
	_, err := bundle.LoadMessageFile(path)
	return err
}

// LoadMessages registers translations from memory, used at startup and in tests.
func LoadMessages(lang language.Tag, messages map[string]string) error {
	mu.Lock()
	defer mu.Unlock()
	msgs := make([]*goi18n.Message, 0, len(messages))
	for id, other := range messages {
		msgs = append(msgs, &goi18n.Message{ID: id, Other: other})
	}
	return bundle.AddMessages(lang, msgs...)
}

// T localizes a message ID for the given language, falling back to the ID
// itself when no translation exists. Labels in this codebase are already
// human-readable Arabic, so the fallback is presentable.
func T(lang, id string) string {
	mu.RLock()
	defer mu.RUnlock()
	if bundle == nil {
		return id
	}
	localizer := goi18n.NewLocalizer(bundle, lang)
	out, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil || out == "" {
		return id
	}
	return out
}
