package internal

import (
	"embed"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message ids shared by the stack and navigator packages.
const (
	MsgDuplicateID      = "DuplicateID"
	MsgNothingToPop     = "NothingToPop"
	MsgEmptySetRoot     = "EmptySetRoot"
	MsgStackNotFound    = "StackNotFound"
	MsgUnknownComponent = "UnknownComponent"
)

var defaultMessages = []*i18n.Message{
	{ID: MsgDuplicateID, Other: "A stack can't contain two children with the same id: {{.ID}}"},
	{ID: MsgNothingToPop, Other: "Nothing to pop"},
	{ID: MsgEmptySetRoot, Other: "setRoot requires at least one child"},
	{ID: MsgStackNotFound, Other: "No stack contains the screen {{.ID}}"},
	{ID: MsgUnknownComponent, Other: "No screen registered with name {{.Name}}"},
}

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle

	localizerMu sync.RWMutex
	localizer   *i18n.Localizer
)

func getBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
		bundle.MustAddMessages(language.English, defaultMessages...)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			GetInternalLogger().Error("Failed to read embedded locales", "error", err)
			return
		}
		for _, entry := range entries {
			data, err := localeFS.ReadFile("locales/" + entry.Name())
			if err != nil {
				GetInternalLogger().Error("Failed to read locale file", "file", entry.Name(), "error", err)
				continue
			}
			if _, err := bundle.ParseMessageFileBytes(data, entry.Name()); err != nil {
				GetInternalLogger().Error("Failed to parse locale file", "file", entry.Name(), "error", err)
			}
		}
	})
	return bundle
}

// SetLocale switches the language used for listener messages.
// Unknown or malformed tags fall back to English.
func SetLocale(tags ...string) {
	loc := i18n.NewLocalizer(getBundle(), append(tags, language.English.String())...)

	localizerMu.Lock()
	localizer = loc
	localizerMu.Unlock()
}

func getLocalizer() *i18n.Localizer {
	localizerMu.RLock()
	loc := localizer
	localizerMu.RUnlock()
	if loc != nil {
		return loc
	}

	SetLocale()
	localizerMu.RLock()
	defer localizerMu.RUnlock()
	return localizer
}

// Localize renders the message with the given id in the active locale.
// If rendering fails the message id is returned so callers always get text.
func Localize(messageID string, data map[string]any) string {
	msg, err := getLocalizer().Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		GetInternalLogger().Debug("Localize reported an error", "id", messageID, "error", err)
		if msg == "" {
			return messageID
		}
	}
	return msg
}
