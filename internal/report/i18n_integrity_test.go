package report

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-paradox/internal/config"
)

// TestI18nIntegrity ensures that every translation key defined in config.go
// exists in every embedded locale file. A missing key would silently degrade
// the output to raw message IDs at runtime.
func TestI18nIntegrity(t *testing.T) {
	keysToCheck := []string{
		config.TKeyIntro,
		config.TKeyPrompt,
		config.TKeyPromptInvalid,
		config.TKeyPromptAgain,
		config.TKeyGenerating,
		config.TKeyProgress,
		config.TKeySimDone,
		config.TKeySampleHeader,
		config.TKeyOccurrenceLine,
		config.TKeyNoMatches,
		config.TKeyMatchSentence,
		config.TKeyResultOutOf,
		config.TKeyResultChance,
		config.TKeyResultOutro,
		config.TKeyGroupHeader,
		config.TKeyGroupShared,
		config.TKeyGroupUnique,
	}
	for m := 1; m <= config.MonthsInYear; m++ {
		keysToCheck = append(keysToCheck, fmt.Sprintf(config.TKeyMonthFormat, m))
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			data, err := localeFS.ReadFile("locales/active." + lang + ".json")
			require.NoError(t, err, "Locale file for %q must be embedded", lang)

			var messages map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &messages))

			for _, key := range keysToCheck {
				assert.Contains(t, messages, key, "Locale %q is missing key %q", lang, key)
			}
		})
	}
}

// TestNewBundle_DetectsSupportedLanguages keeps the embedded locales and the
// SupportedLanguages constant in sync.
func TestNewBundle_DetectsSupportedLanguages(t *testing.T) {
	_, langs := NewBundle()
	assert.ElementsMatch(t, config.SupportedLanguages, langs)
}
