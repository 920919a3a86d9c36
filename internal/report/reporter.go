package report

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-paradox/internal/config"
	"github.com/tartampluch/go-paradox/internal/simulation"
)

// Reporter turns simulation data into localized sentences.
type Reporter struct {
	Localizer *i18n.Localizer

	// Languages lists the locale codes detected in the embedded bundle.
	Languages []string
}

// NewReporter builds a Reporter for the requested language, falling back to
// the default language when the code is empty.
func NewReporter(lang string) *Reporter {
	if lang == "" {
		lang = config.DefaultLanguage
	}

	bundle, langs := NewBundle()
	return &Reporter{
		Localizer: i18n.NewLocalizer(bundle, lang, config.DefaultLanguage),
		Languages: langs,
	}
}

// Intro returns the banner explaining the simulation.
func (r *Reporter) Intro() string {
	return r.getMsg(config.TKeyIntro)
}

// Prompt returns the group-size question.
func (r *Reporter) Prompt() string {
	return r.getMsg(config.TKeyPrompt)
}

// PromptInvalid returns the re-prompt shown after rejected input.
func (r *Reporter) PromptInvalid() string {
	return r.getMsg(config.TKeyPromptInvalid)
}

// PromptAgain returns the continue/quit question.
func (r *Reporter) PromptAgain() string {
	return r.getMsg(config.TKeyPromptAgain)
}

// Generating announces an imminent run.
func (r *Reporter) Generating(people, simulations int) string {
	return r.localize(&i18n.LocalizeConfig{
		MessageID:    config.TKeyGenerating,
		TemplateData: map[string]interface{}{"People": people, "Simulations": simulations},
	})
}

// Progress renders the periodic trial-index notification.
func (r *Reporter) Progress(trials int) string {
	return r.localize(&i18n.LocalizeConfig{
		MessageID:    config.TKeyProgress,
		TemplateData: map[string]interface{}{"Trials": trials},
		PluralCount:  trials,
	})
}

// SimulationsRun announces loop completion.
func (r *Reporter) SimulationsRun(simulations int) string {
	return r.localize(&i18n.LocalizeConfig{
		MessageID:    config.TKeySimDone,
		TemplateData: map[string]interface{}{"Simulations": simulations},
	})
}

// SampleHeader introduces the last-trial occurrence report.
func (r *Reporter) SampleHeader() string {
	return r.getMsg(config.TKeySampleHeader)
}

// MonthName returns the localized month name for the report lines.
func (r *Reporter) MonthName(m time.Month) string {
	return r.getMsg(fmt.Sprintf(config.TKeyMonthFormat, int(m)))
}

// OccurrenceLines renders one line per distinct birthday, ascending by date.
func (r *Reporter) OccurrenceLines(occurrences simulation.OccurrenceMap) []string {
	entries := occurrences.Sorted()
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, r.localize(&i18n.LocalizeConfig{
			MessageID: config.TKeyOccurrenceLine,
			TemplateData: map[string]interface{}{
				"Month": r.MonthName(entry.Day.Month()),
				"Day":   entry.Day.DayOfMonth(),
				"Count": entry.Count,
			},
		}))
	}
	return lines
}

// MatchSentences renders the match summary, ascending by shared count.
// An empty summary yields the single "no matching birthdays" notice.
// Plural handling is delegated to CLDR rules, so the singular form reads
// naturally in every locale.
func (r *Reporter) MatchSentences(summary simulation.MatchSummary) []string {
	groups := summary.Sorted()
	if len(groups) == 0 {
		return []string{r.getMsg(config.TKeyNoMatches)}
	}

	sentences := make([]string, 0, len(groups))
	for _, group := range groups {
		sentences = append(sentences, r.localize(&i18n.LocalizeConfig{
			MessageID: config.TKeyMatchSentence,
			TemplateData: map[string]interface{}{
				"Dates": group.Days,
				"Count": group.Count,
			},
			PluralCount: group.Days,
		}))
	}
	return sentences
}

// FinalSentences renders the closing result: the match tally over all
// trials and the probability as a percentage with 8 decimal places.
func (r *Reporter) FinalSentences(people, simulations int, result simulation.Result) []string {
	return []string{
		r.localize(&i18n.LocalizeConfig{
			MessageID: config.TKeyResultOutOf,
			TemplateData: map[string]interface{}{
				"Simulations": simulations,
				"People":      people,
				"Matches":     result.TotalMatches,
			},
		}),
		r.localize(&i18n.LocalizeConfig{
			MessageID: config.TKeyResultChance,
			TemplateData: map[string]interface{}{
				"People":      people,
				"Probability": fmt.Sprintf(config.ProbabilityFormat, result.Probability),
			},
		}),
		r.getMsg(config.TKeyResultOutro),
	}
}

// GroupHeader introduces the real-contacts analysis.
func (r *Reporter) GroupHeader(size int) string {
	return r.localize(&i18n.LocalizeConfig{
		MessageID:    config.TKeyGroupHeader,
		TemplateData: map[string]interface{}{"Size": size},
	})
}

// GroupShared returns the sentence preceding shared-birthday lines.
func (r *Reporter) GroupShared() string {
	return r.getMsg(config.TKeyGroupShared)
}

// GroupUnique returns the sentence for a collision-free group.
func (r *Reporter) GroupUnique() string {
	return r.getMsg(config.TKeyGroupUnique)
}

// getMsg is a helper to translate a key safely.
func (r *Reporter) getMsg(key string) string {
	return r.localize(&i18n.LocalizeConfig{MessageID: key})
}

// localize resolves a message, falling back to the message ID so a missing
// translation never blanks the output.
func (r *Reporter) localize(cfg *i18n.LocalizeConfig) string {
	if r.Localizer == nil {
		return cfg.MessageID
	}
	msg, err := r.Localizer.Localize(cfg)
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, cfg.MessageID,
			config.LogKeyError, err,
		)
		return cfg.MessageID
	}
	return msg
}
