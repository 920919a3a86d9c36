// Package contacts loads real birthdays from vCard data (a local file or a
// CardDAV/WebDAV URL) and checks the resulting group for shared birthdays,
// so the simulated probability can be compared against an actual group.
package contacts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-paradox/internal/config"
	"github.com/tartampluch/go-paradox/internal/simulation"
)

// Person is one contact with a usable birthday, projected onto the
// 365-day simulation model.
type Person struct {
	Name     string
	Birthday simulation.Day
}

// Loader fetches and decodes vCard data into people.
type Loader struct {
	// Fetcher retrieves remote sources. Only required when Load is given
	// an http(s) URL.
	Fetcher VCardFetcher
}

// Load reads the source (a .vcf path or an http(s) URL), decodes its
// vCards, and returns every contact with a parseable birthday. Malformed
// cards and unparseable dates are skipped with a logged warning rather
// than failing the whole import.
func (l *Loader) Load(ctx context.Context, source, user, pass string) ([]Person, error) {
	reader, err := l.acquireStream(ctx, source, user, pass)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
	}
	// Best effort close. Errors in Close() for read-only sources are rarely actionable here.
	defer func() { _ = reader.Close() }()

	return l.decode(ctx, reader)
}

// acquireStream opens the appropriate data source for the given reference.
func (l *Loader) acquireStream(ctx context.Context, source, user, pass string) (io.ReadCloser, error) {
	if source == "" {
		return nil, errors.New(config.ErrSourceEmpty)
	}
	if strings.HasPrefix(source, config.SchemeHTTP+"://") || strings.HasPrefix(source, config.SchemeHTTPS+"://") {
		if l.Fetcher == nil {
			return nil, errors.New(config.ErrFetcherNil)
		}
		return l.Fetcher.Fetch(ctx, source, user, pass)
	}
	return os.Open(source)
}

// decode walks the vCard stream and extracts (name, birthday) pairs.
func (l *Loader) decode(ctx context.Context, r io.Reader) ([]Person, error) {
	decoder := vcard.NewDecoder(r)
	stats := struct{ processed, withBday int }{0, 0}
	var people []Person

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Log error but continue to next card to maximize data recovery
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompContacts,
				config.LogKeyError, err)
			continue
		}

		stats.processed++
		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birthDate, err := parseDate(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompContacts,
				config.LogKeyValue, bday.Value)
			continue
		}
		stats.withBday++

		// Name Strategy: FN (Formatted) > N (Structured) > Fallback
		name := config.FallbackName
		if fn := card.Get(config.VCardFN); fn != nil {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil {
			name = n.Value
		}

		people = append(people, Person{
			Name:     name,
			Birthday: simulation.DayFromDate(birthDate),
		})
	}

	slog.Info(config.MsgContactsDone,
		config.LogKeyComponent, config.CompContacts,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.processed),
			slog.Int(config.LogKeyFound, stats.withBday),
		),
	)
	return people, nil
}

// parseDate handles various vCard date formats.
func parseDate(value string) (time.Time, error) {
	// Full dates
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}

	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, nil
		}
	}

	// Truncated dates (year unknown) - vCard specific.
	// The simulation model only needs month and day anyway.
	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			// Leap year anchor keeps --02-29 parseable.
			return time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, errors.New(config.ErrDateParse)
}
