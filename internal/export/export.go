// Package export renders a sampled trial as an iCalendar feed, one all-day
// event per distinct birthday in the fixed reference year. The file can be
// opened in any calendar app to eyeball the collisions a trial produced.
package export

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-paradox/internal/config"
	"github.com/tartampluch/go-paradox/internal/simulation"
)

// Write encodes the trial onto w. An empty trial still produces a valid
// (empty) VCALENDAR so downstream parsers never see truncated output.
func Write(w io.Writer, days []simulation.Day, clock Clock) error {
	counts := simulation.CountOccurrences(days)
	if len(counts) == 0 {
		_, err := io.WriteString(w, config.StubVCalendar)
		return err
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(clock.Now().UTC())

	for _, entry := range counts.Sorted() {
		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, eventUID(entry))
		event.Props.SetText(config.PropSummary, fmt.Sprintf(config.FallbackSummary, entry.Count))

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(entry.Day.Date())
		event.Props.Set(dtStartProp)
		event.Props.Set(dtStampProp)

		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteFile exports the trial to the given path.
func WriteFile(path string, days []simulation.Day, clock Clock) error {
	f, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermShared)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrExportWrite, err)
	}

	if err := Write(f, days, clock); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrExportWrite, err)
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyFile, path,
		config.LogKeyCount, len(days),
	)
	return nil
}

// eventUID derives a deterministic UID from the day and its count, so
// re-exports of the same trial update rather than duplicate events.
func eventUID(entry simulation.Occurrence) string {
	input := fmt.Sprintf(config.FormatHashInput, int(entry.Day), entry.Count, config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	base := fmt.Sprintf("%x", hash[:config.UIDHashLength])
	return fmt.Sprintf(config.FormatUID, base, config.ICalDomain)
}
