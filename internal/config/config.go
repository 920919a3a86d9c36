package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Go-Paradox/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName        = "Go Paradox"
	AppID          = "com.github.tartampluch.go-paradox"
	KeyringService = "com.github.tartampluch.go-paradox"
	LogFileName    = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// FilePermShared represents -rw-r--r--.
	// Used for exported calendar files, which are meant to be shared.
	FilePermShared fs.FileMode = 0644

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion     = "version"
	FlagDebug       = "debug"
	FlagLang        = "lang"
	FlagPeople      = "people"
	FlagSimulations = "simulations"
	FlagSeed        = "seed"
	FlagExport      = "export"
	FlagContacts    = "contacts"
	FlagUser        = "user"
	FlagPass        = "pass"

	FlagDescVersion     = "Show application version and exit"
	FlagDescDebug       = "Enable debug logging to stdout"
	FlagDescLang        = "Output language (ISO 639-1 code, e.g. en, fr)"
	FlagDescPeople      = "Group size for a single non-interactive run (1-1000)"
	FlagDescSimulations = "Number of trials per simulation run"
	FlagDescSeed        = "Random seed (0 picks a fresh seed)"
	FlagDescExport      = "Write the sampled trial to this iCalendar file"
	FlagDescContacts    = "Analyze real birthdays from a .vcf file or CardDAV URL"
	FlagDescUser        = "HTTP Basic Auth username for the contacts URL"
	FlagDescPass        = "HTTP Basic Auth password (falls back to system keyring)"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Simulation Model & Limits
// -----------------------------------------------------------------------------

const (
	// DaysInYear fixes the calendar model: a non-leap 365-day year.
	// Day 366 is never generated.
	DaysInYear = 365

	MonthsInYear = 12

	// ReferenceYear anchors day-of-year values when a concrete calendar
	// date is needed (iCalendar export). 2001 is not a leap year.
	ReferenceYear = 2001

	// DefaultSimulations is the trial count used when the caller does not
	// specify one.
	DefaultSimulations = 100000

	// ProgressInterval controls how often the driver reports progress.
	ProgressInterval = 10000

	MinGroupSize = 1
	MaxGroupSize = 1000

	// PercentScale converts an empirical frequency into a percentage.
	PercentScale = 100

	// ProbabilityFormat renders the final probability with 8 decimals.
	ProbabilityFormat = "%.8f"
)

// SupportedLanguages defines the list of available output languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

const DefaultLanguage = "en"

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyIntro          = "intro"
	TKeyPrompt         = "prompt_group_size"
	TKeyPromptInvalid  = "prompt_invalid"
	TKeyPromptAgain    = "prompt_try_again"
	TKeyGenerating     = "generating"      // Requires People, Simulations
	TKeyProgress       = "progress"        // Requires Trials (plural)
	TKeySimDone        = "simulations_run" // Requires Simulations
	TKeySampleHeader   = "sample_header"
	TKeyOccurrenceLine = "occurrence_line" // Requires Month, Day, Count
	TKeyNoMatches      = "no_matches"
	TKeyMatchSentence  = "match_sentence" // Requires Dates (plural), Count
	TKeyResultOutOf    = "result_out_of"  // Requires Simulations, People, Matches
	TKeyResultChance   = "result_chance"  // Requires People, Probability
	TKeyResultOutro    = "result_outro"
	TKeyGroupHeader    = "group_header" // Requires Size
	TKeyGroupShared    = "group_shared"
	TKeyGroupUnique    = "group_unique"

	// TKeyMonthFormat builds the key for localized month names (month_1..month_12).
	TKeyMonthFormat = "month_%d"
)

// -----------------------------------------------------------------------------
// Data Formats & File Extensions
// -----------------------------------------------------------------------------

const (
	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// DefaultLeapYear is the leap year fallback for dates like --02-29.
	DefaultLeapYear = 2000
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Paradox//Engine//EN"
	ICalCalName = "Sampled Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "goparadox"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"

	FallbackName = "Unknown"

	// UID Generation
	UIDSalt         = "go-paradox-v1-" // Salt for deterministic UID generation
	UIDHashLength   = 16
	FormatHashInput = "%d|%d|%s"
	FormatUID       = "%s@%s"

	// FallbackSummary renders an event title when no localizer is wired.
	FallbackSummary = "Birthday x%d"

	// StubVCalendar is the minimal valid iCalendar object used when the
	// sampled trial is empty. Using a constant avoids hardcoded magic
	// strings in the export logic.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	MaxHTTPResponseSize = 256 * 1024 * 1024 // 256MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"

	HeaderUserAgent = "User-Agent"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidURL    = "invalid URL structure"
	ErrProtocol      = "unsupported protocol scheme (http/https only)"
	ErrVCardParse    = "failed to parse vCard stream"
	ErrICalEncode    = "failed to encode iCalendar data"
	ErrExportWrite   = "failed to write iCalendar export"
	ErrDateParse     = "unable to parse date"
	ErrSourceEmpty   = "configuration error: contacts source is empty"
	ErrFetcherNil    = "internal error: network fetcher is not initialized"
	ErrLogFile       = "failed to open log file"
	ErrCacheDir      = "could not determine user cache dir"
	ErrCreateDir     = "could not create app cache dir"
	ErrAppFailed     = "application failed unexpectedly"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
	ErrReadInput     = "failed to read user input"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgSimStarted    = "Simulation started"
	MsgSimFinished   = "Simulation finished"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgContactsDone  = "Contacts analysis complete"
	MsgExportDone    = "Sampled trial exported"
	MsgPassFail      = "Password retrieval failed (might be empty)"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent   = "component"
	LogKeyError       = "error"
	LogKeyURL         = "url"
	LogKeyStatus      = "status_code"
	LogKeyFile        = "file"
	LogKeyLang        = "lang"
	LogKeyKey         = "key"
	LogKeySeed        = "seed"
	LogKeyPeople      = "people"
	LogKeySimulations = "simulations"
	LogKeyMatches     = "matches"
	LogKeyProbability = "probability"
	LogKeyDuration    = "duration_ms"
	LogKeyCount       = "count"
	LogKeyValue       = "value"
	LogKeyUser        = "user"
	LogKeyTotal       = "total_cards"
	LogKeyFound       = "birthdays_found"
	LogKeyStats       = "stats"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain       = "main"
	CompCLI        = "cli"
	CompSimulation = "simulation"
	CompContacts   = "contacts"
	CompFetcher    = "fetcher"
	CompExport     = "export"
	CompI18n       = "i18n"
)
