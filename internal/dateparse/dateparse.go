// Package dateparse extracts a calendar date and time of day from free-form
// Turkish text. It is a best-effort heuristic, not a grammar: users mix
// notations ("20 şubat saat 15.30", "20.02.2026 14:00", "yarın 15:00") and a
// fixed precedence order resolves the ambiguity. The caller supplies the
// current instant and the business timezone so the function stays pure.
package dateparse

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// User-facing failure messages. The engine forwards these verbatim as replies.
var (
	ErrEmpty           = errors.New("Tarih boş.")
	ErrUnparsed        = errors.New("Tarih anlaşılamadı. Lütfen '20 Şubat saat 15.30' veya '20.02.2026 14:00' formatında yazın.")
	ErrInvalidTime     = errors.New("Geçersiz saat. 00:00 - 23:59 arasında olmalı.")
	ErrInvalidDayMonth = errors.New("Geçersiz gün veya ay.")
	ErrInvalidDate     = errors.New("Geçersiz tarih.")
)

// Result is the successful outcome of Parse.
type Result struct {
	ISO      string // RFC3339 timestamp in the configured timezone
	Readable string // DD.MM.YYYY HH:MM rendering of the same instant
}

// Turkish month names, diacritic spelling first, ASCII variant after it.
// Scanned in order; the first name found as a substring wins.
var months = []struct {
	name string
	num  int
}{
	{"ocak", 1}, {"şubat", 2}, {"subat", 2}, {"mart", 3}, {"nisan", 4},
	{"mayıs", 5}, {"mayis", 5}, {"haziran", 6},
	{"temmuz", 7}, {"ağustos", 8}, {"agustos", 8},
	{"eylül", 9}, {"eylul", 9}, {"ekim", 10},
	{"kasım", 11}, {"kasim", 11}, {"aralık", 12}, {"aralik", 12},
}

var (
	// Time of day, in precedence order: an explicit "saat" marker, then a
	// trailing H.MM / H:MM, then one anywhere in the text.
	timeMarked   = regexp.MustCompile(`saat\s*(\d{1,2})[.:](\d{2})`)
	timeTrailing = regexp.MustCompile(`(\d{1,2})[.:](\d{2})\s*$`)
	timeAnywhere = regexp.MustCompile(`(\d{1,2})[.:](\d{2})`)

	// "20.02.2026" / "20/02/2026" / "20-02-2026"
	numericDate = regexp.MustCompile(`(\d{1,2})[./\-](\d{1,2})[./\-](\d{4})`)
)

// Parse extracts a date and time from input relative to now in loc.
// On failure the returned error is one of the exported Err values; exactly
// one of the result and the error is non-nil.
func Parse(input string, now time.Time, loc *time.Location) (*Result, error) {
	if input == "" {
		return nil, ErrEmpty
	}

	raw := strings.TrimSpace(strings.ToLower(input))
	now = now.In(loc)

	day := 0
	month := 0
	year := now.Year()
	hour := 10
	minute := 0

	for _, pat := range []*regexp.Regexp{timeMarked, timeTrailing, timeAnywhere} {
		if m := pat.FindStringSubmatch(raw); m != nil {
			hour, _ = strconv.Atoi(m[1])
			minute, _ = strconv.Atoi(m[2])
			break
		}
	}

	if m := numericDate.FindStringSubmatch(raw); m != nil {
		day, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
	}

	if day == 0 {
		for _, entry := range months {
			idx := strings.Index(raw, entry.name)
			if idx < 0 {
				continue
			}
			month = entry.num
			if d, ok := digitsBefore(raw, idx); ok {
				day = d
			}
			if y, ok := yearAfter(raw, idx+len(entry.name)); ok {
				year = y
			}
			break
		}
	}

	if day == 0 {
		if strings.Contains(raw, "bugün") || strings.Contains(raw, "bugun") {
			day, month, year = now.Day(), int(now.Month()), now.Year()
		} else if strings.Contains(raw, "yarın") || strings.Contains(raw, "yarin") {
			tomorrow := now.AddDate(0, 0, 1)
			day, month, year = tomorrow.Day(), int(tomorrow.Month()), tomorrow.Year()
		}
	}

	if day == 0 || month == 0 {
		return nil, ErrUnparsed
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return nil, ErrInvalidTime
	}
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return nil, ErrInvalidDayMonth
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
	// time.Date normalizes overflow (31.04 becomes 01.05); a changed
	// component means the calendar date did not exist.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return nil, ErrInvalidDate
	}

	return &Result{
		ISO:      t.Format(time.RFC3339),
		Readable: t.Format("02.01.2006 15:04"),
	}, nil
}

// digitsBefore reads a 1-2 digit integer immediately preceding position idx,
// allowing whitespace between the number and idx. A longer digit run keeps
// its last two digits, matching how the leftmost 1-2 digit match lands.
func digitsBefore(s string, idx int) (int, bool) {
	i := idx - 1
	for i >= 0 && (s[i] == ' ' || s[i] == '\t') {
		i--
	}
	end := i + 1
	start := end
	for start > 0 && s[start-1] >= '0' && s[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0, false
	}
	if end-start > 2 {
		start = end - 2
	}
	n, err := strconv.Atoi(s[start:end])
	return n, err == nil
}

// yearAfter reads a 4-digit year starting at position idx, allowing leading
// whitespace.
func yearAfter(s string, idx int) (int, bool) {
	i := idx
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	if i+4 > len(s) {
		return 0, false
	}
	for j := i; j < i+4; j++ {
		if s[j] < '0' || s[j] > '9' {
			return 0, false
		}
	}
	n, _ := strconv.Atoi(s[i : i+4])
	return n, true
}
