// Package calendar exports events as iCalendar (.ics) files.
package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

var timePattern = regexp.MustCompile(`(\d+):(\d+)\s*(AM|PM)`)

// ICSExporter renders events as RFC 5545 calendar files.
type ICSExporter struct{}

func NewICSExporter() *ICSExporter {
	return &ICSExporter{}
}

// Export renders the event as a single-VEVENT calendar. The returned
// filename is derived from the event title.
func (e *ICSExporter) Export(event *domain.Event) (string, []byte) {
	start, end := parseTimeRange(event.Date, event.Time)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//ECU DECA Alumni//EN",
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:%s@ecudeca.org", event.ID),
		fmt.Sprintf("DTSTAMP:%s", start),
		fmt.Sprintf("DTSTART:%s", start),
		fmt.Sprintf("DTEND:%s", end),
		fmt.Sprintf("SUMMARY:%s", event.Title),
		fmt.Sprintf("DESCRIPTION:%s", strings.ReplaceAll(event.Description, "\n", "\\n")),
		fmt.Sprintf("LOCATION:%s", event.Location),
		"END:VEVENT",
		"END:VCALENDAR",
	}

	filename := strings.ReplaceAll(event.Title, " ", "_") + ".ics"
	return filename, []byte(strings.Join(lines, "\r\n"))
}

// parseTimeRange turns a date like "2025-10-26" and a display time like
// "11:00 AM - 3:00 PM" into DTSTART/DTEND timestamps. An unparseable start
// falls back to noon; a missing or unparseable end reuses the start.
func parseTimeRange(date, timeRange string) (string, string) {
	day := strings.ReplaceAll(date, "-", "")

	parts := strings.Split(timeRange, " - ")
	start := parsePart(parts[0])
	end := ""
	if len(parts) > 1 {
		end = parsePart(parts[1])
	}

	if start == "" {
		start = "120000"
	}
	if end == "" {
		end = start
	}
	return day + "T" + start, day + "T" + end
}

func parsePart(s string) string {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if m[3] == "PM" && hour != 12 {
		hour += 12
	}
	if m[3] == "AM" && hour == 12 {
		hour = 0
	}
	return fmt.Sprintf("%02d%02d00", hour, minute)
}
