package usecases

import (
	"regexp"
	"strings"
	"time"

	"turf-booking-service/internal/module/payment/models/entity"

	"github.com/goccy/go-json"
)

const slotClockLayout = "3:04 PM"

var (
	slotToken = regexp.MustCompile(`(?i)SLOT\d+PMA`)
	slotID    = regexp.MustCompile(`(?i)^SLOT\d+PMA$`)
)

type slotSummary struct {
	SlotID   string `json:"slotId"`
	SlotName string `json:"slotName,omitempty"`
}

func encodeSlotSummary(ids, names []string) string {
	summary := make([]slotSummary, len(ids))
	for i, id := range ids {
		summary[i] = slotSummary{SlotID: id}
		if i < len(names) {
			summary[i].SlotName = names[i]
		}
	}
	b, _ := json.Marshal(summary)
	return string(b)
}

// ParseSlotSummary reads slot ids from the echoed summary. It tries the JSON encoding first
// and falls back to scanning the raw text for slot-shaped tokens, which survives truncation.
func ParseSlotSummary(raw string) ([]string, bool) {
	if ids, ok := parseSummaryJSON(raw); ok {
		return ids, true
	}
	ids := dedupe(slotToken.FindAllString(raw, -1))
	return ids, len(ids) > 0
}

func parseSummaryJSON(raw string) ([]string, bool) {
	var objects []slotSummary
	if err := json.Unmarshal([]byte(raw), &objects); err == nil {
		ids := make([]string, 0, len(objects))
		for _, o := range objects {
			ids = append(ids, o.SlotID)
		}
		return validSlotIDs(ids)
	}

	var plain []string
	if err := json.Unmarshal([]byte(raw), &plain); err == nil {
		return validSlotIDs(plain)
	}
	return nil, false
}

func validSlotIDs(ids []string) ([]string, bool) {
	if len(ids) == 0 {
		return nil, false
	}
	for _, id := range ids {
		if !slotID.MatchString(id) {
			return nil, false
		}
	}
	return dedupe(ids), true
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.ToUpper(id)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// SlotEnded reports whether a slot timing such as "6:00 AM - 7:30 AM" on day has
// finished by now. Timings that cannot be read are treated as still open.
func SlotEnded(timing string, day, now time.Time) bool {
	parts := strings.Split(timing, "-")
	if len(parts) != 2 {
		return false
	}
	start, err := time.Parse(slotClockLayout, strings.ToUpper(strings.TrimSpace(parts[0])))
	if err != nil {
		return false
	}
	end, err := time.Parse(slotClockLayout, strings.ToUpper(strings.TrimSpace(parts[1])))
	if err != nil {
		return false
	}

	y, m, d := day.Date()
	endAt := time.Date(y, m, d, end.Hour(), end.Minute(), 0, 0, day.Location())
	if !end.After(start) {
		// runs past midnight
		endAt = endAt.AddDate(0, 0, 1)
	}
	return !now.Before(endAt)
}

func endedSlots(slots []entity.Slot, day, now time.Time) []string {
	var over []string
	for _, s := range slots {
		if SlotEnded(s.SlotTiming, day, now) {
			over = append(over, s.SlotID)
		}
	}
	return over
}
