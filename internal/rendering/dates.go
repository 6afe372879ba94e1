package rendering

import "strings"

// Present is what an ongoing role renders as in place of an end date.
const Present = "Present"

// FormatDateRange renders "start – end" for a finished entry. An ongoing
// entry (current true, or no end date) renders "start – Present" regardless
// of any endDate value left behind in the data. An entry with no dates at all
// renders nothing.
func FormatDateRange(start, end string, current bool) string {
	if current || end == "" {
		if start == "" && !current && end == "" {
			return ""
		}
		if start == "" {
			return Present
		}
		return start + " – " + Present
	}
	if start == "" {
		return end
	}
	return start + " – " + end
}

// FilterBlank drops empty and whitespace-only entries while preserving order.
// The editor may leave blank highlight or keyword slots mid-edit; those must
// never reach either renderer's output.
func FilterBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
