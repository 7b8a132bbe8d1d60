package insights

import (
	"fmt"
	"strings"

	"laudure/internal/dataset"
)

const noInsightsSummary = "No specific insights available"

// Summary renders the human-readable reservation note: present fields joined
// with ". " in a fixed order (values, tenure, special needs, taste, staff
// preference, interests).
func Summary(ci dataset.CustomerInsights) string {
	var parts []string

	if len(ci.CustomerValues) > 0 {
		parts = append(parts, fmt.Sprintf("Values: %s", strings.Join(ci.CustomerValues, ", ")))
	}
	if ci.IsNewCustomer != nil {
		if *ci.IsNewCustomer {
			parts = append(parts, "New customer")
		} else {
			parts = append(parts, "Returning customer")
		}
	}
	if len(ci.SpecialAccommodations) > 0 {
		parts = append(parts, fmt.Sprintf("Special needs: %s", strings.Join(ci.SpecialAccommodations, ", ")))
	}
	if ci.TastePreferences != dataset.TasteUnknown {
		parts = append(parts, fmt.Sprintf("Taste preference: %s", ci.TastePreferences))
	}
	if len(ci.StaffInteractionPreferences) > 0 {
		styles := make([]string, len(ci.StaffInteractionPreferences))
		for i, style := range ci.StaffInteractionPreferences {
			styles[i] = string(style)
		}
		parts = append(parts, fmt.Sprintf("Likes staff who are: %s", strings.Join(styles, ", ")))
	}
	if len(ci.PersonalInterests) > 0 {
		parts = append(parts, fmt.Sprintf("Personal interests: %s", strings.Join(ci.PersonalInterests, ", ")))
	}

	if len(parts) == 0 {
		return noInsightsSummary
	}
	return strings.Join(parts, ". ")
}
