package parties

import (
	"fmt"
	"strings"
)

const tablePromptTemplate = `You are a restaurant host assigning tables for fine dining restaurant "French Laudure".

Customer: %s
Party Size: %d
Date: %s
Special Accommodations: %s

Based on this information, assign an appropriate table number (1-20) considering:
- Party size (tables 1-5 for 2 people, 6-12 for 3-4 people, 13-18 for 5-6 people, 19-20 for 7+ people)
- Special needs (wheelchair access: tables 3,7,11,15; quiet/private: tables 1,8,14,20; piano area: tables 5,12)
- VIP/private dining: tables 19,20

Respond with only the table number (just the number, no extra text):`

func tablePrompt(customerName string, groupSize int, accommodations []string, date string) string {
	rendered := "None"
	if len(accommodations) > 0 {
		rendered = strings.Join(accommodations, ", ")
	}
	return fmt.Sprintf(tablePromptTemplate, customerName, groupSize, date, rendered)
}
