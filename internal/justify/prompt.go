package justify

import (
	"fmt"
	"strconv"
	"strings"

	"laudure/internal/dataset"
)

const promptTemplate = `Based on the following customer information, provide a brief one-sentence justification for why this insight was assigned:

%s

%s

Insight Type: %s
Insight Value: %s

Provide a concise, factual sentence explaining what specific evidence from their reviews or emails led to this insight. Keep it under 25 words and focus on the most relevant evidence.

Justification:`

// justificationPrompt pairs the diner's full review/email context with one
// insight type and value.
func justificationPrompt(diner dataset.Diner, insightType, insightValue string) string {
	return fmt.Sprintf(promptTemplate, reviewsContext(diner), emailsContext(diner), insightType, insightValue)
}

func reviewsContext(diner dataset.Diner) string {
	if len(diner.Reviews) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Customer Reviews:\n")
	for _, review := range diner.Reviews {
		fmt.Fprintf(&sb, "- %s (%s/5): %s\n",
			review.RestaurantName,
			strconv.FormatFloat(review.Rating, 'f', -1, 64),
			review.Content)
	}
	return sb.String()
}

func emailsContext(diner dataset.Diner) string {
	if len(diner.Emails) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Customer Emails:\n")
	for _, email := range diner.Emails {
		fmt.Fprintf(&sb, "- Subject: %s\n  Content: %s\n", email.Subject, email.CombinedThread)
	}
	return sb.String()
}
