package insights

import (
	"fmt"
	"strconv"
	"strings"

	"laudure/internal/dataset"
)

// systemPrompt keeps extraction conservative: the model must only emit
// fields backed by explicit evidence in the customer data.
const systemPrompt = "You are a restaurant data analyst. Analyze customer data and provide insights " +
	"in JSON format only. Be conservative and only include insights you are confident " +
	"about based on clear evidence in the data."

const promptInstructions = `Based on the customer data below, provide insights in the following JSON format. ONLY include a field if you are confident based on clear evidence in the data. If you cannot determine something with confidence, leave that array empty or set to null.

{
    "customer_values": ["value1", "value2"],
    "is_new_customer": true/false,
    "special_accommodations": ["accommodation1", "accommodation2"],
    "taste_preferences": "sweet/spicy/savory/rich/light/null",
    "staff_interaction_preferences": ["chatty", "professional", "knowledgeable", "friendly"],
    "personal_interests": ["interest1", "interest2", "interest3"]
}

Guidelines:
- customer_values: Extract 2-3 action words/phrases from reviews showing what they value (e.g., "conversation", "not too crowded", "personalized service", "authentic experience", "quick service"). Only include if clearly stated.
- is_new_customer: Determine if this is a new customer based on email tone, references to "returning", "back to", etc. Only set if clear evidence.
- special_accommodations: Any special needs like wheelchair access, birthday celebrations, quiet tables, etc. Only if explicitly mentioned.
- taste_preferences: Determine if they prefer "sweet", "spicy", "savory", "rich", or "light" foods based on what they enjoyed in reviews. Use "null" if unclear.
- staff_interaction_preferences: What they like about staff interactions based on positive mentions - "chatty", "professional", "knowledgeable", "friendly", "enthusiastic", "attentive". Only include if clearly mentioned in reviews.
- personal_interests: Things they mention enjoying or being interested in from their reviews - "art", "science", "desserts", "wine", "sports", "travel", "music", "local culture", "history", etc. Only include if explicitly mentioned.

Customer Data:
%s

Respond only with valid JSON. Be conservative - only include insights you are confident about based on clear evidence:`

// buildContext concatenates a diner's reviews and emails into the textual
// evidence block shared with the model.
func buildContext(diner dataset.Diner) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Customer: %s\n\n", diner.Name)

	if len(diner.Reviews) > 0 {
		sb.WriteString("PREVIOUS REVIEWS:\n")
		for _, review := range diner.Reviews {
			fmt.Fprintf(&sb, "- %s: %s (Rating: %s)\n",
				review.RestaurantName, review.Content, formatRating(review.Rating))
		}
		sb.WriteString("\n")
	}

	if len(diner.Emails) > 0 {
		sb.WriteString("RECENT EMAILS:\n")
		for _, email := range diner.Emails {
			fmt.Fprintf(&sb, "- Subject: %s\n  Content: %s\n", email.Subject, email.CombinedThread)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func formatRating(rating float64) string {
	if rating == 0 {
		return "N/A"
	}
	return strconv.FormatFloat(rating, 'f', -1, 64)
}

func insightPrompt(diner dataset.Diner) string {
	return fmt.Sprintf(promptInstructions, buildContext(diner))
}
