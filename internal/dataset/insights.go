package dataset

// CustomerInsights is the evidence-backed judgment set produced once per
// diner and replicated onto each of that diner's reservations. Every field is
// optional: a field is present only when the model found clear textual
// support for it, so zero values are omitted from the serialized form.
//
// The justification fields are populated by the justify stage. Scalar
// insights gain a single sentence; list insights gain a sentence per element
// keyed by the original value.
type CustomerInsights struct {
	CustomerValues               []string          `json:"customer_values,omitempty"`
	CustomerValuesJustifications map[string]string `json:"customer_values_justifications,omitempty"`

	IsNewCustomer              *bool  `json:"is_new_customer,omitempty"`
	IsNewCustomerJustification string `json:"is_new_customer_justification,omitempty"`

	SpecialAccommodations               []string          `json:"special_accommodations,omitempty"`
	SpecialAccommodationsJustifications map[string]string `json:"special_accommodations_justifications,omitempty"`

	TastePreferences              TastePreference `json:"taste_preferences,omitempty"`
	TastePreferencesJustification string          `json:"taste_preferences_justification,omitempty"`

	StaffInteractionPreferences               []StaffStyle      `json:"staff_interaction_preferences,omitempty"`
	StaffInteractionPreferencesJustifications map[string]string `json:"staff_interaction_preferences_justifications,omitempty"`

	PersonalInterests               []string          `json:"personal_interests,omitempty"`
	PersonalInterestsJustifications map[string]string `json:"personal_interests_justifications,omitempty"`
}

// IsEmpty reports whether no insight field survived conservative extraction.
func (ci CustomerInsights) IsEmpty() bool {
	return len(ci.CustomerValues) == 0 &&
		ci.IsNewCustomer == nil &&
		len(ci.SpecialAccommodations) == 0 &&
		ci.TastePreferences == TasteUnknown &&
		len(ci.StaffInteractionPreferences) == 0 &&
		len(ci.PersonalInterests) == 0
}

// Clone returns a deep copy so each reservation carries an independent
// insight set that later stages can annotate without aliasing.
func (ci CustomerInsights) Clone() CustomerInsights {
	out := ci
	out.CustomerValues = cloneStrings(ci.CustomerValues)
	out.SpecialAccommodations = cloneStrings(ci.SpecialAccommodations)
	out.PersonalInterests = cloneStrings(ci.PersonalInterests)
	if ci.IsNewCustomer != nil {
		value := *ci.IsNewCustomer
		out.IsNewCustomer = &value
	}
	if ci.StaffInteractionPreferences != nil {
		styles := make([]StaffStyle, len(ci.StaffInteractionPreferences))
		copy(styles, ci.StaffInteractionPreferences)
		out.StaffInteractionPreferences = styles
	}
	out.CustomerValuesJustifications = cloneStringMap(ci.CustomerValuesJustifications)
	out.SpecialAccommodationsJustifications = cloneStringMap(ci.SpecialAccommodationsJustifications)
	out.StaffInteractionPreferencesJustifications = cloneStringMap(ci.StaffInteractionPreferencesJustifications)
	out.PersonalInterestsJustifications = cloneStringMap(ci.PersonalInterestsJustifications)
	return out
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func cloneStringMap(values map[string]string) map[string]string {
	if values == nil {
		return nil
	}
	out := make(map[string]string, len(values))
	for key, value := range values {
		out[key] = value
	}
	return out
}
