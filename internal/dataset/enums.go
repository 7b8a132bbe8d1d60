package dataset

import "strings"

// TastePreference is the closed vocabulary for a diner's dominant taste
// profile. TasteUnknown marks absence and is omitted from serialized output.
type TastePreference string

const (
	TasteUnknown TastePreference = ""
	TasteSweet   TastePreference = "sweet"
	TasteSpicy   TastePreference = "spicy"
	TasteSavory  TastePreference = "savory"
	TasteRich    TastePreference = "rich"
	TasteLight   TastePreference = "light"
)

// ParseTastePreference maps free-form model output onto the closed
// vocabulary. Unrecognized values (including "null") map to TasteUnknown so
// they never pass through into the document.
func ParseTastePreference(value string) (TastePreference, bool) {
	switch TastePreference(strings.ToLower(strings.TrimSpace(value))) {
	case TasteSweet:
		return TasteSweet, true
	case TasteSpicy:
		return TasteSpicy, true
	case TasteSavory:
		return TasteSavory, true
	case TasteRich:
		return TasteRich, true
	case TasteLight:
		return TasteLight, true
	default:
		return TasteUnknown, false
	}
}

// StaffStyle is the closed vocabulary for staff-interaction preferences.
type StaffStyle string

const (
	StaffChatty        StaffStyle = "chatty"
	StaffProfessional  StaffStyle = "professional"
	StaffKnowledgeable StaffStyle = "knowledgeable"
	StaffFriendly      StaffStyle = "friendly"
	StaffEnthusiastic  StaffStyle = "enthusiastic"
	StaffAttentive     StaffStyle = "attentive"
)

// ParseStaffStyle maps free-form model output onto the staff vocabulary.
func ParseStaffStyle(value string) (StaffStyle, bool) {
	switch StaffStyle(strings.ToLower(strings.TrimSpace(value))) {
	case StaffChatty:
		return StaffChatty, true
	case StaffProfessional:
		return StaffProfessional, true
	case StaffKnowledgeable:
		return StaffKnowledgeable, true
	case StaffFriendly:
		return StaffFriendly, true
	case StaffEnthusiastic:
		return StaffEnthusiastic, true
	case StaffAttentive:
		return StaffAttentive, true
	default:
		return "", false
	}
}

// FilterStaffStyles keeps only recognized vocabulary entries, preserving the
// original order and dropping duplicates.
func FilterStaffStyles(values []string) []StaffStyle {
	var out []StaffStyle
	seen := map[StaffStyle]struct{}{}
	for _, value := range values {
		style, ok := ParseStaffStyle(value)
		if !ok {
			continue
		}
		if _, dup := seen[style]; dup {
			continue
		}
		seen[style] = struct{}{}
		out = append(out, style)
	}
	return out
}
