package dataset_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"laudure/internal/dataset"
)

func TestParseTastePreference(t *testing.T) {
	cases := []struct {
		input string
		want  dataset.TastePreference
		ok    bool
	}{
		{"sweet", dataset.TasteSweet, true},
		{" Savory ", dataset.TasteSavory, true},
		{"RICH", dataset.TasteRich, true},
		{"null", dataset.TasteUnknown, false},
		{"", dataset.TasteUnknown, false},
		{"umami", dataset.TasteUnknown, false},
	}
	for _, tc := range cases {
		got, ok := dataset.ParseTastePreference(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseTastePreference(%q) = %q, %v; want %q, %v", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFilterStaffStylesDropsUnrecognized(t *testing.T) {
	styles := dataset.FilterStaffStyles([]string{"chatty", "brusque", "Friendly", "chatty", "attentive"})
	want := []dataset.StaffStyle{dataset.StaffChatty, dataset.StaffFriendly, dataset.StaffAttentive}
	if len(styles) != len(want) {
		t.Fatalf("expected %d styles, got %v", len(want), styles)
	}
	for i, style := range want {
		if styles[i] != style {
			t.Fatalf("expected style %q at %d, got %q", style, i, styles[i])
		}
	}
}

func TestInsightsOmitEmptyFields(t *testing.T) {
	isNew := false
	insights := dataset.CustomerInsights{
		CustomerValues: []string{"authentic experience"},
		IsNewCustomer:  &isNew,
	}
	data, err := json.Marshal(insights)
	if err != nil {
		t.Fatalf("marshal insights: %v", err)
	}
	payload := string(data)
	if !strings.Contains(payload, `"customer_values"`) {
		t.Fatalf("expected customer_values to be present, got %s", payload)
	}
	if !strings.Contains(payload, `"is_new_customer":false`) {
		t.Fatalf("expected explicit false boolean to survive, got %s", payload)
	}
	for _, absent := range []string{"special_accommodations", "taste_preferences", "staff_interaction_preferences", "personal_interests"} {
		if strings.Contains(payload, absent) {
			t.Fatalf("expected %s to be omitted, got %s", absent, payload)
		}
	}
}

func TestInsightsEmptySerializesAsEmptyObject(t *testing.T) {
	data, err := json.Marshal(dataset.CustomerInsights{})
	if err != nil {
		t.Fatalf("marshal insights: %v", err)
	}
	if string(data) != "{}" {
		t.Fatalf("expected empty object, got %s", data)
	}
	if !(dataset.CustomerInsights{}).IsEmpty() {
		t.Fatal("expected zero insights to report empty")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	original := dataset.CustomerInsights{
		CustomerValues:              []string{"conversation"},
		StaffInteractionPreferences: []dataset.StaffStyle{dataset.StaffChatty},
	}
	clone := original.Clone()
	clone.CustomerValues[0] = "changed"
	clone.CustomerValuesJustifications = map[string]string{"conversation": "demo"}
	if original.CustomerValues[0] != "conversation" {
		t.Fatalf("clone mutated original values: %v", original.CustomerValues)
	}
	if original.CustomerValuesJustifications != nil {
		t.Fatal("clone mutated original justifications")
	}
}

func TestWriteAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "detailed_info.json")
	doc := &dataset.Document{Diners: []dataset.Diner{{
		Name: "Emily Chen",
		Reservations: []dataset.Reservation{{
			Date:           "2024-05-20",
			NumberOfPeople: 2,
			Orders: []dataset.Order{
				{Item: "Duck Confit", Price: 40, DietaryTags: []string{}},
				{Item: "Tarte Tatin", Price: 15.5, DietaryTags: []string{"vegetarian"}},
			},
		}},
	}}}

	if err := dataset.WriteJSON(path, doc); err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}
	loaded, err := dataset.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(loaded.Diners) != 1 || loaded.Diners[0].Name != "Emily Chen" {
		t.Fatalf("unexpected document after round trip: %+v", loaded)
	}
	if got := loaded.Diners[0].Reservations[0].Orders[1].Price; got != 15.5 {
		t.Fatalf("expected price 15.5, got %v", got)
	}
}

func TestLoadMissingDocument(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, dataset.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := writeFile(path, "{not json"); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	_, err := dataset.Load(path)
	if !errors.Is(err, dataset.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestWriteContentionIsPersistenceFault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")

	held := flock.New(path + ".lock")
	locked, err := held.TryLock()
	if err != nil || !locked {
		t.Fatalf("seed lock: locked=%v err=%v", locked, err)
	}
	defer func() { _ = held.Unlock() }()

	err = dataset.WriteJSON(path, &dataset.Document{})
	if !errors.Is(err, dataset.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("no document should be written under contention, stat: %v", statErr)
	}
}

func writeFile(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}
