package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEntryInput_Entry_Defaults(t *testing.T) {
	e := NewEntryInput{Kind: KindBug, Title: "t", ExpectedBehavior: "e", ActualBehavior: "a"}.Entry()
	assert.Equal(t, PriorityNormal, e.Priority)
	assert.Equal(t, StatusOpen, e.Status)
	assert.Zero(t, e.Importance)
	assert.Zero(t, e.Desirability)

	f := NewEntryInput{Kind: KindFeature, Title: "t", ExpectedBehavior: "e"}.Entry()
	assert.Equal(t, DefaultImportance, f.Importance)
	assert.Equal(t, DefaultDesirability, f.Desirability)
	assert.Empty(t, f.ActualBehavior)
}

func TestNewEntryInput_Entry_DropsForeignFields(t *testing.T) {
	f := NewEntryInput{
		Kind: KindFeature, Title: "t", ExpectedBehavior: "e",
		ActualBehavior: "should be dropped", ErrorCode: "E1", ErrorMessage: "boom",
	}.Entry()
	assert.Empty(t, f.ActualBehavior)
	assert.Empty(t, f.ErrorCode)
	assert.Empty(t, f.ErrorMessage)
}

func TestConverted_BugToFeature(t *testing.T) {
	bug := Entry{
		ID: "b1", Kind: KindBug, Title: "Search", ExpectedBehavior: "Finds things",
		ActualBehavior: "Finds nothing", ErrorCode: "E42", ErrorMessage: "nil deref",
		Priority: PriorityHigh, Status: StatusInProgress,
	}

	f := bug.Converted(KindFeature)
	assert.Empty(t, f.ID)
	assert.Equal(t, "b1", f.ConvertedFrom)
	assert.Equal(t, KindFeature, f.Kind)
	assert.Equal(t, bug.Title, f.Title)
	assert.Equal(t, bug.Priority, f.Priority)
	assert.Equal(t, bug.Status, f.Status)
	assert.Empty(t, f.ActualBehavior)
	assert.Empty(t, f.ErrorCode)
	assert.Empty(t, f.ErrorMessage)
	assert.Equal(t, DefaultImportance, f.Importance)
	assert.Equal(t, DefaultDesirability, f.Desirability)
}

func TestConverted_FeatureToBug(t *testing.T) {
	feature := Entry{
		ID: "f1", Kind: KindFeature, Title: "Dark mode", ExpectedBehavior: "A dark theme",
		Importance: 8, Desirability: 9, Priority: PriorityLow, Status: StatusOpen,
	}

	b := feature.Converted(KindBug)
	assert.Equal(t, "f1", b.ConvertedFrom)
	assert.Equal(t, DefaultActualBehavior, b.ActualBehavior)
	assert.Zero(t, b.Importance)
	assert.Zero(t, b.Desirability)
}

func TestConverted_RoundTripKeepsSharedFields(t *testing.T) {
	bug := Entry{
		ID: "b1", Kind: KindBug, Title: "Search", ExpectedBehavior: "Finds things",
		ActualBehavior: "Finds nothing", Priority: PriorityHigh, Status: StatusResolved,
	}

	back := bug.Converted(KindFeature).Converted(KindBug)
	assert.Equal(t, bug.Title, back.Title)
	assert.Equal(t, bug.ExpectedBehavior, back.ExpectedBehavior)
	assert.Equal(t, bug.Priority, back.Priority)
	assert.Equal(t, bug.Status, back.Status)
	// bug-only detail does not survive a round trip through feature
	assert.Equal(t, DefaultActualBehavior, back.ActualBehavior)
}

func TestKindOther(t *testing.T) {
	assert.Equal(t, KindFeature, KindBug.Other())
	assert.Equal(t, KindBug, KindFeature.Other())
	assert.False(t, Kind("note").Valid())
}

func TestEntryJSONShape(t *testing.T) {
	e := Entry{
		ID: "1", Kind: KindBug, Title: "t", ExpectedBehavior: "e",
		Priority: PriorityNormal, Status: StatusOpen,
		CreatedAt:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ConvertedFrom: "should not appear",
	}

	b, err := json.Marshal(e)
	assert.NoError(t, err)

	var m map[string]any
	assert.NoError(t, json.Unmarshal(b, &m))
	assert.Contains(t, m, "featureName")
	assert.Contains(t, m, "type")
	assert.NotContains(t, m, "converted_from")
	assert.NotContains(t, m, "ConvertedFrom")
}
