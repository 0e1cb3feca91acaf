package validations

import (
	"context"
	"strings"
	"testing"

	domainJournal "github.com/AzielCF/az-learn/domains/journal"
	domainManifesto "github.com/AzielCF/az-learn/domains/manifesto"
	domainNote "github.com/AzielCF/az-learn/domains/note"
	domainRoadmap "github.com/AzielCF/az-learn/domains/roadmap"
	pkgError "github.com/AzielCF/az-learn/pkg/error"
	"github.com/stretchr/testify/assert"
)

func steps(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "step"
	}
	return out
}

func TestValidateSaveRoadmap(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		request   domainRoadmap.SaveRoadmapRequest
		wantLimit bool
		wantErr   bool
	}{
		{name: "minimum steps", request: domainRoadmap.SaveRoadmapRequest{Title: "Go", Steps: steps(3)}},
		{name: "maximum steps", request: domainRoadmap.SaveRoadmapRequest{Title: "Go", Steps: steps(20)}},
		{name: "too few steps", request: domainRoadmap.SaveRoadmapRequest{Title: "Go", Steps: steps(2)}, wantLimit: true, wantErr: true},
		{name: "too many steps", request: domainRoadmap.SaveRoadmapRequest{Title: "Go", Steps: steps(21)}, wantLimit: true, wantErr: true},
		{name: "missing title", request: domainRoadmap.SaveRoadmapRequest{Steps: steps(3)}, wantErr: true},
		{name: "empty step", request: domainRoadmap.SaveRoadmapRequest{Title: "Go", Steps: []string{"a", "", "c"}}, wantErr: true},
		{name: "step too long", request: domainRoadmap.SaveRoadmapRequest{Title: "Go", Steps: []string{"a", strings.Repeat("x", 101), "c"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSaveRoadmap(ctx, tt.request)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantLimit, pkgError.IsLimitReached(err))
		})
	}
}

func TestValidateSaveManifestoItem(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, ValidateSaveManifestoItem(ctx, domainManifesto.SaveItemRequest{
		Text: "Ship weekly", Type: domainManifesto.TypeGoals, Tags: []string{"urgent", "longTerm"},
	}))

	err := ValidateSaveManifestoItem(ctx, domainManifesto.SaveItemRequest{
		Text: "x", Type: domainManifesto.TypeValues, Tags: []string{"urgent", "important", "pending", "critical"},
	})
	assert.True(t, pkgError.IsLimitReached(err))

	err = ValidateSaveManifestoItem(ctx, domainManifesto.SaveItemRequest{
		Text: "x", Type: domainManifesto.TypeValues, Tags: []string{"someday"},
	})
	assert.IsType(t, pkgError.ValidationError(""), err)

	err = ValidateSaveManifestoItem(ctx, domainManifesto.SaveItemRequest{Text: "x", Type: "hobbies"})
	assert.IsType(t, pkgError.ValidationError(""), err)
}

func TestValidateSaveNote(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, ValidateSaveNote(ctx, domainNote.SaveNoteRequest{Title: "Ideas"}))
	assert.Error(t, ValidateSaveNote(ctx, domainNote.SaveNoteRequest{}))
	assert.Error(t, ValidateSaveNote(ctx, domainNote.SaveNoteRequest{Title: strings.Repeat("n", 201)}))
}

func TestValidateUpdateNote(t *testing.T) {
	ctx := context.Background()
	title := "renamed"
	empty := ""
	assert.NoError(t, ValidateUpdateNote(ctx, domainNote.UpdateNoteRequest{Title: &title}))
	assert.Error(t, ValidateUpdateNote(ctx, domainNote.UpdateNoteRequest{}))
	assert.Error(t, ValidateUpdateNote(ctx, domainNote.UpdateNoteRequest{Title: &empty}))
}

func TestValidateSaveJournalEntry(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, ValidateSaveJournalEntry(ctx, domainJournal.SaveEntryRequest{
		Title: "Monday", Content: "Long day", Mood: domainJournal.MoodTired, Weather: domainJournal.WeatherRainy,
	}))
	assert.NoError(t, ValidateSaveJournalEntry(ctx, domainJournal.SaveEntryRequest{Title: "Tuesday", Content: "ok"}))
	assert.Error(t, ValidateSaveJournalEntry(ctx, domainJournal.SaveEntryRequest{Title: "x", Content: "y", Mood: "BORED"}))
	assert.Error(t, ValidateSaveJournalEntry(ctx, domainJournal.SaveEntryRequest{Title: "x", Content: "y", Weather: "HAIL"}))
}
