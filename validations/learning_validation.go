package validations

import (
	"context"
	"fmt"

	domainJournal "github.com/AzielCF/az-learn/domains/journal"
	domainManifesto "github.com/AzielCF/az-learn/domains/manifesto"
	domainNote "github.com/AzielCF/az-learn/domains/note"
	domainRoadmap "github.com/AzielCF/az-learn/domains/roadmap"
	pkgError "github.com/AzielCF/az-learn/pkg/error"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxNoteTitleLength    = 200
	MaxJournalTitleLength = 200
)

func ValidateSaveNote(ctx context.Context, request domainNote.SaveNoteRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Title, validation.Required, validation.RuneLength(1, MaxNoteTitleLength)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateUpdateNote(ctx context.Context, request domainNote.UpdateNoteRequest) error {
	if request.Title == nil && request.Content == nil && request.Color == nil {
		return pkgError.ValidationError("nothing to update")
	}
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Title, validation.NilOrNotEmpty, validation.RuneLength(1, MaxNoteTitleLength)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

// ValidateSaveRoadmap rejects step counts outside [MinSteps, MaxSteps] with a
// LimitReachedError; everything else is a ValidationError.
func ValidateSaveRoadmap(ctx context.Context, request domainRoadmap.SaveRoadmapRequest) error {
	if n := len(request.Steps); n < domainRoadmap.MinSteps || n > domainRoadmap.MaxSteps {
		return pkgError.LimitReachedError(fmt.Sprintf("a roadmap needs between %d and %d steps, got %d",
			domainRoadmap.MinSteps, domainRoadmap.MaxSteps, n))
	}

	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Title, validation.Required),
		validation.Field(&request.Steps, validation.Each(validation.Required, validation.RuneLength(1, domainRoadmap.MaxStepLength))),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateSaveManifestoItem(ctx context.Context, request domainManifesto.SaveItemRequest) error {
	if len(request.Tags) > domainManifesto.MaxTags {
		return pkgError.LimitReachedError(fmt.Sprintf("at most %d tags per item", domainManifesto.MaxTags))
	}

	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Text, validation.Required),
		validation.Field(&request.Type, validation.Required, validation.In(domainManifesto.Types...)),
		validation.Field(&request.Tags, validation.Each(validation.In(domainManifesto.Tags...))),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateSaveJournalEntry(ctx context.Context, request domainJournal.SaveEntryRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Title, validation.Required, validation.RuneLength(1, MaxJournalTitleLength)),
		validation.Field(&request.Content, validation.Required),
		validation.Field(&request.Mood, validation.In(domainJournal.Moods...)),
		validation.Field(&request.Weather, validation.In(domainJournal.Weathers...)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}
