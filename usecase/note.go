package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	domainNote "github.com/AzielCF/az-learn/domains/note"
	"github.com/AzielCF/az-learn/domains/remote"
	"github.com/AzielCF/az-learn/pkg/localcache"
	"github.com/AzielCF/az-learn/validations"
)

type noteService struct {
	notes *cachedList[domainNote.Note]
	now   func() time.Time
}

func NewNoteService(store remote.Store, cache *localcache.Store) domainNote.INoteUsecase {
	return &noteService{
		notes: &cachedList[domainNote.Note]{
			tag:        "NOTES",
			collection: "notes",
			key:        localcache.NotesKey,
			expiry:     localcache.NotesExpiry,
			id:         func(n domainNote.Note) string { return n.ID },
			store:      store,
			cache:      cache,
		},
		now: time.Now,
	}
}

func (s *noteService) SaveNote(ctx context.Context, userID string, request domainNote.SaveNoteRequest) (domainNote.Note, error) {
	if err := requireUser(userID); err != nil {
		return domainNote.Note{}, err
	}
	if err := validations.ValidateSaveNote(ctx, request); err != nil {
		return domainNote.Note{}, err
	}

	now := s.now().UTC()
	note := domainNote.Note{
		ID:        uuid.NewString(),
		Title:     request.Title,
		Content:   request.Content,
		Color:     request.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.notes.save(ctx, userID, note); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("[NOTES] Failed to save note")
		return domainNote.Note{}, err
	}
	return note, nil
}

func (s *noteService) GetNotes(ctx context.Context, userID string) ([]domainNote.Note, error) {
	if err := requireUser(userID); err != nil {
		return []domainNote.Note{}, err
	}
	return s.notes.getAll(ctx, userID, false)
}

func (s *noteService) UpdateNote(ctx context.Context, userID, noteID string, request domainNote.UpdateNoteRequest) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if err := requireID("note", noteID); err != nil {
		return err
	}
	if err := validations.ValidateUpdateNote(ctx, request); err != nil {
		return err
	}

	patch := map[string]any{"updatedAt": remote.ServerTimestamp()}
	if request.Title != nil {
		patch["title"] = *request.Title
	}
	if request.Content != nil {
		patch["content"] = *request.Content
	}
	if request.Color != nil {
		patch["color"] = *request.Color
	}

	now := s.now().UTC()
	err := s.notes.update(ctx, userID, noteID, patch, func(n *domainNote.Note) {
		if request.Title != nil {
			n.Title = *request.Title
		}
		if request.Content != nil {
			n.Content = *request.Content
		}
		if request.Color != nil {
			n.Color = *request.Color
		}
		n.UpdatedAt = now
	})
	if err != nil {
		logrus.WithError(err).WithField("note_id", noteID).Error("[NOTES] Failed to update note")
		return notFound(err, "note", noteID)
	}
	return nil
}

func (s *noteService) DeleteNote(ctx context.Context, userID, noteID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if err := requireID("note", noteID); err != nil {
		return err
	}
	if err := s.notes.delete(ctx, userID, noteID); err != nil {
		logrus.WithError(err).WithField("note_id", noteID).Error("[NOTES] Failed to delete note")
		return err
	}
	return nil
}
