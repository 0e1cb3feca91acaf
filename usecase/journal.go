package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	domainJournal "github.com/AzielCF/az-learn/domains/journal"
	"github.com/AzielCF/az-learn/domains/remote"
	"github.com/AzielCF/az-learn/pkg/batch"
	"github.com/AzielCF/az-learn/pkg/localcache"
	"github.com/AzielCF/az-learn/validations"
)

const journalCollection = "journals"

// journalService pages journals through the batch loader. Writes go to the
// remote store and then drop the cached first page.
type journalService struct {
	store  remote.Store
	loader *batch.Loader
	now    func() time.Time
}

func NewJournalService(store remote.Store, loader *batch.Loader) domainJournal.IJournalUsecase {
	return &journalService{store: store, loader: loader, now: time.Now}
}

func (s *journalService) ListEntries(ctx context.Context, userID string, cursor *remote.Document) (domainJournal.EntryPage, error) {
	if err := requireUser(userID); err != nil {
		return domainJournal.EntryPage{Entries: []domainJournal.Entry{}}, err
	}

	page, err := s.loader.LoadBatch(ctx, batch.Request{
		UserID:         userID,
		CollectionPath: journalCollection,
		LastVisible:    cursor,
		CacheKey:       localcache.JournalsKey(userID),
		Expiry:         localcache.JournalExpiry,
	})
	if err != nil {
		return domainJournal.EntryPage{Entries: []domainJournal.Entry{}}, err
	}

	entries := make([]domainJournal.Entry, 0, len(page.Items))
	for _, doc := range page.Items {
		var entry domainJournal.Entry
		if err := doc.Decode(&entry); err != nil {
			logrus.WithError(err).WithField("doc_id", doc.ID).Warn("[JOURNAL] Skipping undecodable entry")
			continue
		}
		entries = append(entries, entry)
	}

	return domainJournal.EntryPage{
		Entries:   entries,
		Cursor:    page.Cursor(),
		HasMore:   page.HasMore,
		FromCache: page.FromCache,
	}, nil
}

func (s *journalService) SaveEntry(ctx context.Context, userID string, request domainJournal.SaveEntryRequest) (domainJournal.Entry, error) {
	if err := requireUser(userID); err != nil {
		return domainJournal.Entry{}, err
	}
	if err := validations.ValidateSaveJournalEntry(ctx, request); err != nil {
		return domainJournal.Entry{}, err
	}

	now := s.now().UTC()
	entry := domainJournal.Entry{
		ID:        uuid.NewString(),
		Title:     request.Title,
		Content:   request.Content,
		Mood:      request.Mood,
		Weather:   request.Weather,
		CreatedAt: now,
		UpdatedAt: now,
	}
	data, err := remote.ToData(entry)
	if err != nil {
		return domainJournal.Entry{}, err
	}
	if err := s.store.Set(ctx, remote.UserCollection(userID, journalCollection), entry.ID, data, false); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("[JOURNAL] Failed to save entry")
		return domainJournal.Entry{}, err
	}

	s.loader.Invalidate(ctx, localcache.JournalsKey(userID))
	return entry, nil
}

func (s *journalService) UpdateEntry(ctx context.Context, userID, entryID string, request domainJournal.SaveEntryRequest) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if err := requireID("journal entry", entryID); err != nil {
		return err
	}
	if err := validations.ValidateSaveJournalEntry(ctx, request); err != nil {
		return err
	}

	patch := map[string]any{
		"title":     request.Title,
		"content":   request.Content,
		"mood":      request.Mood,
		"weather":   request.Weather,
		"updatedAt": remote.ServerTimestamp(),
	}
	if err := s.store.Update(ctx, remote.UserCollection(userID, journalCollection), entryID, patch); err != nil {
		logrus.WithError(err).WithField("entry_id", entryID).Error("[JOURNAL] Failed to update entry")
		return notFound(err, "journal entry", entryID)
	}

	s.loader.Invalidate(ctx, localcache.JournalsKey(userID))
	return nil
}

func (s *journalService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if err := requireID("journal entry", entryID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, remote.UserCollection(userID, journalCollection), entryID); err != nil {
		logrus.WithError(err).WithField("entry_id", entryID).Error("[JOURNAL] Failed to delete entry")
		return err
	}

	s.loader.Invalidate(ctx, localcache.JournalsKey(userID))
	return nil
}
