package session

import (
	"context"
	"fmt"

	"github.com/zapgate/zapgate/ent"
	"github.com/zapgate/zapgate/ent/chatsession"
	"github.com/zapgate/zapgate/pkg/fsm"
	"github.com/zapgate/zapgate/pkg/models"
)

// DocumentStore is the database-backed Store. Concurrency control rides on
// the version column: Save is a conditional update that only applies when the
// stored version matches.
type DocumentStore struct {
	client *ent.Client
}

// NewDocumentStore wraps an ent client.
func NewDocumentStore(client *ent.Client) *DocumentStore {
	return &DocumentStore{client: client}
}

func (s *DocumentStore) Load(ctx context.Context, chatID string) (*Session, error) {
	row, err := s.client.ChatSession.Query().
		Where(chatsession.ChatIDEQ(chatID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	return fromRow(row), nil
}

func (s *DocumentStore) Create(ctx context.Context, sess *Session) error {
	err := s.client.ChatSession.Create().
		SetID(sess.ID).
		SetChatID(sess.ChatID).
		SetCurrentState(string(sess.CurrentState)).
		SetOutcome(string(sess.Outcome)).
		SetIntentQueue(sess.IntentQueue).
		SetMessageHistory(sess.MessageHistory).
		SetVersion(sess.Version).
		SetCreatedAt(sess.CreatedAt).
		SetUpdatedAt(sess.UpdatedAt).
		SetExpiresAt(sess.ExpiresAt).
		Exec(ctx)
	if ent.IsConstraintError(err) {
		return ErrVersionConflict
	}
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	return nil
}

func (s *DocumentStore) Save(ctx context.Context, sess *Session) error {
	n, err := s.client.ChatSession.Update().
		Where(
			chatsession.ChatIDEQ(sess.ChatID),
			chatsession.VersionEQ(sess.Version),
		).
		SetCurrentState(string(sess.CurrentState)).
		SetOutcome(string(sess.Outcome)).
		SetIntentQueue(sess.IntentQueue).
		SetMessageHistory(sess.MessageHistory).
		SetVersion(sess.Version + 1).
		SetUpdatedAt(sess.UpdatedAt).
		SetExpiresAt(sess.ExpiresAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	if n == 0 {
		// Either the row vanished or another writer advanced the version.
		exists, err := s.client.ChatSession.Query().
			Where(chatsession.ChatIDEQ(sess.ChatID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("checking session after failed save: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrVersionConflict
	}
	sess.Version++
	return nil
}

func (s *DocumentStore) Delete(ctx context.Context, chatID string) error {
	_, err := s.client.ChatSession.Delete().
		Where(chatsession.ChatIDEQ(chatID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func fromRow(row *ent.ChatSession) *Session {
	return &Session{
		ID:             row.ID,
		ChatID:         row.ChatID,
		CurrentState:   fsm.State(row.CurrentState),
		Outcome:        models.Outcome(row.Outcome),
		IntentQueue:    row.IntentQueue,
		MessageHistory: row.MessageHistory,
		Version:        row.Version,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
		ExpiresAt:      row.ExpiresAt,
	}
}
