package store

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

type FirebaseConfig struct {
	CredentialsPath string
	ProjectID       string
	DatabaseURL     string
}

// FirebaseStore implements RecordStore over Firebase Realtime Database.
type FirebaseStore struct {
	app    *firebase.App
	client *db.Client
}

func NewFirebaseStore(ctx context.Context, cfg *FirebaseConfig) (*FirebaseStore, error) {
	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:   cfg.ProjectID,
		DatabaseURL: cfg.DatabaseURL,
	}, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %v", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting database client: %v", err)
	}

	return &FirebaseStore{app: app, client: client}, nil
}

// App exposes the underlying firebase app so other clients (auth, messaging)
// can share the credentials.
func (s *FirebaseStore) App() *firebase.App {
	return s.app
}

func (s *FirebaseStore) Get(ctx context.Context, path string) (map[string]any, error) {
	var record map[string]any
	if err := s.client.NewRef(path).Get(ctx, &record); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return record, nil
}

func (s *FirebaseStore) Push(ctx context.Context, collection string, record map[string]any) (string, error) {
	ref, err := s.client.NewRef(collection).Push(ctx, record)
	if err != nil {
		return "", fmt.Errorf("failed to push to %s: %w", collection, err)
	}
	return ref.Key, nil
}

func (s *FirebaseStore) Update(ctx context.Context, path string, partial map[string]any) error {
	if err := s.client.NewRef(path).Update(ctx, partial); err != nil {
		return fmt.Errorf("failed to update %s: %w", path, err)
	}
	return nil
}

func (s *FirebaseStore) Remove(ctx context.Context, path string) error {
	if err := s.client.NewRef(path).Delete(ctx); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

func (s *FirebaseStore) GetCollection(ctx context.Context, collection string) (map[string]map[string]any, error) {
	var records map[string]map[string]any
	if err := s.client.NewRef(collection).Get(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}
	if records == nil {
		records = map[string]map[string]any{}
	}
	return records, nil
}

func (s *FirebaseStore) QueryChildEqual(ctx context.Context, collection, field string, value any) (map[string]map[string]any, error) {
	var records map[string]map[string]any
	query := s.client.NewRef(collection).OrderByChild(field).EqualTo(value)
	if err := query.Get(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to query %s by %s: %w", collection, field, err)
	}
	if records == nil {
		records = map[string]map[string]any{}
	}
	return records, nil
}
