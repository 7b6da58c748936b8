package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-marketplace/internal/adapter"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/models"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter

	now func() time.Time
}

func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{localStore: localStore, adapter: serverAdapter, now: time.Now}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.Identity, error) {
	resp, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.Identity{}, mapAdapterError(err)
	}

	if err = a.startSession(ctx, resp); err != nil {
		return models.Identity{}, err
	}

	return resp.User, nil
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Identity, error) {
	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		return models.Identity{}, mapAdapterError(err)
	}

	if err = a.startSession(ctx, resp); err != nil {
		return models.Identity{}, err
	}

	return resp.User, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	a.localStore.Cache.InvalidateAll()

	if err := a.localStore.Session.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

func (a *clientAuthService) Restore(ctx context.Context) (models.Session, error) {
	session, err := a.localStore.Session.Load(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

// startSession persists the server's token. The adapter already holds it.
func (a *clientAuthService) startSession(ctx context.Context, resp models.AuthResponse) error {
	a.localStore.Cache.InvalidateAll()

	session := models.Session{
		Token:   resp.Token,
		User:    resp.User,
		SavedAt: a.now().UTC(),
	}
	if err := a.localStore.Session.Save(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}
