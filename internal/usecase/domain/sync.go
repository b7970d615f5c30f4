// Package domain contains application Usecases orchestrating directory logic by sync.
package domain

import (
	"context"
	"fmt"

	"chat-directory-service/internal/entities"
	"chat-directory-service/internal/stream"
)

// SyncUser reconciles the identity's profile into the directory and opens a
// platform session for it. The record update is not rolled back if the
// session open fails; the caller re-triggers sync to recover.
func (u *Usecase) SyncUser(ctx context.Context, identity entities.Identity) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if identity.ExternalID == "" {
		return nil, fmt.Errorf("%w: external_id is required", entities.ErrMissingIdentity)
	}

	u.mu.Lock()
	u.gen++
	gen := u.gen
	u.activeID = identity.ExternalID
	prev := u.session
	u.session = nil
	u.state = entities.SessionConnecting
	u.mu.Unlock()

	if prev != nil {
		if err := prev.Close(ctx); err != nil {
			u.log.Errorw("failed to close previous session", "error", err, "user_id", prev.UserID())
		}
	}

	user, err := u.repo.UpsertUser(ctx, entities.User{
		ExternalID: identity.ExternalID,
		Email:      identity.PrimaryEmail,
		Name:       identity.DisplayName(),
		AvatarURL:  identity.AvatarURL,
	})
	if err != nil {
		u.failSync(gen)
		return nil, fmt.Errorf("%w: upsert user: %v", entities.ErrSyncFailed, err)
	}

	provider := func(_ context.Context) (string, error) {
		return u.tokens.Issue(identity.ExternalID)
	}
	profile := stream.Profile{ID: identity.ExternalID, Name: user.Name, Image: user.AvatarURL}

	sess, err := u.platform.OpenSession(ctx, profile, provider)
	if err != nil {
		u.failSync(gen)
		return nil, fmt.Errorf("%w: open session: %v", entities.ErrSyncFailed, err)
	}

	u.mu.Lock()
	if u.gen != gen || u.activeID != identity.ExternalID {
		u.mu.Unlock()
		// identity changed while the open was in flight; a session must never
		// stay open for a stale identity
		if cerr := sess.Close(ctx); cerr != nil {
			u.log.Errorw("failed to close stale session", "error", cerr, "user_id", identity.ExternalID)
		}
		return user, nil
	}
	u.session = sess
	u.state = entities.SessionConnected
	u.mu.Unlock()

	u.log.Infow("user synced", "external_id", identity.ExternalID, "connection_id", sess.ID())
	return user, nil
}

// Disconnect closes the active session, if any. Close failures are logged and
// swallowed so sign-out is never blocked.
func (u *Usecase) Disconnect(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	u.mu.Lock()
	u.gen++
	u.activeID = ""
	sess := u.session
	u.session = nil
	u.state = entities.SessionAbsent
	u.mu.Unlock()

	if sess == nil {
		return nil
	}
	if err := sess.Close(ctx); err != nil {
		u.log.Errorw("failed to disconnect session", "error", err, "user_id", sess.UserID())
	}
	return nil
}

// SessionState reports the lifecycle state of the platform session handle.
func (u *Usecase) SessionState() entities.SessionState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

// failSync marks the handle errored unless a newer sync has taken over.
func (u *Usecase) failSync(gen uint64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.gen == gen {
		u.state = entities.SessionError
	}
}
