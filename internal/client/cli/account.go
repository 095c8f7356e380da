package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/agendasync/internal/client/storage"
	"github.com/iudanet/agendasync/internal/client/sync"
	"github.com/iudanet/agendasync/internal/models"
)

func (c *Cli) runSignIn(ctx context.Context) error {
	id, err := c.syncService.SignInAnonymously(ctx)
	if err != nil {
		return fmt.Errorf("sign in failed: %w", err)
	}

	c.io.Println("✓ Signed in")
	c.io.Printf("Principal: %s\n", id.PrincipalID)
	if id.Admin {
		c.io.Println("Platform admin: yes")
	}
	return nil
}

func (c *Cli) runSignOut(ctx context.Context) error {
	if err := c.syncService.SignOut(ctx); err != nil {
		return fmt.Errorf("sign out failed: %w", err)
	}
	if err := c.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	c.io.Println("✓ Signed out. Local agendas are kept.")
	return nil
}

// runJoin вступает в группу. Сессия сохраняется, даже если первичная загрузка не удалась
func (c *Cli) runJoin(ctx context.Context, groupCode string, secrets Secrets) error {
	if !c.syncService.Restore(ctx) {
		if _, err := c.syncService.SignInAnonymously(ctx); err != nil {
			return fmt.Errorf("sign in failed: %w", err)
		}
	}

	secret, err := c.getGroupSecret(secrets)
	if err != nil {
		return err
	}

	session, joinErr := c.syncService.JoinGroup(ctx, groupCode, secret)
	if session == nil {
		return fmt.Errorf("join failed: %w", joinErr)
	}
	if err := c.saveSession(ctx, session); err != nil {
		return err
	}

	c.io.Printf("✓ Joined group %s as %s\n", session.GroupID, session.Role)
	if joinErr != nil {
		return joinErr
	}

	docs, err := c.agendas.List(ctx)
	if err == nil {
		c.io.Printf("Local agendas: %d\n", len(docs))
	}
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Sync Status ===")
	c.io.Println()

	id, err := c.identity.Current(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			c.io.Println("Status: disabled (not signed in)")
			c.io.Println()
			c.io.Println("Run 'agendasync signin' to sign in anonymously.")
			return nil
		}
		return fmt.Errorf("failed to load identity: %w", err)
	}

	c.syncService.Restore(ctx)
	c.io.Printf("Status: %s\n", c.syncService.Status())
	c.io.Printf("Principal: %s\n", id.PrincipalID)
	if remaining := time.Until(id.ExpiresAt); remaining > 0 {
		c.io.Printf("Token expires in: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("Token expired, it will be refreshed on the next sync.")
	}

	data, err := c.sessions.GetSession(ctx)
	switch {
	case errors.Is(err, storage.ErrSessionNotFound):
		c.io.Println("Group: none")
		c.io.Println("Run 'agendasync join <code>' to join a group.")
	case err != nil:
		return fmt.Errorf("failed to load session: %w", err)
	default:
		session := &sync.Session{GroupID: data.GroupID, Role: models.Role(data.Role)}
		c.io.Printf("Group: %s (%s)\n", session.GroupID, session.Role)
		if session.Admin() {
			c.io.Println("Can overwrite remote copies: yes")
		}
	}

	docs, err := c.agendas.List(ctx)
	if err != nil {
		c.io.Printf("\nWarning: Failed to read local agendas: %v\n", err)
		return nil
	}

	unpushed := 0
	for _, d := range docs {
		if d.SyncVersion == 0 {
			unpushed++
		}
	}
	c.io.Println()
	c.io.Printf("Local agendas: %d\n", len(docs))
	if unpushed > 0 {
		c.io.Printf("⚠️  Never pushed: %d. Run 'agendasync push <id>'.\n", unpushed)
	}
	return nil
}
