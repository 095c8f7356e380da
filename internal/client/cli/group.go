package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/agendasync/internal/models"
	"github.com/iudanet/agendasync/pkg/api"
)

// runGroupCreate создает группу. Сервер разрешает это только входу с admin key
func (c *Cli) runGroupCreate(ctx context.Context, name, code string, secrets Secrets) error {
	id, err := c.identity.Identity(ctx)
	if err != nil {
		return fmt.Errorf("sign in failed: %w", err)
	}
	if !id.Admin {
		return fmt.Errorf("creating groups requires a platform admin identity. Set admin_key in the config and run 'agendasync signin'")
	}

	secret, err := c.getGroupSecret(secrets)
	if err != nil {
		return err
	}

	resp, err := c.groups.CreateGroup(ctx, id.AccessToken, api.CreateGroupRequest{
		Name:      name,
		GroupCode: code,
		Secret:    secret,
	})
	if err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}

	c.io.Printf("✓ Group %q created with code %s\n", name, resp.GroupID)
	c.io.Println("Share the code and the secret with the members.")
	return nil
}

func (c *Cli) runMemberSetRole(ctx context.Context, principalID, role string) error {
	r, ok := models.ParseRole(role)
	if !ok {
		return fmt.Errorf("unknown role %q. Use: editor or admin", role)
	}

	session, err := c.connect(ctx)
	if err != nil {
		return err
	}
	id, err := c.identity.Identity(ctx)
	if err != nil {
		return fmt.Errorf("sign in failed: %w", err)
	}

	if err := c.groups.SetMemberRole(ctx, id.AccessToken, session.GroupID, principalID, string(r)); err != nil {
		return fmt.Errorf("failed to set role: %w", err)
	}
	c.io.Printf("✓ %s is now %s in %s\n", principalID, r, session.GroupID)

	if principalID == id.PrincipalID {
		return c.runMemberRefresh(ctx)
	}
	return nil
}

// runMemberRefresh перечитывает свою роль, например после повышения до admin
func (c *Cli) runMemberRefresh(ctx context.Context) error {
	session, err := c.connect(ctx)
	if err != nil {
		return err
	}

	updated, err := c.syncService.RefreshMembership(ctx, session)
	if err != nil {
		return fmt.Errorf("failed to refresh membership: %w", err)
	}
	if err := c.saveSession(ctx, updated); err != nil {
		return err
	}

	c.io.Printf("Role in %s: %s\n", updated.GroupID, updated.Role)
	return nil
}
