package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/agendasync/internal/apperr"
	"github.com/iudanet/agendasync/internal/client/sync"
)

// ConflictStrategy - что делать, если сервер отклонил push из-за версии
type ConflictStrategy string

const (
	ConflictFail      ConflictStrategy = "fail"
	ConflictAsk       ConflictStrategy = "ask"
	ConflictReload    ConflictStrategy = "reload"
	ConflictOverwrite ConflictStrategy = "overwrite"
)

// ParseConflictStrategy проверяет значение флага --on-conflict
func ParseConflictStrategy(s string) (ConflictStrategy, error) {
	switch st := ConflictStrategy(strings.ToLower(strings.TrimSpace(s))); st {
	case "":
		return ConflictFail, nil
	case ConflictFail, ConflictAsk, ConflictReload, ConflictOverwrite:
		return st, nil
	default:
		return "", fmt.Errorf("unknown conflict strategy %q. Use: fail, ask, reload or overwrite", s)
	}
}

func (c *Cli) runPush(ctx context.Context, id string, strategy ConflictStrategy) error {
	session, err := c.connect(ctx)
	if err != nil {
		return err
	}

	version, err := c.syncService.Push(ctx, session, id)
	if err == nil {
		c.io.Printf("✓ Pushed %s, version %d\n", id, version)
		return nil
	}
	if apperr.CodeOf(err) != apperr.CodeConflict {
		return fmt.Errorf("push failed: %w", err)
	}

	c.io.Printf("⚠️  %s\n", c.syncService.Status())
	c.io.Println("Someone else changed this agenda since your last pull. Your local edit is kept.")

	if strategy == ConflictAsk {
		strategy, err = c.askStrategy(session)
		if err != nil {
			return err
		}
	}

	switch strategy {
	case ConflictReload:
		return c.resolveReload(ctx, session, id)
	case ConflictOverwrite:
		return c.resolveOverwrite(ctx, session, id)
	default:
		c.io.Println()
		c.io.Printf("Run 'agendasync push %s --on-conflict reload' to take the remote copy", id)
		if session.Admin() {
			c.io.Printf(" or '--on-conflict overwrite' to replace it")
		}
		c.io.Println(".")
		return err
	}
}

func (c *Cli) askStrategy(session *sync.Session) (ConflictStrategy, error) {
	prompt := "[r]eload remote copy or [k]eep local edit: "
	if session.Admin() {
		prompt = "[r]eload remote copy, [o]verwrite remote copy or [k]eep local edit: "
	}

	answer, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}

	switch strings.ToLower(answer) {
	case "r", "reload":
		return ConflictReload, nil
	case "o", "overwrite":
		return ConflictOverwrite, nil
	default:
		return ConflictFail, nil
	}
}

func (c *Cli) resolveReload(ctx context.Context, session *sync.Session, id string) error {
	doc, err := c.syncService.ReloadFromRemote(ctx, session, id)
	if err != nil {
		return fmt.Errorf("reload failed: %w", err)
	}
	c.io.Printf("✓ Local copy of %s replaced with remote version %d\n", id, doc.SyncVersion)
	return nil
}

func (c *Cli) resolveOverwrite(ctx context.Context, session *sync.Session, id string) error {
	version, err := c.syncService.OverwriteRemote(ctx, session, id)
	if err != nil {
		return fmt.Errorf("overwrite failed: %w", err)
	}
	c.io.Printf("✓ Remote copy of %s overwritten, version %d\n", id, version)
	return nil
}

// runPull загружает один документ, изменения после курсора или все документы группы
func (c *Cli) runPull(ctx context.Context, id string, all bool) error {
	session, err := c.connect(ctx)
	if err != nil {
		return err
	}

	if id != "" {
		doc, err := c.syncService.Pull(ctx, session, id)
		if err != nil {
			return fmt.Errorf("pull failed: %w", err)
		}
		c.io.Printf("✓ Pulled %s, version %d\n", id, doc.SyncVersion)
		return nil
	}

	pull := c.syncService.PullChanges
	if all {
		pull = c.syncService.PullAll
	}
	n, err := pull(ctx, session)
	if err != nil {
		return fmt.Errorf("pull failed: %w", err)
	}

	if n == 0 {
		c.io.Println("✓ Already up to date")
		return nil
	}
	c.io.Printf("✓ Pulled %d agenda(s) from group %s\n", n, session.GroupID)
	return nil
}
