package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/iudanet/agendasync/internal/client/storage"
	"github.com/iudanet/agendasync/internal/models"
)

// AgendaInput - поля редактора. Пустые поля при правке берутся из документа
type AgendaInput struct {
	Notes map[string]string
	Title string
	Date  string
}

func (in AgendaInput) content(base map[string]any) map[string]any {
	if len(in.Notes) == 0 {
		return nil
	}
	out := make(map[string]any, len(base)+len(in.Notes))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range in.Notes {
		out[k] = v
	}
	return out
}

func (c *Cli) runAgendaNew(ctx context.Context, in AgendaInput) error {
	if in.Title == "" {
		title, err := c.io.ReadInput("Title: ")
		if err != nil {
			return fmt.Errorf("failed to read title: %w", err)
		}
		in.Title = title
	}
	if in.Date == "" {
		date, err := c.io.ReadInput("Date (YYYY-MM-DD): ")
		if err != nil {
			return fmt.Errorf("failed to read date: %w", err)
		}
		in.Date = date
	}

	id, err := c.syncService.SaveDraft(ctx, "", in.Title, in.Date, in.content(nil))
	if err != nil {
		return fmt.Errorf("failed to save agenda: %w", err)
	}

	c.io.Printf("✓ Agenda saved locally: %s\n", id)
	c.io.Printf("Run 'agendasync push %s' to share it with the group.\n", id)
	return nil
}

func (c *Cli) runAgendaEdit(ctx context.Context, id string, in AgendaInput) error {
	doc, err := c.agendas.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrAgendaNotFound) {
			return fmt.Errorf("agenda %s not found locally. Run 'agendasync pull %s' first", id, id)
		}
		return fmt.Errorf("failed to load agenda: %w", err)
	}

	title := in.Title
	if title == "" {
		title = doc.Title
	}
	date := in.Date
	if date == "" {
		date = doc.Date
	}

	if _, err := c.syncService.SaveDraft(ctx, id, title, date, in.content(doc.Content)); err != nil {
		return fmt.Errorf("failed to save agenda: %w", err)
	}

	c.io.Printf("✓ Agenda %s updated locally (base version %d)\n", id, doc.SyncVersion)
	return nil
}

func (c *Cli) runAgendaList(ctx context.Context) error {
	docs, err := c.agendas.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list agendas: %w", err)
	}

	if len(docs) == 0 {
		c.io.Println("No agendas found.")
		c.io.Println()
		c.io.Println("Use 'agendasync agenda new' to create one or 'agendasync pull' to fetch the group's agendas.")
		return nil
	}

	c.io.Printf("Found %d agenda(s):\n", len(docs))
	c.io.Println()
	for i, d := range docs {
		c.io.Printf("%d. %s  %s\n", i+1, d.Date, d.Title)
		c.io.Printf("   ID:      %s\n", d.ID)
		c.io.Printf("   Version: %s\n", versionLabel(d))
	}
	return nil
}

func (c *Cli) runAgendaShow(ctx context.Context, id string) error {
	doc, err := c.agendas.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrAgendaNotFound) {
			return fmt.Errorf("agenda %s not found locally", id)
		}
		return fmt.Errorf("failed to load agenda: %w", err)
	}

	c.io.Printf("=== %s ===\n", doc.Title)
	c.io.Printf("ID:      %s\n", doc.ID)
	c.io.Printf("Date:    %s\n", doc.Date)
	c.io.Printf("Status:  %s\n", doc.Status)
	c.io.Printf("Version: %s\n", versionLabel(doc))
	c.io.Printf("Updated: %s\n", doc.UpdatedAt.Format("2006-01-02 15:04:05"))

	if len(doc.Content) > 0 {
		c.io.Println()
		keys := make([]string, 0, len(doc.Content))
		for k := range doc.Content {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			c.io.Printf("%s: %v\n", k, doc.Content[k])
		}
	}
	return nil
}

func versionLabel(d *models.LocalAgenda) string {
	if d.SyncVersion == 0 {
		return "local only"
	}
	return fmt.Sprintf("%d", d.SyncVersion)
}

// parseNotes разбирает значения --note key=value
func parseNotes(values []string) (map[string]string, error) {
	if len(values) == 0 {
		return nil, nil
	}
	notes := make(map[string]string, len(values))
	for _, v := range values {
		key, value, ok := strings.Cut(v, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid note %q, expected key=value", v)
		}
		notes[key] = value
	}
	return notes, nil
}
