package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/agendasync/internal/apperr"
	"github.com/iudanet/agendasync/internal/client/storage"
	"github.com/iudanet/agendasync/internal/client/sync"
	"github.com/iudanet/agendasync/internal/models"
)

func TestParseConflictStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    ConflictStrategy
		wantErr bool
	}{
		{in: "", want: ConflictFail},
		{in: "fail", want: ConflictFail},
		{in: " Reload ", want: ConflictReload},
		{in: "overwrite", want: ConflictOverwrite},
		{in: "ask", want: ConflictAsk},
		{in: "merge", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseConflictStrategy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// conflictingService отвечает Conflict на push и разрешает конфликт по запросу
func conflictingService() *SyncServiceMock {
	status := models.Connected()
	return &SyncServiceMock{
		RestoreFunc: func(ctx context.Context) bool { return true },
		StatusFunc:  func() models.SyncStatus { return status },
		PushFunc: func(ctx context.Context, session *sync.Session, agendaID string) (int64, error) {
			status = models.ConflictStatus("version mismatch", agendaID)
			return 0, fmt.Errorf("update agenda request failed: %w", apperr.Conflict("version mismatch"))
		},
		ReloadFromRemoteFunc: func(ctx context.Context, session *sync.Session, agendaID string) (*models.LocalAgenda, error) {
			status = models.Connected()
			return &models.LocalAgenda{ID: agendaID, SyncVersion: 4}, nil
		},
		OverwriteRemoteFunc: func(ctx context.Context, session *sync.Session, agendaID string) (int64, error) {
			if !session.Admin() {
				return 0, apperr.PermissionDenied("only group admins can overwrite the remote copy")
			}
			status = models.Connected()
			return 5, nil
		},
	}
}

func TestCli_runPush(t *testing.T) {
	mockIO, out := newTestIO()
	svc := &SyncServiceMock{
		RestoreFunc: func(ctx context.Context) bool { return true },
		PushFunc: func(ctx context.Context, session *sync.Session, agendaID string) (int64, error) {
			assert.Equal(t, "ward-7", session.GroupID)
			return 4, nil
		},
	}
	c := &Cli{io: mockIO, syncService: svc, sessions: &memSessions{data: editorData}}

	require.NoError(t, c.runPush(context.Background(), "a1", ConflictFail))
	assert.Contains(t, out.String(), "Pushed a1, version 4")
}

func TestCli_runPush_Conflict(t *testing.T) {
	ctx := context.Background()
	adminData := &storage.SessionData{GroupID: "ward-7", Role: "admin"}

	tests := []struct {
		session    *storage.SessionData
		name       string
		strategy   ConflictStrategy
		inputs     []string
		wantOut    string
		wantErr    error
		wantReload int
		wantForce  int
	}{
		{name: "fail", session: editorData, strategy: ConflictFail, wantErr: apperr.ErrConflict, wantOut: "--on-conflict reload"},
		{name: "reload", session: editorData, strategy: ConflictReload, wantReload: 1, wantOut: "replaced with remote version 4"},
		{name: "overwrite as admin", session: adminData, strategy: ConflictOverwrite, wantForce: 1, wantOut: "overwritten, version 5"},
		{name: "overwrite as editor", session: editorData, strategy: ConflictOverwrite, wantForce: 1, wantErr: apperr.ErrPermissionDenied},
		{name: "ask reload", session: editorData, strategy: ConflictAsk, inputs: []string{"r"}, wantReload: 1},
		{name: "ask overwrite", session: adminData, strategy: ConflictAsk, inputs: []string{"o"}, wantForce: 1},
		{name: "ask keep", session: editorData, strategy: ConflictAsk, inputs: []string{"k"}, wantErr: apperr.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIO, out := newTestIO(tt.inputs...)
			svc := conflictingService()
			c := &Cli{io: mockIO, syncService: svc, sessions: &memSessions{data: tt.session}}

			err := c.runPush(ctx, "a1", tt.strategy)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Contains(t, out.String(), "conflict on a1: version mismatch")
			assert.Contains(t, out.String(), tt.wantOut)
			assert.Len(t, svc.ReloadFromRemoteCalls(), tt.wantReload)
			assert.Len(t, svc.OverwriteRemoteCalls(), tt.wantForce)
		})
	}
}

func TestCli_runPush_OtherError(t *testing.T) {
	mockIO, out := newTestIO()
	svc := &SyncServiceMock{
		RestoreFunc: func(ctx context.Context) bool { return true },
		PushFunc: func(ctx context.Context, session *sync.Session, agendaID string) (int64, error) {
			return 0, apperr.NotFound("agenda not found")
		},
	}
	c := &Cli{io: mockIO, syncService: svc, sessions: &memSessions{data: editorData}}

	err := c.runPush(context.Background(), "a1", ConflictReload)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.NotContains(t, out.String(), "conflict")
	assert.Empty(t, svc.ReloadFromRemoteCalls())
}

func TestCli_runPull(t *testing.T) {
	ctx := context.Background()
	newSvc := func() *SyncServiceMock {
		return &SyncServiceMock{
			RestoreFunc: func(ctx context.Context) bool { return true },
			PullFunc: func(ctx context.Context, session *sync.Session, agendaID string) (*models.LocalAgenda, error) {
				return &models.LocalAgenda{ID: agendaID, SyncVersion: 7}, nil
			},
			PullAllFunc:     func(ctx context.Context, session *sync.Session) (int, error) { return 12, nil },
			PullChangesFunc: func(ctx context.Context, session *sync.Session) (int, error) { return 0, nil },
		}
	}

	t.Run("single", func(t *testing.T) {
		mockIO, out := newTestIO()
		svc := newSvc()
		c := &Cli{io: mockIO, syncService: svc, sessions: &memSessions{data: editorData}}

		require.NoError(t, c.runPull(ctx, "a1", false))
		assert.Contains(t, out.String(), "Pulled a1, version 7")
		assert.Empty(t, svc.PullChangesCalls())
	})

	t.Run("changes", func(t *testing.T) {
		mockIO, out := newTestIO()
		svc := newSvc()
		c := &Cli{io: mockIO, syncService: svc, sessions: &memSessions{data: editorData}}

		require.NoError(t, c.runPull(ctx, "", false))
		assert.Contains(t, out.String(), "Already up to date")
		assert.Len(t, svc.PullChangesCalls(), 1)
		assert.Empty(t, svc.PullAllCalls())
	})

	t.Run("all", func(t *testing.T) {
		mockIO, out := newTestIO()
		svc := newSvc()
		c := &Cli{io: mockIO, syncService: svc, sessions: &memSessions{data: editorData}}

		require.NoError(t, c.runPull(ctx, "", true))
		assert.Contains(t, out.String(), "Pulled 12 agenda(s) from group ward-7")
	})

	t.Run("not joined", func(t *testing.T) {
		mockIO, _ := newTestIO()
		svc := newSvc()
		c := &Cli{io: mockIO, syncService: svc, sessions: &memSessions{}}

		assert.Error(t, c.runPull(ctx, "", false))
		assert.Empty(t, svc.PullChangesCalls())
	})
}
