package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	clientapi "github.com/iudanet/agendasync/internal/client/api"
	"github.com/iudanet/agendasync/internal/client/auth"
	"github.com/iudanet/agendasync/internal/client/iocli"
	"github.com/iudanet/agendasync/internal/client/storage/boltdb"
	"github.com/iudanet/agendasync/internal/client/sync"
	"github.com/iudanet/agendasync/internal/config"
	"github.com/iudanet/agendasync/internal/logging"
)

// app - окружение одного запуска CLI: конфигурация, logger, BoltDB и команды
type app struct {
	cli         *Cli
	cfg         *config.Client
	logger      *slog.Logger
	store       *boltdb.Storage
	closeLogger io.Closer
	configPath  string
}

// NewRootCommand собирает дерево команд клиента
func NewRootCommand(version string) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "agendasync",
		Short:        "Shared meeting agendas with offline editing",
		SilenceUsage: true,
		Version:      version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to client config file")

	root.AddCommand(
		a.signInCmd(),
		a.signOutCmd(),
		a.joinCmd(),
		a.statusCmd(),
		a.agendaCmd(),
		a.pushCmd(),
		a.pullCmd(),
		a.watchCmd(),
		a.groupCmd(),
		a.memberCmd(),
	)
	return root
}

func (a *app) open(cmd *cobra.Command) error {
	cfg, err := config.LoadClient(a.configPath)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}

	store, err := boltdb.New(cmd.Context(), cfg.DBPath)
	if err != nil {
		_ = closer.Close()
		return fmt.Errorf("failed to open database: %w", err)
	}

	client := clientapi.NewClient(cfg.ServerURL, cfg.RequestTimeout)
	provider := auth.NewProvider(client, store, cfg.AdminKey, logger)
	svc := sync.NewService(client, provider, store, store, logger)

	a.cfg = cfg
	a.logger = logger
	a.store = store
	a.closeLogger = closer
	a.cli = New(Deps{
		IO:          iocli.NewStdio(),
		SyncService: svc,
		Agendas:     store,
		Sessions:    store,
		Identity:    provider,
		Groups:      client,
		AutoSync:    sync.NewAutoSync(svc, cfg.AutoSyncInterval, logger),
		Logger:      logger,
	})
	return nil
}

func (a *app) close() error {
	var errs []error
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
		a.store = nil
	}
	if a.closeLogger != nil {
		errs = append(errs, a.closeLogger.Close())
		a.closeLogger = nil
	}
	return errors.Join(errs...)
}

func (a *app) signInCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signin",
		Short: "Sign in anonymously (reuses the stored identity)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runSignIn(cmd.Context())
		},
	}
}

func (a *app) signOutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Forget the device identity and group session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runSignOut(cmd.Context())
		},
	}
}

func secretFlags(cmd *cobra.Command, s *Secrets) {
	cmd.Flags().StringVar(&s.FromFile, "secret-file", "", "path to file containing the group secret")
	cmd.Flags().StringVar(&s.FromArgs, "secret", "", "group secret (not recommended, use "+SecretEnv+" or --secret-file)")
}

func (a *app) joinCmd() *cobra.Command {
	var secrets Secrets
	cmd := &cobra.Command{
		Use:   "join <group-code>",
		Short: "Join a group and download its agendas",
		Long: `Join a group by its code and secret.

Secret priority (highest to lowest):
  1. ` + SecretEnv + ` environment variable
  2. --secret-file
  3. --secret
  4. Interactive prompt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runJoin(cmd.Context(), args[0], secrets)
		},
	}
	secretFlags(cmd, &secrets)
	return cmd
}

func (a *app) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show identity, group and local agendas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runStatus(cmd.Context())
		},
	}
}

func agendaFlags(cmd *cobra.Command, in *AgendaInput, notes *[]string) {
	cmd.Flags().StringVar(&in.Title, "title", "", "agenda title")
	cmd.Flags().StringVar(&in.Date, "date", "", "meeting date, YYYY-MM-DD")
	cmd.Flags().StringArrayVar(notes, "note", nil, "content field as key=value, repeatable")
}

func (a *app) agendaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Edit agendas in the local mirror",
	}

	var newIn AgendaInput
	var newNotes []string
	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Create a local draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := parseNotes(newNotes)
			if err != nil {
				return err
			}
			newIn.Notes = notes
			return a.cli.runAgendaNew(cmd.Context(), newIn)
		},
	}
	agendaFlags(newCmd, &newIn, &newNotes)

	var editIn AgendaInput
	var editNotes []string
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a local agenda",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := parseNotes(editNotes)
			if err != nil {
				return err
			}
			editIn.Notes = notes
			return a.cli.runAgendaEdit(cmd.Context(), args[0], editIn)
		},
	}
	agendaFlags(editCmd, &editIn, &editNotes)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List local agendas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runAgendaList(cmd.Context())
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a local agenda",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runAgendaShow(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(newCmd, editCmd, listCmd, showCmd)
	return cmd
}

func (a *app) pushCmd() *cobra.Command {
	var onConflict string
	cmd := &cobra.Command{
		Use:   "push <id>",
		Short: "Send a local agenda to the group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := ParseConflictStrategy(onConflict)
			if err != nil {
				return err
			}
			return a.cli.runPush(cmd.Context(), args[0], strategy)
		},
	}
	cmd.Flags().StringVar(&onConflict, "on-conflict", string(ConflictFail), "fail, ask, reload or overwrite (admins only)")
	return cmd
}

func (a *app) pullCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "pull [id]",
		Short: "Download agendas changed since the last pull",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) == 1 {
				id = args[0]
			}
			return a.cli.runPull(cmd.Context(), id, all)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "download every agenda of the group")
	return cmd
}

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Pull periodically and print changes until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reloads := make(chan *config.Client, 1)
			if _, err := config.WatchClient(a.configPath, a.logger, func(next *config.Client) {
				offerLatest(reloads, next)
			}); err != nil {
				return err
			}
			return a.cli.runWatch(cmd.Context(), a.cfg.AutoSync, reloads)
		},
	}
}

func (a *app) groupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage groups (platform admin)",
	}

	var name, code string
	var secrets Secrets
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runGroupCreate(cmd.Context(), name, code, secrets)
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "display name")
	createCmd.Flags().StringVar(&code, "code", "", "join code")
	secretFlags(createCmd, &secrets)
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("code")

	cmd.AddCommand(createCmd)
	return cmd
}

func (a *app) memberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Group membership",
	}

	setRoleCmd := &cobra.Command{
		Use:   "set-role <principal-id> <editor|admin>",
		Short: "Change a member's role in the joined group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runMemberSetRole(cmd.Context(), args[0], args[1])
		},
	}

	refreshCmd := &cobra.Command{
		Use:   "refresh",
		Short: "Reload your own role from the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runMemberRefresh(cmd.Context())
		},
	}

	cmd.AddCommand(setRoleCmd, refreshCmd)
	return cmd
}
