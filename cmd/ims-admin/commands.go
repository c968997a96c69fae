package main

import (
	"errors"
	"fmt"
	"io"

	"go-ims/internal/backup"
	"go-ims/internal/config"
	"go-ims/internal/repository"
	"go-ims/internal/service"
	"go-ims/pkg/database"
	"go-ims/pkg/logger"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	cfg       *config.Config
	backupDir string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "ims-admin",
		Short:        "Maintenance commands for the inventory backend",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Setup(cfg.LogLevel, cfg.IsProduction())
			opts.cfg = cfg
			if opts.backupDir == "" {
				opts.backupDir = cfg.BackupDir
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.backupDir, "backup-dir", "", "backup directory (defaults to BACKUP_DIR)")

	root.AddCommand(newResetPasswordCmd(opts), newBackupLogCmd(opts), newSANStatusCmd(opts))
	return root
}

func newResetPasswordCmd(opts *rootOptions) *cobra.Command {
	var (
		eid      uint
		password string
	)
	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password for an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Connect(database.Options{
				Driver:      opts.cfg.DBDriver,
				Path:        opts.cfg.DBPath,
				DatabaseURL: opts.cfg.DatabaseURL,
			}, logger.Nop())
			if err != nil {
				return err
			}
			defer database.Close(db)

			svc := service.NewEmployeeService(repository.NewEmployeeRepo(db))
			n, err := svc.ResetPassword(cmd.Context(), eid, password)
			if err != nil {
				return err
			}
			if n == 0 {
				return fmt.Errorf("employee %d not found", eid)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "password for employee %d has been reset\n", eid)
			return nil
		},
	}
	cmd.Flags().UintVar(&eid, "eid", 0, "employee id")
	cmd.Flags().StringVar(&password, "password", "", "new password")
	_ = cmd.MarkFlagRequired("eid")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newBackupLogCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "backup-log",
		Short: "Print the SAN usage log, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := backup.NewReporter(afero.NewOsFs(), opts.backupDir).Log()
			if err != nil {
				return err
			}
			renderLog(cmd.OutOrStdout(), samples)
			return nil
		},
	}
}

func newSANStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "san-status",
		Short: "Print the latest SAN usage sample and forecast",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := backup.NewReporter(afero.NewOsFs(), opts.backupDir).Status()
			if errors.Is(err, backup.ErrNoUsageData) {
				fmt.Fprintln(cmd.OutOrStdout(), "No SAN usage log yet")
				return nil
			}
			if err != nil {
				return err
			}
			renderStatus(cmd.OutOrStdout(), status)
			return nil
		},
	}
}

func renderLog(w io.Writer, samples []backup.Sample) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Timestamp", "Used GB", "Total GB", "Used %"})
	for i, s := range samples {
		t.AppendRow(table.Row{i + 1, s.Timestamp, s.UsedGB, s.TotalGB, usedPercent(s)})
	}
	t.AppendFooter(table.Row{"", "Samples", len(samples)})
	t.Render()
}

func renderStatus(w io.Writer, status *backup.Status) {
	prediction := "-"
	if status.PredictionDate != nil {
		prediction = *status.PredictionDate
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendRows([]table.Row{
		{"Timestamp", status.Timestamp},
		{"Used GB", status.UsedGB},
		{"Total GB", status.TotalGB},
		{"Used %", usedPercent(status.Sample)},
		{"Full by", prediction},
	})
	t.Render()
}

func usedPercent(s backup.Sample) string {
	if s.TotalGB == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", s.UsedGB/s.TotalGB*100)
}
