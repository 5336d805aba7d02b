package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"clinibook/internal/config"
	"clinibook/internal/domain"
	"clinibook/internal/service/appointments"
	"clinibook/internal/store"
	"clinibook/internal/store/bolt"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config load failed:", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)})).With(
		slog.String("service", "clinibook"),
	)
	slog.SetDefault(log)

	rootCmd := &cobra.Command{
		Use:           "clinibook",
		Short:         "Clinic appointment booking tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(listCmd(cfg, log))
	rootCmd.AddCommand(bookCmd(cfg, log))
	rootCmd.AddCommand(statusCmd(cfg, log))
	rootCmd.AddCommand(deleteCmd(cfg, log))
	rootCmd.AddCommand(seedResetCmd(cfg, log))

	if err := rootCmd.Execute(); err != nil {
		var conflictErr *appointments.ConflictError
		var validationErr *appointments.ValidationError
		switch {
		case errors.As(err, &conflictErr):
			fmt.Fprintln(os.Stderr, "conflict:", conflictErr.Error())
		case errors.As(err, &validationErr):
			fmt.Fprintln(os.Stderr, "invalid request:", validationErr.Error())
		default:
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// withService opens the configured bolt store for the duration of one
// command.
func withService(cfg config.Config, log *slog.Logger, fn func(ctx context.Context, svc *appointments.Service) error) error {
	st, err := bolt.Open(cfg.DatabasePath, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Warn("store close failed", slog.Any("err", err))
		}
	}()

	return fn(context.Background(), appointments.NewService(st))
}

func listCmd(cfg config.Config, log *slog.Logger) *cobra.Command {
	var (
		date   string
		status string
		doctor string
		search string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cfg, log, func(ctx context.Context, svc *appointments.Service) error {
				appts, err := svc.List(ctx, domain.Filter{
					Date:   date,
					Status: domain.Status(status),
					Doctor: doctor,
					Search: search,
				})
				if err != nil {
					return err
				}
				return printJSON(appts)
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "exact date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "exact status label")
	cmd.Flags().StringVar(&doctor, "doctor", "", "exact doctor name")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive patient/doctor substring")
	return cmd
}

func bookCmd(cfg config.Config, log *slog.Logger) *cobra.Command {
	var in appointments.CreateInput
	var status, mode string

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a new appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Status = domain.Status(status)
			in.Mode = domain.Mode(mode)
			return withService(cfg, log, func(ctx context.Context, svc *appointments.Service) error {
				created, err := svc.Create(ctx, in)
				if err != nil {
					return err
				}
				log.Info("appointment booked",
					slog.String("id", created.ID),
					slog.String("doctor", created.DoctorName),
					slog.String("date", created.Date),
					slog.String("time", created.Time),
				)
				return printJSON(created)
			})
		},
	}

	cmd.Flags().StringVar(&in.PatientName, "patient", "", "patient name")
	cmd.Flags().StringVar(&in.Date, "date", "", "date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.Time, "time", "", "start time (HH:MM)")
	cmd.Flags().IntVar(&in.Duration, "duration", 30, "duration in minutes")
	cmd.Flags().StringVar(&in.DoctorName, "doctor", "", "doctor name")
	cmd.Flags().StringVar(&status, "status", "", "initial status (default Scheduled)")
	cmd.Flags().StringVar(&mode, "mode", string(domain.ModeInPerson), "delivery mode")
	cmd.Flags().StringVar(&in.Type, "type", "", "appointment purpose")
	_ = cmd.MarkFlagRequired("patient")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")
	_ = cmd.MarkFlagRequired("doctor")
	return cmd
}

func statusCmd(cfg config.Config, log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <new-status>",
		Short: "Update the status of an appointment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cfg, log, func(ctx context.Context, svc *appointments.Service) error {
				updated, found, err := svc.UpdateStatus(ctx, args[0], domain.Status(args[1]))
				if err != nil {
					return err
				}
				if !found {
					fmt.Fprintln(os.Stderr, "not found:", args[0])
					return nil
				}
				return printJSON(updated)
			})
		},
	}
}

func deleteCmd(cfg config.Config, log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cfg, log, func(ctx context.Context, svc *appointments.Service) error {
				ok, err := svc.Delete(ctx, args[0])
				if err != nil {
					return err
				}
				if ok {
					log.Info("appointment deleted", slog.String("id", args[0]))
				}
				return nil
			})
		},
	}
}

func seedResetCmd(cfg config.Config, log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-reset",
		Short: "Replace the stored collection with the built-in seed data",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := bolt.Open(cfg.DatabasePath, log)
			if err != nil {
				return err
			}
			defer func() {
				if err := st.Close(); err != nil {
					log.Warn("store close failed", slog.Any("err", err))
				}
			}()

			if err := st.Save(context.Background(), store.Seed()); err != nil {
				return err
			}
			log.Info("seed data restored", slog.String("path", cfg.DatabasePath))
			return nil
		},
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
