package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/4nxiouz/thaitep-exam-booking/internal/app"
	"github.com/4nxiouz/thaitep-exam-booking/internal/config"
	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
	"github.com/4nxiouz/thaitep-exam-booking/internal/notification"
	"github.com/4nxiouz/thaitep-exam-booking/internal/repository"
	"github.com/4nxiouz/thaitep-exam-booking/internal/service"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/wb-go/wbf/logger"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		color.Red("examctl: %v", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "examctl",
		Short:         "Operator console for exam seat bookings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(roundsCmd(), bookingsCmd())
	return cmd
}

type services struct {
	catalog *service.CatalogService
	review  *service.ReviewService
	close   func()
}

func connect() (*services, error) {
	log, err := logger.InitLogger("slog", "examctl", "release", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := app.OpenDB(*config.MustLoadPostgres())
	if err != nil {
		return nil, err
	}

	bookingRepo := repository.NewBookingRepo(db)
	return &services{
		catalog: service.NewCatalogService(repository.NewRoundRepo(db), log),
		review:  service.NewReviewService(bookingRepo, notification.NewFanout(), log),
		close:   func() { _ = db.Master.Close() },
	}, nil
}

func roundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rounds",
		Short: "List every exam round with seat usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := connect()
			if err != nil {
				return err
			}
			defer svc.close()

			rounds, err := svc.catalog.ListRounds(cmd.Context())
			if err != nil {
				return err
			}

			color.Cyan("\n=== Exam rounds ===")
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Date", "Slot", "Seats", "Available", "State"})
			for _, r := range rounds {
				state := "open"
				if !r.IsActive {
					state = "closed"
				}
				table.Append([]string{
					r.ID,
					r.ExamDate.Format(time.DateOnly),
					string(r.TimeSlot),
					fmt.Sprintf("%d/%d", r.CurrentSeats, r.MaxSeats),
					strconv.Itoa(r.AvailableSeats()),
					state,
				})
			}
			table.Render()
			return nil
		},
	}
}

func bookingsCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "List bookings, newest first, with review totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := connect()
			if err != nil {
				return err
			}
			defer svc.close()

			list, err := svc.review.ListBookings(cmd.Context(), domain.StatusFilter(status))
			if err != nil {
				return err
			}

			printBookings(list)
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", string(domain.FilterAll), "Filter: all, pending, verified, rejected")
	return cmd
}

func printBookings(list *domain.BookingList) {
	color.Cyan("\n=== Bookings ===")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Code", "Name", "Type", "Round", "Price", "Payment", "Status", "Created"})
	for _, b := range list.Bookings {
		round := "-"
		if b.Round != nil {
			round = b.Round.ExamDate.Format(time.DateOnly) + " " + string(b.Round.TimeSlot)
		}
		table.Append([]string{
			b.Code,
			b.FullName,
			b.Category.Label(),
			round,
			strconv.Itoa(b.Price),
			string(b.PaymentMethod),
			statusText(b.Status),
			b.CreatedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	table.Render()

	s := list.Stats
	color.Yellow("\nTotal %d | pending %d | verified %d | rejected %d | revenue %d THB",
		s.Total, s.Pending, s.Verified, s.Rejected, s.Revenue)
}

func statusText(s domain.BookingStatus) string {
	switch s {
	case domain.BookingStatusVerified:
		return color.GreenString(string(s))
	case domain.BookingStatusRejected:
		return color.RedString(string(s))
	default:
		return color.YellowString(string(s))
	}
}
