package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/gobarber/gobarber-client/internal/client/schedule"
	"github.com/gobarber/gobarber-client/internal/models"
)

const noAppointments = "  Nenhum agendamento neste período"

func (c *Cli) runSchedule(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("schedule", flag.ContinueOnError)
	fs.SetOutput(c.io)
	dateFlag := fs.String("date", "", "Day to show, YYYY-MM-DD (default: today)")
	monthFlag := fs.String("month", "", "Calendar month, YYYY-MM (default: month of --date)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, ok := c.controller.User()
	if !ok {
		return errNotLoggedIn
	}

	agg := schedule.New(c.apiClient, user.ID,
		schedule.WithLocation(c.loc),
		schedule.WithClock(c.now),
		schedule.WithLogger(c.logger),
	)
	defer agg.Close()

	if err := c.loadSchedule(ctx, agg, *dateFlag, *monthFlag); err != nil {
		return err
	}

	c.printSchedule(agg.View())
	return nil
}

// loadSchedule без флагов загружает сегодняшний день и текущий месяц одним
// Refresh. С --date день выбирается как клик по календарю: выходные и
// недоступные дни отклоняются.
func (c *Cli) loadSchedule(ctx context.Context, agg *schedule.Aggregator, dateArg, monthArg string) error {
	if dateArg == "" && monthArg == "" {
		return agg.Refresh(ctx)
	}

	day := c.now().In(c.loc)
	if dateArg != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, dateArg, c.loc)
		if err != nil {
			return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", dateArg)
		}
		day = parsed
	}

	month := day
	if monthArg != "" {
		parsed, err := time.ParseInLocation("2006-01", monthArg, c.loc)
		if err != nil {
			return fmt.Errorf("invalid --month %q, expected YYYY-MM", monthArg)
		}
		month = parsed
	}

	if err := agg.SetCurrentMonth(ctx, month); err != nil {
		return err
	}

	if dateArg == "" {
		return agg.SetSelectedDate(ctx, day)
	}
	return agg.SelectDay(ctx, day)
}

func (c *Cli) printSchedule(v schedule.View) {
	c.io.Println("=== Horários agendados ===")

	heading := formatDayHeading(v.SelectedDate)
	if v.IsToday {
		heading = "Hoje | " + heading
	}
	c.io.Println(heading)

	if v.IsToday && v.NextAppointment != nil {
		c.io.Println()
		c.io.Println("Atendimento a seguir")
		c.io.Println(formatAppointment(*v.NextAppointment))
	}

	c.printSection("Manhã", v.MorningAppointments)
	c.printSection("Tarde", v.AfternoonAppointments)

	c.io.Println()
	if len(v.DisabledDays) == 0 {
		c.io.Printf("Dias indisponíveis em %s: nenhum\n", formatMonth(v.CurrentMonth))
		return
	}
	c.io.Printf("Dias indisponíveis em %s: %s\n", formatMonth(v.CurrentMonth), formatDays(v.DisabledDays))
}

func (c *Cli) printSection(title string, appointments []models.Appointment) {
	c.io.Println()
	c.io.Println(title)

	if len(appointments) == 0 {
		c.io.Println(noAppointments)
		return
	}
	for _, a := range appointments {
		c.io.Println(formatAppointment(a))
	}
}
