package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gobarber/gobarber-client/internal/models"
)

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

var weekdayNames = [...]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

// formatDayHeading дает "Dia 19 de outubro | segunda-feira"
func formatDayHeading(day time.Time) string {
	return fmt.Sprintf("Dia %02d de %s | %s",
		day.Day(), monthNames[day.Month()-1], weekdayNames[day.Weekday()])
}

// formatMonth дает "outubro de 2026"
func formatMonth(month time.Time) string {
	return fmt.Sprintf("%s de %d", monthNames[month.Month()-1], month.Year())
}

func formatDays(days []time.Time) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, strconv.Itoa(d.Day()))
	}
	return strings.Join(parts, ", ")
}

func formatAppointment(a models.Appointment) string {
	return fmt.Sprintf("  %s  %s", a.HourFormatted, a.User.Name)
}
