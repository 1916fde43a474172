package models

import "time"

// MonthAvailabilityItem описывает доступность одного дня месяца у провайдера
type MonthAvailabilityItem struct {
	Day       int  `json:"day"`       // день месяца, 1..31
	Available bool `json:"available"` // есть ли свободные слоты
}

// AppointmentUser is the counterparty summary embedded in an appointment.
type AppointmentUser struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Appointment представляет запись клиента к провайдеру
type Appointment struct {
	Date          time.Time       `json:"date"`
	User          AppointmentUser `json:"user"`
	ID            string          `json:"id"`
	HourFormatted string          `json:"-"` // HH:mm в локальной зоне, вычисляется при загрузке
}

// HourFormat is the layout of Appointment.HourFormatted.
const HourFormat = "15:04"
