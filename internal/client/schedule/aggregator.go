package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gobarber/gobarber-client/internal/models"
	"github.com/gobarber/gobarber-client/pkg/api"
)

// Fetcher is the part of the API client the aggregator reads from.
type Fetcher interface {
	MonthAvailability(ctx context.Context, q api.MonthAvailabilityQuery) ([]models.MonthAvailabilityItem, error)
	DayAppointments(ctx context.Context, q api.DayQuery) ([]models.Appointment, error)
}

// View is an immutable snapshot of the schedule screen state.
type View struct {
	SelectedDate time.Time
	CurrentMonth time.Time
	// AvailabilityMonth и AppointmentsDate: ключи последних примененных
	// данных; нулевое значение означает, что данных еще нет
	AvailabilityMonth time.Time
	AppointmentsDate  time.Time

	DisabledDays          []time.Time
	Appointments          []models.Appointment
	MorningAppointments   []models.Appointment
	AfternoonAppointments []models.Appointment
	NextAppointment       *models.Appointment

	// IsToday сообщает, что выбран сегодняшний день; показывать
	// NextAppointment имеет смысл только в этом случае
	IsToday bool
}

// Option настраивает Aggregator
type Option func(*Aggregator)

// WithLocation задает часовой пояс расписания (по умолчанию time.Local)
func WithLocation(loc *time.Location) Option {
	return func(a *Aggregator) {
		if loc != nil {
			a.loc = loc
		}
	}
}

// WithClock подменяет источник текущего времени
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		if now != nil {
			a.now = now
		}
	}
}

// WithLogger задает логгер
func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// fetchSlot tracks the in-flight request of one category.
// seq grows with every request; a result is applied only while its seq is
// still the latest.
type fetchSlot struct {
	cancel context.CancelFunc
	seq    uint64
}

func (s *fetchSlot) begin(parent context.Context) (context.Context, uint64) {
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.seq++
	return ctx, s.seq
}

func (s *fetchSlot) finish(seq uint64) {
	if s.seq == seq && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *fetchSlot) abort() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
}

// Aggregator combines month availability and the appointments of the
// selected day into the read models of the schedule screen.
type Aggregator struct {
	fetcher    Fetcher
	logger     *slog.Logger
	loc        *time.Location
	now        func() time.Time
	providerID string

	mu                sync.Mutex
	selectedDate      time.Time
	currentMonth      time.Time
	availability      []models.MonthAvailabilityItem
	availabilityMonth time.Time
	appointments      []models.Appointment
	appointmentsDate  time.Time
	monthFetch        fetchSlot
	dayFetch          fetchSlot
	closed            bool
}

// New создает агрегатор для провайдера. Выбранный день и текущий месяц
// по умолчанию сегодня; данные загружаются вызовом Refresh.
func New(fetcher Fetcher, providerID string, opts ...Option) *Aggregator {
	a := &Aggregator{
		fetcher:    fetcher,
		providerID: providerID,
		loc:        time.Local,
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}

	today := startOfDay(a.now().In(a.loc))
	a.selectedDate = today
	a.currentMonth = startOfMonth(today)

	return a
}

// SetCurrentMonth переключает календарь на месяц и загружает его доступность.
// Ответ для месяца, который успели сменить, отбрасывается.
func (a *Aggregator) SetCurrentMonth(ctx context.Context, month time.Time) error {
	month = startOfMonth(month.In(a.loc))

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return ErrClosed
	}
	a.currentMonth = month
	fetchCtx, seq := a.monthFetch.begin(ctx)
	a.mu.Unlock()

	return a.fetchMonth(fetchCtx, seq, month)
}

// SetSelectedDate выбирает день и загружает его записи.
// Ответ для дня, который успели сменить, отбрасывается.
func (a *Aggregator) SetSelectedDate(ctx context.Context, day time.Time) error {
	day = startOfDay(day.In(a.loc))

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return ErrClosed
	}
	a.selectedDate = day
	fetchCtx, seq := a.dayFetch.begin(ctx)
	a.mu.Unlock()

	return a.fetchDay(fetchCtx, seq, day)
}

// SelectDay is the calendar click: weekends and days the provider marked
// unavailable are rejected, any other day becomes the selected date.
func (a *Aggregator) SelectDay(ctx context.Context, day time.Time) error {
	day = startOfDay(day.In(a.loc))

	a.mu.Lock()
	disabled := a.isDisabledLocked(day)
	a.mu.Unlock()

	if disabled {
		return fmt.Errorf("%w: %s", ErrDayUnavailable, day.Format(time.DateOnly))
	}

	return a.SetSelectedDate(ctx, day)
}

// Refresh загружает доступность и записи для текущих значений параллельно.
// Возвращает первую ошибку; успешная половина все равно применяется.
func (a *Aggregator) Refresh(ctx context.Context) error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return ErrClosed
	}
	month := a.currentMonth
	day := a.selectedDate
	monthCtx, monthSeq := a.monthFetch.begin(ctx)
	dayCtx, daySeq := a.dayFetch.begin(ctx)
	a.mu.Unlock()

	var g errgroup.Group
	g.Go(func() error { return a.fetchMonth(monthCtx, monthSeq, month) })
	g.Go(func() error { return a.fetchDay(dayCtx, daySeq, day) })

	return g.Wait()
}

// Close отменяет все запросы в полете; последующие вызовы вернут ErrClosed
func (a *Aggregator) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.closed = true
	a.monthFetch.abort()
	a.dayFetch.abort()
}

// View строит снимок производных данных из текущего состояния
func (a *Aggregator) View() View {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now().In(a.loc)

	v := View{
		SelectedDate:      a.selectedDate,
		CurrentMonth:      a.currentMonth,
		AvailabilityMonth: a.availabilityMonth,
		AppointmentsDate:  a.appointmentsDate,
		Appointments:      append([]models.Appointment(nil), a.appointments...),
		IsToday:           sameDay(a.selectedDate, now),
	}

	// Доступность другого месяца на текущий не накладывается
	var items []models.MonthAvailabilityItem
	if a.availabilityMonth.Equal(a.currentMonth) {
		items = a.availability
	}
	v.DisabledDays = DisabledDays(a.currentMonth, items)

	v.MorningAppointments, v.AfternoonAppointments = SplitByPeriod(v.Appointments, a.loc)

	if next, ok := NextAppointment(v.Appointments, now); ok {
		v.NextAppointment = &next
	}

	return v
}

func (a *Aggregator) fetchMonth(ctx context.Context, seq uint64, month time.Time) error {
	items, err := a.fetcher.MonthAvailability(ctx, api.MonthAvailabilityQuery{
		ProviderID: a.providerID,
		Year:       month.Year(),
		Month:      int(month.Month()),
	})

	a.mu.Lock()
	defer a.mu.Unlock()
	defer a.monthFetch.finish(seq)

	if seq != a.monthFetch.seq || !month.Equal(a.currentMonth) {
		a.logger.Debug("discarding superseded month availability", "month", month.Format("2006-01"))
		return nil
	}

	if err != nil {
		return fmt.Errorf("%w: month availability %s: %w", ErrFetchFailed, month.Format("2006-01"), err)
	}

	a.availability = items
	a.availabilityMonth = month

	return nil
}

func (a *Aggregator) fetchDay(ctx context.Context, seq uint64, day time.Time) error {
	appointments, err := a.fetcher.DayAppointments(ctx, api.DayQuery{
		Year:  day.Year(),
		Month: int(day.Month()),
		Day:   day.Day(),
	})

	a.mu.Lock()
	defer a.mu.Unlock()
	defer a.dayFetch.finish(seq)

	if seq != a.dayFetch.seq || !day.Equal(a.selectedDate) {
		a.logger.Debug("discarding superseded appointments", "date", day.Format(time.DateOnly))
		return nil
	}

	if err != nil {
		return fmt.Errorf("%w: appointments %s: %w", ErrFetchFailed, day.Format(time.DateOnly), err)
	}

	a.appointments = withHours(appointments, a.loc)
	a.appointmentsDate = day

	return nil
}

func (a *Aggregator) isDisabledLocked(day time.Time) bool {
	if isWeekend(day) {
		return true
	}
	if !a.availabilityMonth.Equal(startOfMonth(day)) {
		return false
	}
	for _, item := range a.availability {
		if item.Day == day.Day() && !item.Available {
			return true
		}
	}
	return false
}
