package usecase

import (
	"errors"
	"time"

	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/dto"
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/entity"
	"github.com/janhvi13092005/doc-talk-connect/pkg/validator"
)

var (
	ErrSlotUnavailable = errors.New("the selected date or time is not available")
)

// DefaultBookingSlots are the times of day offered on every bookable date.
var DefaultBookingSlots = []string{"09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00"}

const (
	DefaultBookingDays = 7

	dateLabelLayout = "Mon, Jan 2"
)

var channelLabels = map[entity.ConsultationType]string{
	entity.ConsultationVideo:    "Video Call",
	entity.ConsultationVoice:    "Voice Call",
	entity.ConsultationChat:     "Chat",
	entity.ConsultationInPerson: "In-Person",
}

// BookingWindow is the set of dates and times a patient may book: the next
// Days calendar days (today included) at each of Slots, in Location.
type BookingWindow struct {
	Days     int
	Slots    []string
	Location *time.Location
}

func NewBookingWindow(loc *time.Location) BookingWindow {
	if loc == nil {
		loc = time.Local
	}
	return BookingWindow{
		Days:     DefaultBookingDays,
		Slots:    DefaultBookingSlots,
		Location: loc,
	}
}

// Dates returns midnight of each bookable day, starting with today.
func (w BookingWindow) Dates(now time.Time) []time.Time {
	local := now.In(w.Location)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, w.Location)

	dates := make([]time.Time, w.Days)
	for i := range dates {
		dates[i] = today.AddDate(0, 0, i)
	}
	return dates
}

// Resolve composes a YYYY-MM-DD date and an HH:MM slot into a wall-clock
// instant in the window's location.
func (w BookingWindow) Resolve(now time.Time, date, slot string) (time.Time, error) {
	if !w.hasSlot(slot) {
		return time.Time{}, ErrSlotUnavailable
	}

	day, err := time.ParseInLocation(validator.DateLayout, date, w.Location)
	if err != nil {
		return time.Time{}, ErrSlotUnavailable
	}

	inWindow := false
	for _, d := range w.Dates(now) {
		if d.Equal(day) {
			inWindow = true
			break
		}
	}
	if !inWindow {
		return time.Time{}, ErrSlotUnavailable
	}

	clock, err := time.Parse(validator.TimeLayout, slot)
	if err != nil {
		return time.Time{}, ErrSlotUnavailable
	}

	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, w.Location), nil
}

// Options lists what the booking dialog offers, with video preselected.
func (w BookingWindow) Options(now time.Time) dto.BookingOptionsResponse {
	channels := make([]dto.ChannelOption, len(entity.ConsultationTypes))
	for i, t := range entity.ConsultationTypes {
		channels[i] = dto.ChannelOption{
			Value: string(t),
			Label: channelLabels[t],
			Icon:  t.Icon(),
		}
	}

	days := w.Dates(now)
	dates := make([]dto.DateOption, len(days))
	for i, d := range days {
		dates[i] = dto.DateOption{
			Value: d.Format(validator.DateLayout),
			Label: d.Format(dateLabelLayout),
		}
	}

	slots := make([]string, len(w.Slots))
	copy(slots, w.Slots)

	return dto.BookingOptionsResponse{
		Channels:       channels,
		DefaultChannel: string(entity.DefaultConsultationType),
		Dates:          dates,
		Slots:          slots,
	}
}

func (w BookingWindow) hasSlot(slot string) bool {
	for _, s := range w.Slots {
		if s == slot {
			return true
		}
	}
	return false
}
