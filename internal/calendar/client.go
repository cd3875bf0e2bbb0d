// Package calendar mirrors booked appointments into Google Calendar.
// The sync is strictly best effort: a disabled client, an auth failure, a
// network error or a quota error all yield an empty event id and a log
// line, never an error. Booking must succeed regardless of the outcome
// here.
package calendar

import (
	"context"
	"log"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	oauthjwt "golang.org/x/oauth2/jwt"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API for a single target calendar.
// A zero service means the integration is disabled.
type Client struct {
	svc        *gcal.Service
	calendarID string
}

// New builds a Client authenticated as a service account. When the email
// or private key is missing the returned client is disabled but still
// usable — CreateEvent becomes a logged no-op. Escaped "\n" sequences in
// the key (common when the PEM is passed through an env var) are
// unescaped before use.
func New(ctx context.Context, serviceAccountEmail, privateKey, calendarID string) *Client {
	if calendarID == "" {
		calendarID = "primary"
	}
	c := &Client{calendarID: calendarID}

	if serviceAccountEmail == "" || privateKey == "" {
		log.Println("calendar: credentials not configured, sync disabled")
		return c
	}

	conf := &oauthjwt.Config{
		Email:      serviceAccountEmail,
		PrivateKey: []byte(strings.ReplaceAll(privateKey, `\n`, "\n")),
		Scopes:     []string{gcal.CalendarScope},
		TokenURL:   google.JWTTokenURL,
	}
	svc, err := gcal.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
	if err != nil {
		log.Printf("calendar: init failed, sync disabled: %v", err)
		return c
	}

	c.svc = svc
	log.Println("calendar: service initialized")
	return c
}

// CreateEvent creates a one-hour event for the appointment and returns
// the provider event id, or "" when sync is disabled or the call fails.
// Attendees are deliberately not attached: the provider rejects
// service-account events that invite attendees, so the requester's email
// lives in the description instead. There is no idempotency — a second
// call for the same appointment creates a second event.
func (c *Client) CreateEvent(ctx context.Context, name, email string, start time.Time, notes string) string {
	if c.svc == nil {
		log.Println("calendar: not configured, skipping event creation")
		return ""
	}

	if notes == "" {
		notes = "No additional notes"
	}
	start = start.UTC()

	ev := &gcal.Event{
		Summary:     "Appointment with " + name,
		Description: "Attendee: " + email + "\n\n" + notes,
		Start: &gcal.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &gcal.EventDateTime{
			DateTime: start.Add(time.Hour).Format(time.RFC3339),
			TimeZone: "UTC",
		},
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 30},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := c.svc.Events.Insert(c.calendarID, ev).SendUpdates("all").Context(ctx).Do()
	if err != nil {
		log.Printf("calendar: create event failed: %v", err)
		return ""
	}

	log.Printf("calendar: event created: %s", created.Id)
	return created.Id
}
