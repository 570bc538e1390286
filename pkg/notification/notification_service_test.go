package notification

import (
	"Pantry-Backend/domain"
	"Pantry-Backend/entities"
	"Pantry-Backend/pkg/expiry"
	"Pantry-Backend/pkg/food"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var today = expiry.Date{Year: 2026, Month: time.October, Day: 19}

type memoryNotificationRepository struct {
	settings map[string]*entities.NotificationSetting
}

func (r *memoryNotificationRepository) GetSetting(_ context.Context, userID string) (*entities.NotificationSetting, error) {
	setting, ok := r.settings[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *setting
	return &copied, nil
}

func (r *memoryNotificationRepository) SaveSetting(_ context.Context, setting *entities.NotificationSetting) error {
	copied := *setting
	r.settings[setting.UserID.String()] = &copied
	return nil
}

func (r *memoryNotificationRepository) GetEnabledSettings(_ context.Context) ([]*entities.NotificationSetting, error) {
	var settings []*entities.NotificationSetting
	for _, setting := range r.settings {
		if setting.Enabled {
			copied := *setting
			settings = append(settings, &copied)
		}
	}
	return settings, nil
}

func (r *memoryNotificationRepository) MarkSent(_ context.Context, userID string, sentAt time.Time) error {
	r.settings[userID].LastSentAt = &sentAt
	return nil
}

// pantry serves only the expiring-items query.
type pantry struct {
	food.FoodRepository
	items map[string][]*entities.FoodItem
}

func (p *pantry) GetFoodItemsExpiringBefore(_ context.Context, userID string, endDate time.Time) ([]*entities.FoodItem, error) {
	var result []*entities.FoodItem
	for _, item := range p.items[userID] {
		if !item.ExpiryDate.After(endDate) && item.Quantity > 0 {
			result = append(result, item)
		}
	}
	return result, nil
}

type sentMail struct {
	to, subject, body string
}

type recordingMailer struct {
	sent    []sentMail
	failFor string
}

func (m *recordingMailer) SendMail(to, subject, body string) error {
	if to == m.failFor {
		return errors.New("smtp: connection refused")
	}
	m.sent = append(m.sent, sentMail{to, subject, body})
	return nil
}

func expiringIn(name string, days int) *entities.FoodItem {
	t := today.AddDays(days).Time()
	return &entities.FoodItem{ID: uuid.New(), Name: name, Quantity: 1, Location: domain.LocationFridge, ExpiryDate: &t}
}

type fixture struct {
	svc     *notificationService
	repo    *memoryNotificationRepository
	pantry  *pantry
	mailer  *recordingMailer
	sentAt  time.Time
	ownerID string
}

func newFixture() *fixture {
	f := &fixture{
		repo:    &memoryNotificationRepository{settings: map[string]*entities.NotificationSetting{}},
		pantry:  &pantry{items: map[string][]*entities.FoodItem{}},
		mailer:  &recordingMailer{},
		sentAt:  time.Date(2026, time.October, 19, 7, 0, 0, 0, time.UTC),
		ownerID: uuid.NewString(),
	}
	f.svc = &notificationService{
		notificationRepository: f.repo,
		foodRepository:         f.pantry,
		mailer:                 f.mailer,
		location:               time.UTC,
		now:                    func() time.Time { return f.sentAt },
	}
	return f
}

func (f *fixture) enable(t *testing.T, userID, email string, daysBefore int) {
	t.Helper()
	require.NoError(t, f.repo.SaveSetting(context.Background(), &entities.NotificationSetting{
		UserID:     uuid.MustParse(userID),
		Email:      email,
		Enabled:    true,
		DaysBefore: daysBefore,
	}))
}

func TestGetSettings_Defaults(t *testing.T) {
	f := newFixture()

	settings, err := f.svc.GetSettings(context.Background(), f.ownerID)
	require.NoError(t, err)
	assert.Equal(t, domain.NotificationSettingResponse{DaysBefore: 2}, settings)

	_, err = f.svc.GetSettings(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestUpdateSettings(t *testing.T) {
	f := newFixture()
	enabled := true
	days := 5

	_, err := f.svc.UpdateSettings(context.Background(), f.ownerID, domain.UpdateNotificationSettingRequest{Enabled: &enabled})
	assert.ErrorIs(t, err, domain.ErrReminderEmailRequired)

	settings, err := f.svc.UpdateSettings(context.Background(), f.ownerID, domain.UpdateNotificationSettingRequest{
		Email:      "cook@example.com",
		Enabled:    &enabled,
		DaysBefore: &days,
	})
	require.NoError(t, err)
	assert.True(t, settings.Enabled)
	assert.Equal(t, 5, settings.DaysBefore)
	assert.Equal(t, "cook@example.com", f.repo.settings[f.ownerID].Email)

	tooMany := 30
	_, err = f.svc.UpdateSettings(context.Background(), f.ownerID, domain.UpdateNotificationSettingRequest{DaysBefore: &tooMany})
	assert.ErrorIs(t, err, domain.ErrInvalidDaysBefore)
}

func TestSendReminders(t *testing.T) {
	f := newFixture()
	quiet := uuid.NewString()
	broken := uuid.NewString()

	f.enable(t, f.ownerID, "cook@example.com", 2)
	f.enable(t, quiet, "quiet@example.com", 2)
	f.enable(t, broken, "broken@example.com", 2)
	f.mailer.failFor = "broken@example.com"

	f.pantry.items[f.ownerID] = []*entities.FoodItem{
		expiringIn("Spinach", -1),
		expiringIn("Milk", 2),
		expiringIn("Jam", 10),
	}
	f.pantry.items[quiet] = []*entities.FoodItem{expiringIn("Honey", 100)}
	f.pantry.items[broken] = []*entities.FoodItem{expiringIn("Fish", 0)}

	sent, err := f.svc.SendReminders(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	require.Len(t, f.mailer.sent, 1)
	mail := f.mailer.sent[0]
	assert.Equal(t, "cook@example.com", mail.to)
	assert.Equal(t, "2 items expiring soon", mail.subject)
	assert.Contains(t, mail.body, "Spinach")
	assert.Contains(t, mail.body, "Yesterday")
	assert.Contains(t, mail.body, "Milk")
	assert.Contains(t, mail.body, "Wednesday")
	assert.NotContains(t, mail.body, "Jam")
	assert.Contains(t, mail.body, "1 critical")

	require.NotNil(t, f.repo.settings[f.ownerID].LastSentAt)
	assert.Nil(t, f.repo.settings[quiet].LastSentAt)
	assert.Nil(t, f.repo.settings[broken].LastSentAt)
}

func TestSendReminders_OncePerDay(t *testing.T) {
	f := newFixture()
	f.enable(t, f.ownerID, "cook@example.com", 2)
	f.pantry.items[f.ownerID] = []*entities.FoodItem{expiringIn("Milk", 1)}

	sent, err := f.svc.SendReminders(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	sent, err = f.svc.SendReminders(context.Background(), today)
	require.NoError(t, err)
	assert.Zero(t, sent)

	sent, err = f.svc.SendReminders(context.Background(), today.AddDays(1))
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Len(t, f.mailer.sent, 2)
}

func TestSendTestReminder(t *testing.T) {
	f := newFixture()

	err := f.svc.SendTestReminder(context.Background(), f.ownerID, today)
	assert.ErrorIs(t, err, domain.ErrReminderEmailRequired)

	require.NoError(t, f.repo.SaveSetting(context.Background(), &entities.NotificationSetting{
		UserID:     uuid.MustParse(f.ownerID),
		Email:      "cook@example.com",
		DaysBefore: 3,
	}))

	require.NoError(t, f.svc.SendTestReminder(context.Background(), f.ownerID, today))
	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "Nothing expiring soon", f.mailer.sent[0].subject)
	assert.Contains(t, f.mailer.sent[0].body, "next 3 days")
}

func TestSendTestReminder_DoesNotCountAsDailyReminder(t *testing.T) {
	f := newFixture()
	f.enable(t, f.ownerID, "cook@example.com", 2)

	require.NoError(t, f.svc.SendTestReminder(context.Background(), f.ownerID, today))
	assert.Nil(t, f.repo.settings[f.ownerID].LastSentAt)

	f.pantry.items[f.ownerID] = []*entities.FoodItem{expiringIn("Milk", 1)}

	sent, err := f.svc.SendReminders(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Len(t, f.mailer.sent, 2)
}

func TestSendReminders_ForAnotherDayRecordsThatDay(t *testing.T) {
	f := newFixture()
	f.enable(t, f.ownerID, "cook@example.com", 2)
	f.pantry.items[f.ownerID] = []*entities.FoodItem{expiringIn("Milk", 2)}
	tomorrow := today.AddDays(1)

	sent, err := f.svc.SendReminders(context.Background(), tomorrow)
	require.NoError(t, err)
	require.Equal(t, 1, sent)

	lastSent := f.repo.settings[f.ownerID].LastSentAt
	require.NotNil(t, lastSent)
	assert.Equal(t, tomorrow, expiry.Today(*lastSent, time.UTC))

	f.sentAt = time.Date(2026, time.October, 20, 7, 0, 0, 0, time.UTC)
	sent, err = f.svc.SendReminders(context.Background(), tomorrow)
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Len(t, f.mailer.sent, 1)
}
