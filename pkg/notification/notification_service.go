package notification

import (
	"Pantry-Backend/domain"
	"Pantry-Backend/entities"
	"Pantry-Backend/internal/utils/mailing"
	"Pantry-Backend/pkg/expiry"
	"Pantry-Backend/pkg/food"
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:embed reminder_email.html
var reminderEmail string

var reminderTemplate = template.Must(template.New("reminder").Parse(reminderEmail))

type (
	NotificationService interface {
		GetSettings(ctx context.Context, userID string) (domain.NotificationSettingResponse, error)
		UpdateSettings(ctx context.Context, userID string, req domain.UpdateNotificationSettingRequest) (domain.NotificationSettingResponse, error)
		SendReminders(ctx context.Context, today expiry.Date) (int, error)
		SendTestReminder(ctx context.Context, userID string, today expiry.Date) error
	}

	notificationService struct {
		notificationRepository NotificationRepository
		foodRepository         food.FoodRepository
		mailer                 mailing.Mailer
		location               *time.Location
		now                    func() time.Time
	}

	digestItem struct {
		Name     string
		Quantity int
		Location string
		When     string
		Urgency  string
		Hex      string
	}

	digest struct {
		Summary    string
		DaysBefore int
		Today      string
		Items      []digestItem
	}
)

func NewNotificationService(
	notificationRepository NotificationRepository,
	foodRepository food.FoodRepository,
	mailer mailing.Mailer,
	location *time.Location,
) NotificationService {
	if location == nil {
		location = time.UTC
	}
	return &notificationService{
		notificationRepository: notificationRepository,
		foodRepository:         foodRepository,
		mailer:                 mailer,
		location:               location,
		now:                    time.Now,
	}
}

func (s *notificationService) GetSettings(ctx context.Context, userID string) (domain.NotificationSettingResponse, error) {
	setting, err := s.getSetting(ctx, userID)
	if err != nil {
		return domain.NotificationSettingResponse{}, err
	}
	return toResponse(setting), nil
}

func (s *notificationService) UpdateSettings(ctx context.Context, userID string, req domain.UpdateNotificationSettingRequest) (domain.NotificationSettingResponse, error) {
	setting, err := s.getSetting(ctx, userID)
	if err != nil {
		return domain.NotificationSettingResponse{}, err
	}

	if req.Email != "" {
		setting.Email = req.Email
	}
	if req.DaysBefore != nil {
		if *req.DaysBefore < 1 || *req.DaysBefore > domain.MaxReminderDaysBefore {
			return domain.NotificationSettingResponse{}, domain.ErrInvalidDaysBefore
		}
		setting.DaysBefore = *req.DaysBefore
	}
	if req.Enabled != nil {
		setting.Enabled = *req.Enabled
	}
	if setting.Enabled && setting.Email == "" {
		return domain.NotificationSettingResponse{}, domain.ErrReminderEmailRequired
	}

	if err := s.notificationRepository.SaveSetting(ctx, setting); err != nil {
		return domain.NotificationSettingResponse{}, err
	}
	return toResponse(setting), nil
}

func (s *notificationService) SendReminders(ctx context.Context, today expiry.Date) (int, error) {
	settings, err := s.notificationRepository.GetEnabledSettings(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, setting := range settings {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		if !setting.Enabled || setting.Email == "" {
			continue
		}
		if setting.LastSentAt != nil && expiry.Today(*setting.LastSentAt, s.location) == today {
			continue
		}

		ok, err := s.sendDigest(ctx, setting, today, false)
		if err != nil {
			log.Errorf("reminder for user %s failed: %v", setting.UserID, err)
			continue
		}
		if ok {
			sent++
		}
	}

	log.Infof("sent %d expiry reminders for %s", sent, today)
	return sent, nil
}

func (s *notificationService) SendTestReminder(ctx context.Context, userID string, today expiry.Date) error {
	setting, err := s.getSetting(ctx, userID)
	if err != nil {
		return err
	}
	if setting.Email == "" {
		return domain.ErrReminderEmailRequired
	}

	_, err = s.sendDigest(ctx, setting, today, true)
	return err
}

// sendDigest mails the user's expiring items. Without force an empty digest is
// not sent and reports false. Only unforced sends count as the day's reminder.
func (s *notificationService) sendDigest(ctx context.Context, setting *entities.NotificationSetting, today expiry.Date, force bool) (bool, error) {
	daysBefore := setting.DaysBefore
	if daysBefore < 1 {
		daysBefore = domain.DefaultReminderDaysBefore
	}

	foodItems, err := s.foodRepository.GetFoodItemsExpiringBefore(ctx, setting.UserID.String(), today.AddDays(daysBefore).Time())
	if err != nil {
		return false, err
	}
	if len(foodItems) == 0 && !force {
		return false, nil
	}

	body, err := renderDigest(foodItems, daysBefore, today)
	if err != nil {
		return false, err
	}

	subject := "Nothing expiring soon"
	if len(foodItems) > 0 {
		subject = fmt.Sprintf("%d %s expiring soon", len(foodItems), pluralize(len(foodItems), "item", "items"))
	}

	if err := s.mailer.SendMail(setting.Email, subject, body); err != nil {
		return false, fmt.Errorf("send reminder: %w", err)
	}

	if force {
		return true, nil
	}

	if err := s.notificationRepository.MarkSent(ctx, setting.UserID.String(), s.sentAt(today)); err != nil {
		log.Warnf("failed to record reminder for user %s: %v", setting.UserID, err)
	}
	return true, nil
}

// sentAt is the timestamp recorded for a run on today. A run for another day
// is recorded at that day's midnight so the once-per-day check sees it.
func (s *notificationService) sentAt(today expiry.Date) time.Time {
	now := s.now()
	if expiry.Today(now, s.location) == today {
		return now
	}
	return time.Date(today.Year, today.Month, today.Day, 0, 0, 0, 0, s.location)
}

func (s *notificationService) getSetting(ctx context.Context, userID string) (*entities.NotificationSetting, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	setting, err := s.notificationRepository.GetSetting(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entities.NotificationSetting{
				UserID:     userUUID,
				DaysBefore: domain.DefaultReminderDaysBefore,
			}, nil
		}
		return nil, err
	}
	return setting, nil
}

func renderDigest(foodItems []*entities.FoodItem, daysBefore int, today expiry.Date) (string, error) {
	data := digest{
		DaysBefore: daysBefore,
		Today:      today.String(),
	}

	critical := 0
	for _, item := range foodItems {
		urgency, ok := expiry.ClassifyItem(*item, today)
		if !ok {
			continue
		}
		if urgency.Level == expiry.LevelCritical {
			critical++
		}
		data.Items = append(data.Items, digestItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Location: item.Location,
			When:     expiry.FormatDate(expiry.DateOf(*item.ExpiryDate), today),
			Urgency:  urgency.Label,
			Hex:      urgency.Hex,
		})
	}

	data.Summary = fmt.Sprintf("%d %s expiring within %d days", len(data.Items), pluralize(len(data.Items), "item", "items"), daysBefore)
	if critical > 0 {
		data.Summary += fmt.Sprintf(", %d critical", critical)
	}

	var buf bytes.Buffer
	if err := reminderTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func toResponse(setting *entities.NotificationSetting) domain.NotificationSettingResponse {
	return domain.NotificationSettingResponse{
		Email:      setting.Email,
		Enabled:    setting.Enabled,
		DaysBefore: setting.DaysBefore,
		LastSentAt: setting.LastSentAt,
	}
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
