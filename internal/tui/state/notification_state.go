package state

// NotificationLevel is the severity of a notification.
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelWarning
	LevelError
)

// Notification is a single dismissible message.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the notifications a screen is currently showing.
type NotificationState struct {
	notifications []Notification
}

// NewNotificationState creates a NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{notifications: []Notification{}}
}

// Add appends a notification.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{
		Level:   level,
		Message: message,
	})
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = []Notification{}
}

// ClearLevel removes all notifications of a specific level.
func (s *NotificationState) ClearLevel(level NotificationLevel) {
	filtered := []Notification{}
	for _, n := range s.notifications {
		if n.Level != level {
			filtered = append(filtered, n)
		}
	}
	s.notifications = filtered
}

// Dismiss drops the oldest notification.
func (s *NotificationState) Dismiss() {
	if len(s.notifications) == 0 {
		return
	}
	s.notifications = s.notifications[1:]
}

func (s *NotificationState) All() []Notification {
	return s.notifications
}

func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}
