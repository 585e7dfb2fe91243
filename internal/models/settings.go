package models

import "time"

// UserProfile - контактные данные пользователя
type UserProfile struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// NotificationSettings - предпочтения по каналам уведомлений
type NotificationSettings struct {
	Push         bool `json:"push"`
	SMS          bool `json:"sms"`
	Email        bool `json:"email"`
	CriticalOnly bool `json:"criticalOnly"`
}

// UserSettings хранится одним JSON-документом под ключом userSettings
type UserSettings struct {
	Profile       UserProfile          `json:"profile"`
	Notifications NotificationSettings `json:"notifications"`
	Availability  bool                 `json:"availability"`
}

// ProfileRecord - денормализованная копия профиля для страницы профиля
type ProfileRecord struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	JoinDate string `json:"joinDate"`
}

// Assignment - новое назначение кейса из ленты назначений
type Assignment struct {
	CaseID     string    `json:"case_id"`
	AssignedAt time.Time `json:"assigned_at"`
}
