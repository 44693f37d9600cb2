package models

import "time"

// Admin is the single privileged identity allowed to perform writes.
// The password hash never leaves the server.
type Admin struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

func (a *Admin) Profile() AdminProfile {
	return AdminProfile{Email: a.Email, Name: a.Name}
}

type AdminProfile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	Admin       AdminProfile `json:"admin"`
}

type Event struct {
	EventID     string    `json:"event_id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	EventType   string    `json:"event_type"`
	Category    string    `json:"category"`
	Images      []string  `json:"images"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

type EventCreate struct {
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	EventType   string   `json:"event_type"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
}

// EventUpdate is a partial update: nil fields are left unchanged.
type EventUpdate struct {
	Title       *string  `json:"title"`
	Location    *string  `json:"location"`
	EventType   *string  `json:"event_type"`
	Category    *string  `json:"category"`
	Images      []string `json:"images"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
}

type Service struct {
	ServiceID   string  `json:"service_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Icon        *string `json:"icon"`
}

type ServiceUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Icon        *string `json:"icon"`
}

type Enquiry struct {
	EnquiryID string    `json:"enquiry_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	EventType string    `json:"event_type"`
	EventDate string    `json:"event_date"`
	Location  string    `json:"location"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type EnquiryCreate struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	EventType string `json:"event_type"`
	EventDate string `json:"event_date"`
	Location  string `json:"location"`
	Message   string `json:"message"`
}

type EnquiryStatusUpdate struct {
	Status string `json:"status"`
}

type Content struct {
	SectionName string         `json:"section_name"`
	Content     map[string]any `json:"content"`
}

type ContentUpdate struct {
	Content map[string]any `json:"content"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
