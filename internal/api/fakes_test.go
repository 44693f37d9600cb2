package api

import (
	"context"
	"sync"

	"decorcms-backend/internal/models"
	"decorcms-backend/internal/storage"
)

type fakeAdminStore struct {
	mu     sync.Mutex
	admins map[string]*models.Admin
	getErr error
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: map[string]*models.Admin{}}
}

func (s *fakeAdminStore) Create(_ context.Context, admin *models.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.admins) > 0 {
		return storage.ErrRegistrationDisabled
	}
	s.admins[admin.Email] = admin
	return nil
}

func (s *fakeAdminStore) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	if admin, ok := s.admins[email]; ok {
		return admin, nil
	}
	return nil, storage.ErrNotFound
}

type fakeEventStore struct {
	mu     sync.Mutex
	events map[string]models.Event
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{events: map[string]models.Event{}}
}

func (s *fakeEventStore) List(_ context.Context, category string) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := []models.Event{}
	for _, e := range s.events {
		if category == "" || e.Category == category {
			events = append(events, e)
		}
	}
	return events, nil
}

func (s *fakeEventStore) Create(_ context.Context, e *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.EventID == "" {
		e.EventID = "event-1"
	}
	s.events[e.EventID] = *e
	return nil
}

func (s *fakeEventStore) Update(_ context.Context, id string, upd models.EventUpdate) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if upd.Title != nil {
		e.Title = *upd.Title
	}
	if upd.Category != nil {
		e.Category = *upd.Category
	}
	s.events[id] = e
	return &e, nil
}

func (s *fakeEventStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.events, id)
	return nil
}

type fakeEnquiryStore struct {
	mu        sync.Mutex
	enquiries []models.Enquiry
	failNext  bool
}

func (s *fakeEnquiryStore) Create(_ context.Context, e *models.Enquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.EnquiryID == "" {
		e.EnquiryID = "enquiry-1"
	}
	if e.Status == "" {
		e.Status = "new"
	}
	s.enquiries = append(s.enquiries, *e)
	return nil
}

func (s *fakeEnquiryStore) List(_ context.Context) ([]models.Enquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Enquiry{}, s.enquiries...), nil
}

func (s *fakeEnquiryStore) UpdateStatus(_ context.Context, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.enquiries {
		if s.enquiries[i].EnquiryID == id {
			s.enquiries[i].Status = status
			return nil
		}
	}
	return storage.ErrNotFound
}

type fakeSettingsStore struct {
	mu    sync.Mutex
	email string
}

func (s *fakeSettingsStore) AdminEmail(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.email == "" {
		return "", storage.ErrNotFound
	}
	return s.email, nil
}

func (s *fakeSettingsStore) SetAdminEmail(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.email = email
	return nil
}

type fakeContentStore struct {
	mu       sync.Mutex
	sections map[string]map[string]any
}

func newFakeContentStore() *fakeContentStore {
	return &fakeContentStore{sections: map[string]map[string]any{}}
}

func (s *fakeContentStore) Get(_ context.Context, section string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.sections[section]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return content, nil
}

func (s *fakeContentStore) Upsert(_ context.Context, section string, content map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sections[section] = content
	return nil
}

type sentEmail struct {
	from, to, subject, html string
}

type fakeSender struct {
	err  error
	sent chan sentEmail
}

func newFakeSender(err error) *fakeSender {
	return &fakeSender{err: err, sent: make(chan sentEmail, 1)}
}

func (s *fakeSender) Send(_ context.Context, from, to, subject, html string) (string, error) {
	s.sent <- sentEmail{from: from, to: to, subject: subject, html: html}
	if s.err != nil {
		return "", s.err
	}
	return "message-id-1", nil
}
