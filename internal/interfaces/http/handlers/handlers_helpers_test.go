package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"invest-portal.backend/internal/domain/entities"
	domainerrors "invest-portal.backend/internal/domain/errors"
	"invest-portal.backend/pkg/logger"
	"invest-portal.backend/pkg/redis"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("development")
}

// ---- map-backed repository stubs ----

type userRepoStub struct {
	items map[uuid.UUID]*entities.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{items: map[uuid.UUID]*entities.User{}}
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	for _, existing := range s.items {
		if user.Email.Valid && existing.Email.Valid && existing.Email.String == user.Email.String {
			return domainerrors.ErrDuplicateKey
		}
	}
	clone := *user
	s.items[user.ID] = &clone
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	clone := *item
	return &clone, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, item := range s.items {
		if item.Email.Valid && item.Email.String == email {
			clone := *item
			return &clone, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByPhone(_ context.Context, phone string) (*entities.User, error) {
	for _, item := range s.items {
		if item.Phone.Valid && item.Phone.String == phone {
			clone := *item
			return &clone, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) Update(_ context.Context, user *entities.User) error {
	if _, ok := s.items[user.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	clone := *user
	s.items[user.ID] = &clone
	return nil
}

func (s *userRepoStub) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	item, ok := s.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	item.PasswordHash = passwordHash
	return nil
}

func (s *userRepoStub) UpdateSessionToken(_ context.Context, id uuid.UUID, token string) error {
	item, ok := s.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	if token == "" {
		item.ActiveSessionToken.Valid = false
		item.ActiveSessionToken.String = ""
	} else {
		item.ActiveSessionToken.Valid = true
		item.ActiveSessionToken.String = token
	}
	return nil
}

func (s *userRepoStub) List(_ context.Context, _ string) ([]*entities.User, error) {
	out := make([]*entities.User, 0, len(s.items))
	for _, item := range s.items {
		clone := *item
		out = append(out, &clone)
	}
	return out, nil
}

type otpRepoStub struct {
	items []*entities.OTP
}

func newOTPRepoStub() *otpRepoStub { return &otpRepoStub{} }

func (s *otpRepoStub) Create(_ context.Context, otp *entities.OTP) error {
	clone := *otp
	s.items = append(s.items, &clone)
	return nil
}

func (s *otpRepoStub) GetLatest(_ context.Context, userID uuid.UUID, channel entities.OTPChannel, code string) (*entities.OTP, error) {
	var latest *entities.OTP
	for _, item := range s.items {
		if item.UserID == userID && item.Channel == channel && item.Code == code {
			if latest == nil || item.CreatedAt.After(latest.CreatedAt) {
				latest = item
			}
		}
	}
	if latest == nil {
		return nil, domainerrors.ErrNotFound
	}
	clone := *latest
	return &clone, nil
}

func (s *otpRepoStub) InvalidateUnused(_ context.Context, userID uuid.UUID, channel entities.OTPChannel) error {
	for _, item := range s.items {
		if item.UserID == userID && item.Channel == channel && !item.Used {
			item.Used = true
		}
	}
	return nil
}

func (s *otpRepoStub) MarkUsed(_ context.Context, id uuid.UUID) error {
	for _, item := range s.items {
		if item.ID == id {
			if item.Used {
				return domainerrors.ErrCodeAlreadyUsed
			}
			item.Used = true
			return nil
		}
	}
	return domainerrors.ErrNotFound
}

type investorRepoStub struct {
	items map[uuid.UUID]*entities.InvestorProfile
}

func newInvestorRepoStub() *investorRepoStub {
	return &investorRepoStub{items: map[uuid.UUID]*entities.InvestorProfile{}}
}

func (s *investorRepoStub) Create(_ context.Context, profile *entities.InvestorProfile) error {
	for _, existing := range s.items {
		if profile.UserID.Valid && existing.UserID.Valid && existing.UserID.String == profile.UserID.String {
			return domainerrors.ErrDuplicateKey
		}
	}
	clone := *profile
	s.items[profile.ID] = &clone
	return nil
}

func (s *investorRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.InvestorProfile, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	clone := *item
	return &clone, nil
}

func (s *investorRepoStub) GetByUserID(_ context.Context, userID uuid.UUID) (*entities.InvestorProfile, error) {
	for _, item := range s.items {
		if item.UserID.Valid && item.UserID.String == userID.String() {
			clone := *item
			return &clone, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *investorRepoStub) FindByNormalizedName(_ context.Context, name string) ([]*entities.InvestorProfile, error) {
	out := make([]*entities.InvestorProfile, 0)
	for _, item := range s.items {
		if !item.IsActive {
			continue
		}
		full := entities.NormalizeInvestorName(item.FirstName + " " + item.LastName)
		if full == name {
			clone := *item
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *investorRepoStub) Update(_ context.Context, profile *entities.InvestorProfile) error {
	if _, ok := s.items[profile.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	clone := *profile
	s.items[profile.ID] = &clone
	return nil
}

func (s *investorRepoStub) List(_ context.Context, search string) ([]*entities.InvestorProfile, error) {
	q := strings.ToLower(strings.TrimSpace(search))
	out := make([]*entities.InvestorProfile, 0)
	for _, item := range s.items {
		if q == "" || strings.Contains(strings.ToLower(item.FirstName+" "+item.LastName), q) {
			clone := *item
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *investorRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

type portfolioRepoStub struct {
	items map[uuid.UUID]*entities.Portfolio
}

func newPortfolioRepoStub() *portfolioRepoStub {
	return &portfolioRepoStub{items: map[uuid.UUID]*entities.Portfolio{}}
}

func (s *portfolioRepoStub) Create(_ context.Context, p *entities.Portfolio) error {
	clone := *p
	s.items[p.ID] = &clone
	return nil
}

func (s *portfolioRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Portfolio, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	clone := *item
	return &clone, nil
}

func (s *portfolioRepoStub) ListByInvestor(_ context.Context, investorID uuid.UUID) ([]*entities.Portfolio, error) {
	out := make([]*entities.Portfolio, 0)
	for _, item := range s.items {
		if item.InvestorID == investorID {
			clone := *item
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *portfolioRepoStub) Update(_ context.Context, p *entities.Portfolio) error {
	if _, ok := s.items[p.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	clone := *p
	s.items[p.ID] = &clone
	return nil
}

func (s *portfolioRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

type statementRepoStub struct {
	items map[uuid.UUID]*entities.Statement
}

func newStatementRepoStub() *statementRepoStub {
	return &statementRepoStub{items: map[uuid.UUID]*entities.Statement{}}
}

func (s *statementRepoStub) Create(_ context.Context, st *entities.Statement) error {
	clone := *st
	s.items[st.ID] = &clone
	return nil
}

func (s *statementRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Statement, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	clone := *item
	return &clone, nil
}

func (s *statementRepoStub) ListByInvestor(_ context.Context, investorID uuid.UUID) ([]*entities.Statement, error) {
	out := make([]*entities.Statement, 0)
	for _, item := range s.items {
		if item.InvestorID == investorID {
			clone := *item
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	return out, nil
}

func (s *statementRepoStub) List(_ context.Context) ([]*entities.Statement, error) {
	out := make([]*entities.Statement, 0, len(s.items))
	for _, item := range s.items {
		clone := *item
		out = append(out, &clone)
	}
	return out, nil
}

func (s *statementRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

type announcementRepoStub struct {
	items map[uuid.UUID]*entities.Announcement
}

func newAnnouncementRepoStub() *announcementRepoStub {
	return &announcementRepoStub{items: map[uuid.UUID]*entities.Announcement{}}
}

func (s *announcementRepoStub) Create(_ context.Context, a *entities.Announcement) error {
	clone := *a
	s.items[a.ID] = &clone
	return nil
}

func (s *announcementRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Announcement, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	clone := *item
	return &clone, nil
}

func (s *announcementRepoStub) ListPublished(_ context.Context) ([]*entities.Announcement, error) {
	out := make([]*entities.Announcement, 0)
	for _, item := range s.items {
		if item.IsPublished {
			clone := *item
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *announcementRepoStub) ListAll(_ context.Context) ([]*entities.Announcement, error) {
	out := make([]*entities.Announcement, 0, len(s.items))
	for _, item := range s.items {
		clone := *item
		out = append(out, &clone)
	}
	return out, nil
}

func (s *announcementRepoStub) Update(_ context.Context, a *entities.Announcement) error {
	if _, ok := s.items[a.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	clone := *a
	s.items[a.ID] = &clone
	return nil
}

func (s *announcementRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

type supportRepoStub struct {
	items map[uuid.UUID]*entities.SupportTicket
}

func newSupportRepoStub() *supportRepoStub {
	return &supportRepoStub{items: map[uuid.UUID]*entities.SupportTicket{}}
}

func (s *supportRepoStub) Create(_ context.Context, t *entities.SupportTicket) error {
	clone := *t
	s.items[t.ID] = &clone
	return nil
}

func (s *supportRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.SupportTicket, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	clone := *item
	return &clone, nil
}

func (s *supportRepoStub) ListByUser(_ context.Context, userID uuid.UUID) ([]*entities.SupportTicket, error) {
	out := make([]*entities.SupportTicket, 0)
	for _, item := range s.items {
		if item.UserID == userID {
			clone := *item
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *supportRepoStub) List(_ context.Context, status string) ([]*entities.SupportTicket, error) {
	out := make([]*entities.SupportTicket, 0)
	for _, item := range s.items {
		if status == "" || string(item.Status) == status {
			clone := *item
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *supportRepoStub) Update(_ context.Context, t *entities.SupportTicket) error {
	if _, ok := s.items[t.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	clone := *t
	s.items[t.ID] = &clone
	return nil
}

type adminRepoStub struct {
	items map[uuid.UUID]*entities.AdminUser
}

func newAdminRepoStub() *adminRepoStub {
	return &adminRepoStub{items: map[uuid.UUID]*entities.AdminUser{}}
}

func (s *adminRepoStub) Upsert(_ context.Context, admin *entities.AdminUser) error {
	for _, existing := range s.items {
		if existing.UserID == admin.UserID {
			existing.Role = admin.Role
			existing.Permissions = admin.Permissions
			existing.IsActive = admin.IsActive
			return nil
		}
	}
	clone := *admin
	s.items[admin.ID] = &clone
	return nil
}

func (s *adminRepoStub) GetByUserID(_ context.Context, userID uuid.UUID) (*entities.AdminUser, error) {
	for _, item := range s.items {
		if item.UserID == userID {
			clone := *item
			return &clone, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *adminRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.AdminUser, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	clone := *item
	return &clone, nil
}

func (s *adminRepoStub) List(_ context.Context) ([]*entities.AdminUser, error) {
	out := make([]*entities.AdminUser, 0, len(s.items))
	for _, item := range s.items {
		clone := *item
		out = append(out, &clone)
	}
	return out, nil
}

func (s *adminRepoStub) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	item, ok := s.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	item.IsActive = active
	return nil
}

type sessionCacheStub struct {
	sessions map[string]*redis.SessionData
}

func newSessionCacheStub() *sessionCacheStub {
	return &sessionCacheStub{sessions: map[string]*redis.SessionData{}}
}

func (s *sessionCacheStub) SaveSession(_ context.Context, userID string, data *redis.SessionData, _ time.Duration) error {
	s.sessions[userID] = data
	return nil
}

func (s *sessionCacheStub) GetSession(_ context.Context, userID string) (*redis.SessionData, error) {
	data, ok := s.sessions[userID]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return data, nil
}

func (s *sessionCacheStub) DeleteSession(_ context.Context, userID string) error {
	delete(s.sessions, userID)
	return nil
}

// ---- seed helpers ----

func seedUser(t *testing.T, users *userRepoStub, email string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	now := time.Now()
	user := &entities.User{
		ID:        id,
		FirstName: "Test",
		LastName:  "User",
		CreatedAt: now,
		UpdatedAt: now,
	}
	user.Email.SetValid(email)
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return id
}

func seedInvestorProfile(t *testing.T, investors *investorRepoStub, first, last string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	now := time.Now()
	profile := &entities.InvestorProfile{
		ID:        id,
		FirstName: first,
		LastName:  last,
		KYCStatus: entities.KYCVerified,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := investors.Create(context.Background(), profile); err != nil {
		t.Fatalf("seed investor: %v", err)
	}
	return id
}

// ---- request helpers ----

func performJSON(t *testing.T, r *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}
