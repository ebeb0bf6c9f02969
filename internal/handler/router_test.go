package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/zmtwc/planner/internal/client"
	"github.com/zmtwc/planner/internal/config"
	"github.com/zmtwc/planner/internal/model"
	"github.com/zmtwc/planner/internal/service"
	"golang.org/x/time/rate"
)

// fakeStore is an in-memory stand-in for db.Postgres implementing every
// repository interface the services consume.
type fakeStore struct {
	mu sync.Mutex

	nextUserID        int64
	nextEventID       int64
	nextRequirementID int64

	creds        map[string]*model.Credential // by username
	users        map[int64]*model.User
	events       map[int64]*model.Event
	requirements map[int64]*model.Requirement
	participants map[[2]int64]bool // event, user
	fulfillments map[[2]int64]bool // requirement, user
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		creds:        make(map[string]*model.Credential),
		users:        make(map[int64]*model.User),
		events:       make(map[int64]*model.Event),
		requirements: make(map[int64]*model.Requirement),
		participants: make(map[[2]int64]bool),
		fulfillments: make(map[[2]int64]bool),
	}
}

func (f *fakeStore) CreateCredential(ctx context.Context, username, passwordHash, salt string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.creds[username]; ok {
		return 0, &pgconn.PgError{Code: "23505"}
	}
	f.nextUserID++
	f.creds[username] = &model.Credential{ID: f.nextUserID, Username: username, PasswordHash: passwordHash, Salt: salt}
	f.users[f.nextUserID] = &model.User{ID: f.nextUserID, Username: username}
	return f.nextUserID, nil
}

func (f *fakeStore) GetCredentialByUsername(ctx context.Context, username string) (*model.Credential, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cred, ok := f.creds[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return cred, nil
}

func (f *fakeStore) GetUserByID(ctx context.Context, userID int64) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (f *fakeStore) UpdateUsername(ctx context.Context, userID int64, username string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user, ok := f.users[userID]; ok {
		user.Username = username
	}
	return nil
}

func (f *fakeStore) DeleteUser(ctx context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, userID)
	return nil
}

func (f *fakeStore) ListUsedRequirements(ctx context.Context, creatorID int64) ([]model.UsedRequirement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[string]int64)
	for _, req := range f.requirements {
		if ev, ok := f.events[req.Event]; ok && ev.Creator.ID == creatorID {
			counts[req.Name]++
		}
	}
	list := make([]model.UsedRequirement, 0, len(counts))
	for name, score := range counts {
		list = append(list, model.UsedRequirement{Name: name, Score: score})
	}
	return list, nil
}

func (f *fakeStore) CreateEvent(ctx context.Context, name string, description *string, creator int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextEventID++
	f.events[f.nextEventID] = &model.Event{
		ID:          f.nextEventID,
		Name:        name,
		Description: description,
		Creator:     *f.users[creator],
	}
	return f.nextEventID, nil
}

func (f *fakeStore) GetEvent(ctx context.Context, eventID int64) (*model.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ev, ok := f.events[eventID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return ev, nil
}

func (f *fakeStore) ListEvents(ctx context.Context) ([]model.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := make([]model.Event, 0, len(f.events))
	for _, ev := range f.events {
		list = append(list, *ev)
	}
	return list, nil
}

func (f *fakeStore) UpdateEvent(ctx context.Context, eventID int64, upd model.UpdateEventRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ev, ok := f.events[eventID]
	if !ok {
		return pgx.ErrNoRows
	}
	if upd.Name != nil {
		ev.Name = *upd.Name
	}
	if upd.Description != nil {
		ev.Description = upd.Description
	}
	return nil
}

func (f *fakeStore) DeleteEvent(ctx context.Context, eventID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.events, eventID)
	return nil
}

func (f *fakeStore) GetEventCreator(ctx context.Context, eventID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ev, ok := f.events[eventID]
	if !ok {
		return 0, pgx.ErrNoRows
	}
	return ev.Creator.ID, nil
}

func (f *fakeStore) ListEventParticipants(ctx context.Context, eventID int64) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []model.User{}
	for key := range f.participants {
		if key[0] == eventID {
			list = append(list, *f.users[key[1]])
		}
	}
	return list, nil
}

func (f *fakeStore) ListEventRequirements(ctx context.Context, eventID int64) ([]model.Requirement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []model.Requirement{}
	for _, req := range f.requirements {
		if req.Event == eventID {
			list = append(list, *req)
		}
	}
	return list, nil
}

func (f *fakeStore) ListEventFulfillments(ctx context.Context, eventID int64) ([]model.EventFulfiller, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []model.EventFulfiller{}
	for key := range f.fulfillments {
		if req, ok := f.requirements[key[0]]; ok && req.Event == eventID {
			list = append(list, model.EventFulfiller{Requirement: key[0], User: *f.users[key[1]]})
		}
	}
	return list, nil
}

func (f *fakeStore) CreateRequirement(ctx context.Context, name string, description *string, event, size int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextRequirementID++
	f.requirements[f.nextRequirementID] = &model.Requirement{
		ID: f.nextRequirementID, Name: name, Description: description, Size: size, Event: event,
	}
	return f.nextRequirementID, nil
}

func (f *fakeStore) GetRequirementSize(ctx context.Context, requirementID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requirements[requirementID]
	if !ok {
		return 0, pgx.ErrNoRows
	}
	return req.Size, nil
}

func (f *fakeStore) GetRequirementEventCreator(ctx context.Context, requirementID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requirements[requirementID]
	if !ok {
		return 0, pgx.ErrNoRows
	}
	ev, ok := f.events[req.Event]
	if !ok {
		return 0, pgx.ErrNoRows
	}
	return ev.Creator.ID, nil
}

func (f *fakeStore) UpdateRequirement(ctx context.Context, requirementID int64, upd model.UpdateRequirementRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requirements[requirementID]
	if !ok {
		return pgx.ErrNoRows
	}
	if upd.Name != nil {
		req.Name = *upd.Name
	}
	if upd.Description != nil {
		req.Description = upd.Description
	}
	if upd.Size != nil {
		req.Size = *upd.Size
	}
	return nil
}

func (f *fakeStore) DeleteRequirement(ctx context.Context, requirementID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.requirements, requirementID)
	return nil
}

func (f *fakeStore) TrimFulfillments(ctx context.Context, requirementID, keep int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for key := range f.fulfillments {
		if key[0] != requirementID {
			continue
		}
		count++
		if count > keep {
			delete(f.fulfillments, key)
		}
	}
	return nil
}

func (f *fakeStore) AddParticipant(ctx context.Context, eventID, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.events[eventID]; !ok {
		return &pgconn.PgError{Code: "23503"}
	}
	key := [2]int64{eventID, userID}
	if f.participants[key] {
		return &pgconn.PgError{Code: "23505"}
	}
	f.participants[key] = true
	return nil
}

func (f *fakeStore) RemoveParticipant(ctx context.Context, userID, eventID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.participants, [2]int64{eventID, userID})
	return nil
}

func (f *fakeStore) AddFulfillment(ctx context.Context, requirementID, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := [2]int64{requirementID, userID}
	if f.fulfillments[key] {
		return &pgconn.PgError{Code: "23505"}
	}
	f.fulfillments[key] = true
	return nil
}

func (f *fakeStore) RemoveFulfillment(ctx context.Context, userID, requirementID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.fulfillments, [2]int64{requirementID, userID})
	return nil
}

func (f *fakeStore) CountFulfillments(ctx context.Context, requirementID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for key := range f.fulfillments {
		if key[0] == requirementID {
			count++
		}
	}
	return count, nil
}

type testEnv struct {
	router *gin.Engine
	store  *fakeStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newFakeStore()
	authService, err := service.NewAuthService(store, config.AuthConfig{
		JWTSecret: "test-jwt-secret",
		Issuer:    "zmtwc",
		TokenTTL:  "24h",
	})
	if err != nil {
		t.Fatalf("NewAuthService error: %v", err)
	}

	authorizer := service.NewAuthorizer(store)
	limiter := NewRateLimiter(rate.Limit(1000), 1000)
	t.Cleanup(limiter.Stop)

	router := NewRouter(Services{
		Auth:         authService,
		Users:        service.NewUserService(store),
		Events:       service.NewEventService(store, authorizer),
		Requirements: service.NewRequirementService(store, authorizer),
		Participants: service.NewParticipantService(store),
		Fulfillments: service.NewFulfillmentService(store),
		Captcha:      client.NewCaptchaClient(config.CaptchaConfig{VerifyURL: "http://127.0.0.1:0"}),
		Metrics:      NewMetrics(),
		LoginLimiter: limiter,
	}, nil)

	return &testEnv{router: router, store: store}
}

// do performs a request against the test router. token may be empty for
// anonymous requests.
func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(jwtHeaderName, token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// registerUser creates a user through the API and returns its id and a
// valid token.
func (e *testEnv) registerUser(t *testing.T, username, password string) (int64, string) {
	t.Helper()

	w := e.do(t, "POST", "/register", map[string]string{"username": username, "password": password}, "")
	if w.Code != 201 {
		t.Fatalf("register %q: got %d want 201: %s", username, w.Code, w.Body.String())
	}
	var user model.User
	if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode register response: %v", err)
	}

	w = e.do(t, "POST", "/authenticate", map[string]string{"username": username, "password": password}, "")
	if w.Code != 200 {
		t.Fatalf("authenticate %q: got %d want 200: %s", username, w.Code, w.Body.String())
	}
	var resp model.AuthenticateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode authenticate response: %v", err)
	}

	return user.ID, resp.Token
}
