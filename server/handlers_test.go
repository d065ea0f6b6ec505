package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"coindash/config"
	"coindash/core/auth"
	"coindash/model"

	"github.com/stretchr/testify/require"
)

// In-memory repository fakes. The preference fake mirrors the transactional
// behavior of the real repository: the insert and the onboarding flip happen
// together or not at all.

type fakeUserRepo struct {
	users  map[int64]*model.User
	nextID int64
	fail   bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*model.User)}
}

func (r *fakeUserRepo) CreateUser(user *model.User) (int64, error) {
	if r.fail {
		return 0, errors.New("storage failure")
	}
	r.nextID++
	stored := *user
	stored.ID = r.nextID
	r.users[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeUserRepo) GetUserByID(id int64) (*model.User, error) {
	if r.fail {
		return nil, errors.New("storage failure")
	}
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*model.User, error) {
	if r.fail {
		return nil, errors.New("storage failure")
	}
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

type fakePrefRepo struct {
	prefs  map[int64]*model.Preferences
	users  *fakeUserRepo
	nextID int64
	fail   bool
}

func newFakePrefRepo(users *fakeUserRepo) *fakePrefRepo {
	return &fakePrefRepo{prefs: make(map[int64]*model.Preferences), users: users}
}

func (r *fakePrefRepo) CreateWithOnboarding(prefs *model.Preferences) error {
	if r.fail {
		return errors.New("storage failure")
	}
	r.nextID++
	stored := *prefs
	stored.ID = r.nextID
	r.prefs[stored.UserID] = &stored
	if user, ok := r.users.users[stored.UserID]; ok {
		user.IsOnboarded = true
	}
	return nil
}

func (r *fakePrefRepo) GetByUserID(userID int64) (*model.Preferences, error) {
	if r.fail {
		return nil, errors.New("storage failure")
	}
	prefs, ok := r.prefs[userID]
	if !ok {
		return nil, nil
	}
	copied := *prefs
	return &copied, nil
}

type fakeVoteRepo struct {
	votes []model.Vote
	fail  bool
}

func (r *fakeVoteRepo) CreateVote(vote *model.Vote) error {
	if r.fail {
		return errors.New("storage failure")
	}
	stored := *vote
	stored.ID = int64(len(r.votes) + 1)
	r.votes = append(r.votes, stored)
	return nil
}

func (r *fakeVoteRepo) GetVotesByUserID(userID int64) ([]model.Vote, error) {
	if r.fail {
		return nil, errors.New("storage failure")
	}
	var out []model.Vote
	for _, v := range r.votes {
		if v.UserID == userID {
			out = append(out, v)
		}
	}
	return out, nil
}

// newTestHandler builds an APIHandler over fresh fakes. Feed clients are nil;
// feed tests wire their own.
func newTestHandler(t *testing.T) (*APIHandler, *fakeUserRepo, *fakePrefRepo, *fakeVoteRepo) {
	t.Helper()
	require.NoError(t, auth.SetSecret("server-test-secret"))

	users := newFakeUserRepo()
	prefs := newFakePrefRepo(users)
	votes := &fakeVoteRepo{}
	h := NewAPIHandler(users, prefs, votes, nil, nil, nil, nil, &config.Config{})
	return h, users, prefs, votes
}

// seedUser registers a user directly in the fake store with a real bcrypt hash.
func seedUser(t *testing.T, users *fakeUserRepo, name, email, password string) int64 {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	id, err := users.CreateUser(&model.User{Name: name, Email: email, PasswordHash: hash})
	require.NoError(t, err)
	return id
}

// tokenFor issues a bearer token for the given identity.
func tokenFor(t *testing.T, userID int64, email string) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, email)
	require.NoError(t, err)
	return token
}

// doJSON runs a handler with a JSON body and returns the recorder.
func doJSON(handler http.HandlerFunc, method, target, bearer string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

// decodeBody unmarshals a recorder body into dst.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}
