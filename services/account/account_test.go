package account

import (
	"context"
	"errors"
	"testing"

	"expertly/models"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
	updates  map[string]bson.M
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		profiles: map[string]*models.Profile{},
		updates:  map[string]bson.M{},
	}
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *models.Profile) error {
	f.profiles[profile.ID] = profile
	return nil
}
func (f *fakeProfileRepo) Update(ctx context.Context, profile *models.Profile) error {
	f.profiles[profile.ID] = profile
	return nil
}
func (f *fakeProfileRepo) UpdateSetDocument(ctx context.Context, id string, updateDoc bson.M) error {
	f.updates[id] = updateDoc
	if p, ok := f.profiles[id]; ok {
		if v, has := updateDoc["token_hash"]; has {
			p.TokenHash, _ = v.(string)
		}
		if v, has := updateDoc["fcm_token"]; has {
			p.FCMToken, _ = v.(string)
		}
	}
	return nil
}
func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, errors.New("profile not found")
	}
	return p, nil
}
func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	for _, p := range f.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakeProfileRepo) GetExpertByID(ctx context.Context, id string) (*models.Profile, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeProfileRepo) Delete(ctx context.Context, id string) error {
	delete(f.profiles, id)
	return nil
}
func (f *fakeProfileRepo) ListExperts(ctx context.Context) ([]models.Profile, error) {
	return nil, nil
}
func (f *fakeProfileRepo) SearchExperts(ctx context.Context, query string, limit int64) ([]models.Profile, error) {
	return nil, nil
}
func (f *fakeProfileRepo) GetManyByIDs(ctx context.Context, ids []string) ([]models.Profile, error) {
	return nil, nil
}

func TestRegisterCreatesNonExpertProfile(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := &DefaultAccountService{Repo: repo}

	resp, err := svc.Register(context.Background(), models.Profile{
		Email:    "ada@example.com",
		Password: "hunter2!",
		IsExpert: true, // must be ignored
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if resp.ID == "" || resp.Token == "" {
		t.Fatal("Register() should return an ID and a token")
	}

	stored := repo.profiles[resp.ID]
	if stored == nil {
		t.Fatal("profile was not persisted")
	}
	if stored.IsExpert {
		t.Error("registration must not grant expert status")
	}
	if stored.Password != "" {
		t.Error("plain-text password must not be stored")
	}
	if stored.PasswordHash == "" {
		t.Error("password hash missing")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2!")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
	if stored.TokenHash == "" {
		t.Error("token hash missing")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["p1"] = &models.Profile{ID: "p1", Email: "taken@example.com"}
	svc := &DefaultAccountService{Repo: repo}

	if _, err := svc.Register(context.Background(), models.Profile{Email: "taken@example.com", Password: "x"}); err == nil {
		t.Fatal("Register() with a taken email should fail")
	}
}

func TestAuthenticateRotatesTokenHash(t *testing.T) {
	repo := newFakeProfileRepo()
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.DefaultCost)
	repo.profiles["p1"] = &models.Profile{
		ID: "p1", Email: "ada@example.com", PasswordHash: string(hash), TokenHash: "old-hash",
	}
	svc := &DefaultAccountService{Repo: repo}

	resp, err := svc.Authenticate(context.Background(), "ada@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if resp.ID != "p1" {
		t.Errorf("id = %q, want p1", resp.ID)
	}
	if repo.profiles["p1"].TokenHash == "old-hash" {
		t.Error("Authenticate() should rotate the stored token hash")
	}

	if _, err := svc.Authenticate(context.Background(), "ada@example.com", "wrong"); err == nil {
		t.Error("Authenticate() with a wrong password should fail")
	}
	if _, err := svc.Authenticate(context.Background(), "nobody@example.com", "x"); err == nil {
		t.Error("Authenticate() with an unknown email should fail")
	}
}

func TestRevokeTokenClearsHash(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["p1"] = &models.Profile{ID: "p1", TokenHash: "some-hash"}
	svc := &DefaultAccountService{Repo: repo}

	if err := svc.RevokeToken(context.Background(), "p1"); err != nil {
		t.Fatalf("RevokeToken() error = %v", err)
	}
	if repo.profiles["p1"].TokenHash != "" {
		t.Error("RevokeToken() should clear the stored token hash")
	}
}
