package access

import (
	"context"
	"errors"
	"testing"
	"time"

	"expertly/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeWaitlistRepo struct {
	entries map[string]*models.WaitlistEntry
}

func newFakeWaitlistRepo() *fakeWaitlistRepo {
	return &fakeWaitlistRepo{entries: map[string]*models.WaitlistEntry{}}
}

func (f *fakeWaitlistRepo) Create(ctx context.Context, entry *models.WaitlistEntry) error {
	f.entries[entry.Email] = entry
	return nil
}

func (f *fakeWaitlistRepo) GetByEmail(ctx context.Context, email string) (*models.WaitlistEntry, error) {
	return f.entries[email], nil
}

func (f *fakeWaitlistRepo) List(ctx context.Context) ([]models.WaitlistEntry, error) {
	var out []models.WaitlistEntry
	for _, e := range f.entries {
		out = append(out, *e)
	}
	return out, nil
}

type fakeInvitationRepo struct {
	pending  *models.Invitation
	accepted []string
	expired  []string
}

func (f *fakeInvitationRepo) Create(ctx context.Context, invitation *models.Invitation) error {
	f.pending = invitation
	return nil
}

func (f *fakeInvitationRepo) GetPendingByEmail(ctx context.Context, email string) (*models.Invitation, error) {
	if f.pending == nil || f.pending.Email != email {
		return nil, nil
	}
	return f.pending, nil
}

func (f *fakeInvitationRepo) MarkAccepted(ctx context.Context, id string, acceptedAt time.Time) error {
	f.accepted = append(f.accepted, id)
	return nil
}

func (f *fakeInvitationRepo) MarkExpired(ctx context.Context, id string) error {
	f.expired = append(f.expired, id)
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
	updates  []bson.M
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*models.Profile{}}
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
	f.updates = append(f.updates, updateDoc)
	if p, ok := f.profiles[id]; ok {
		if v, has := updateDoc["is_expert"]; has {
			if b, ok := v.(bool); ok {
				p.IsExpert = b
			}
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
	p, ok := f.profiles[id]
	if !ok || !p.IsExpert {
		return nil, errors.New("expert not found")
	}
	return p, nil
}

func (f *fakeProfileRepo) Delete(ctx context.Context, id string) error {
	delete(f.profiles, id)
	return nil
}

func (f *fakeProfileRepo) ListExperts(ctx context.Context) ([]models.Profile, error) {
	var out []models.Profile
	for _, p := range f.profiles {
		if p.IsExpert {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) SearchExperts(ctx context.Context, query string, limit int64) ([]models.Profile, error) {
	return nil, nil
}

func (f *fakeProfileRepo) GetManyByIDs(ctx context.Context, ids []string) ([]models.Profile, error) {
	var out []models.Profile
	for _, id := range ids {
		if p, ok := f.profiles[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

var fixedNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestService() (*DefaultAccessService, *fakeWaitlistRepo, *fakeInvitationRepo, *fakeProfileRepo) {
	waitlist := newFakeWaitlistRepo()
	invitations := &fakeInvitationRepo{}
	profiles := newFakeProfileRepo()
	svc := &DefaultAccessService{
		Waitlist:    waitlist,
		Invitations: invitations,
		Profiles:    profiles,
		Now:         func() time.Time { return fixedNow },
	}
	return svc, waitlist, invitations, profiles
}

func TestJoinWaitlistIsIdempotentPerEmail(t *testing.T) {
	svc, _, _, _ := newTestService()

	first, err := svc.JoinWaitlist(context.Background(), &models.WaitlistEntry{Email: "a@example.com"})
	if err != nil {
		t.Fatalf("JoinWaitlist() error = %v", err)
	}
	if first.Status != models.WaitlistPending {
		t.Errorf("status = %q, want %q", first.Status, models.WaitlistPending)
	}

	second, err := svc.JoinWaitlist(context.Background(), &models.WaitlistEntry{Email: "a@example.com"})
	if err != nil {
		t.Fatalf("second JoinWaitlist() error = %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second join created a new entry: %q != %q", second.ID, first.ID)
	}
}

func TestInviteDefaultsToExpertRole(t *testing.T) {
	svc, _, invitations, _ := newTestService()

	inv, err := svc.Invite(context.Background(), "new@example.com", "", "admin-1")
	if err != nil {
		t.Fatalf("Invite() error = %v", err)
	}
	if inv.Role != "expert" {
		t.Errorf("role = %q, want %q", inv.Role, "expert")
	}
	if inv.ExpiresAt == nil {
		t.Fatal("invitation should carry an expiry")
	}
	wantExpiry := fixedNow.Add(DefaultInvitationTTL)
	if !inv.ExpiresAt.Equal(wantExpiry) {
		t.Errorf("expiry = %v, want %v", inv.ExpiresAt, wantExpiry)
	}
	if invitations.pending == nil {
		t.Error("invitation was not persisted")
	}
}

func TestAcceptInvitationGrantsExpertRole(t *testing.T) {
	svc, _, invitations, profiles := newTestService()
	profiles.profiles["p1"] = &models.Profile{ID: "p1", Email: "new@example.com"}

	expires := fixedNow.Add(time.Hour)
	invitations.pending = &models.Invitation{
		ID: "inv-1", Email: "new@example.com", Role: "expert",
		Status: models.InvitationPending, ExpiresAt: &expires,
	}

	inv, err := svc.AcceptInvitation(context.Background(), "p1")
	if err != nil {
		t.Fatalf("AcceptInvitation() error = %v", err)
	}
	if inv.Status != models.InvitationAccepted {
		t.Errorf("status = %q, want %q", inv.Status, models.InvitationAccepted)
	}
	if !profiles.profiles["p1"].IsExpert {
		t.Error("accepting an expert invitation should grant expert status")
	}
	if len(invitations.accepted) != 1 || invitations.accepted[0] != "inv-1" {
		t.Errorf("accepted invitations = %v, want [inv-1]", invitations.accepted)
	}
}

func TestAcceptInvitationExpiredAtAcceptTime(t *testing.T) {
	svc, _, invitations, profiles := newTestService()
	profiles.profiles["p1"] = &models.Profile{ID: "p1", Email: "late@example.com"}

	expires := fixedNow.Add(-time.Minute)
	invitations.pending = &models.Invitation{
		ID: "inv-2", Email: "late@example.com", Role: "expert",
		Status: models.InvitationPending, ExpiresAt: &expires,
	}

	if _, err := svc.AcceptInvitation(context.Background(), "p1"); err == nil {
		t.Fatal("AcceptInvitation() should reject an expired invitation")
	}
	if len(invitations.expired) != 1 || invitations.expired[0] != "inv-2" {
		t.Errorf("expired invitations = %v, want [inv-2]", invitations.expired)
	}
	if profiles.profiles["p1"].IsExpert {
		t.Error("expired invitation must not grant expert status")
	}
}

func TestAcceptInvitationWithoutPendingInvitation(t *testing.T) {
	svc, _, _, profiles := newTestService()
	profiles.profiles["p1"] = &models.Profile{ID: "p1", Email: "nobody@example.com"}

	if _, err := svc.AcceptInvitation(context.Background(), "p1"); err == nil {
		t.Fatal("AcceptInvitation() should fail without a pending invitation")
	}
}
