package expert

import (
	"context"
	"errors"
	"testing"

	"expertly/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeProfileRepo struct {
	profiles  map[string]*models.Profile
	listCalls int
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
	return nil, nil
}
func (f *fakeProfileRepo) GetExpertByID(ctx context.Context, id string) (*models.Profile, error) {
	p, ok := f.profiles[id]
	if !ok || !p.IsExpert {
		return nil, errors.New("expert not found")
	}
	return p, nil
}
func (f *fakeProfileRepo) Delete(ctx context.Context, id string) error { return nil }
func (f *fakeProfileRepo) ListExperts(ctx context.Context) ([]models.Profile, error) {
	f.listCalls++
	var out []models.Profile
	for _, p := range f.profiles {
		if p.IsExpert {
			out = append(out, *p)
		}
	}
	return out, nil
}
func (f *fakeProfileRepo) SearchExperts(ctx context.Context, query string, limit int64) ([]models.Profile, error) {
	var out []models.Profile
	for _, p := range f.profiles {
		if p.IsExpert && (p.FirstName == query || p.LastName == query) {
			out = append(out, *p)
		}
	}
	return out, nil
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

type fakeServiceRepo struct {
	services map[string]*models.ExpertService
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[string]*models.ExpertService{}}
}

func (f *fakeServiceRepo) Create(ctx context.Context, service *models.ExpertService) error {
	f.services[service.ID] = service
	return nil
}
func (f *fakeServiceRepo) Update(ctx context.Context, service *models.ExpertService) error {
	f.services[service.ID] = service
	return nil
}
func (f *fakeServiceRepo) GetByID(ctx context.Context, id string) (*models.ExpertService, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, errors.New("service not found")
	}
	return s, nil
}
func (f *fakeServiceRepo) ListByExpert(ctx context.Context, expertID string) ([]models.ExpertService, error) {
	var out []models.ExpertService
	for _, s := range f.services {
		if s.ExpertID == expertID {
			out = append(out, *s)
		}
	}
	return out, nil
}
func (f *fakeServiceRepo) ListActiveByExpert(ctx context.Context, expertID string) ([]models.ExpertService, error) {
	var out []models.ExpertService
	for _, s := range f.services {
		if s.ExpertID == expertID && s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}
func (f *fakeServiceRepo) Delete(ctx context.Context, id, expertID string) error {
	delete(f.services, id)
	return nil
}

type fakeCategoryRepo struct {
	categories   []models.Category
	associations []models.CategoryAssociation
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	return f.categories, nil
}
func (f *fakeCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	f.categories = append(f.categories, *category)
	return nil
}
func (f *fakeCategoryRepo) Associate(ctx context.Context, assoc *models.CategoryAssociation) error {
	f.associations = append(f.associations, *assoc)
	return nil
}
func (f *fakeCategoryRepo) ExpertIDsByCategory(ctx context.Context, categoryID string) ([]string, error) {
	var out []string
	for _, a := range f.associations {
		if a.CategoryID == categoryID {
			out = append(out, a.ExpertID)
		}
	}
	return out, nil
}
func (f *fakeCategoryRepo) CategoryIDsByExpert(ctx context.Context, expertID string) ([]string, error) {
	var out []string
	for _, a := range f.associations {
		if a.ExpertID == expertID {
			out = append(out, a.CategoryID)
		}
	}
	return out, nil
}

type fakeVideoRepo struct {
	videos map[string]*models.ExpertVideo
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{videos: map[string]*models.ExpertVideo{}}
}

func (f *fakeVideoRepo) Create(ctx context.Context, video *models.ExpertVideo) error {
	f.videos[video.ID] = video
	return nil
}
func (f *fakeVideoRepo) GetByID(ctx context.Context, id string) (*models.ExpertVideo, error) {
	v, ok := f.videos[id]
	if !ok {
		return nil, errors.New("video not found")
	}
	return v, nil
}
func (f *fakeVideoRepo) ListByExpert(ctx context.Context, expertID string) ([]models.ExpertVideo, error) {
	var out []models.ExpertVideo
	for _, v := range f.videos {
		if v.ExpertID == expertID {
			out = append(out, *v)
		}
	}
	return out, nil
}
func (f *fakeVideoRepo) Delete(ctx context.Context, id, expertID string) error {
	delete(f.videos, id)
	return nil
}

type fakeSuggestionRepo struct {
	suggestions []models.ExpertSuggestion
}

func (f *fakeSuggestionRepo) Create(ctx context.Context, suggestion *models.ExpertSuggestion) error {
	f.suggestions = append(f.suggestions, *suggestion)
	return nil
}
func (f *fakeSuggestionRepo) List(ctx context.Context) ([]models.ExpertSuggestion, error) {
	return f.suggestions, nil
}

func newTestService() (*DefaultExpertService, *fakeProfileRepo, *fakeServiceRepo, *fakeVideoRepo, *fakeSuggestionRepo) {
	profiles := newFakeProfileRepo()
	services := newFakeServiceRepo()
	videos := newFakeVideoRepo()
	suggestions := &fakeSuggestionRepo{}
	svc := &DefaultExpertService{
		Profiles:    profiles,
		Services:    services,
		Categories:  &fakeCategoryRepo{},
		Videos:      videos,
		Suggestions: suggestions,
	}
	return svc, profiles, services, videos, suggestions
}

func TestGetExpertProfileAggregatesServicesAndVideos(t *testing.T) {
	svc, profiles, services, videos, _ := newTestService()
	profiles.profiles["e1"] = &models.Profile{ID: "e1", IsExpert: true, FirstName: "Ada"}
	services.services["s1"] = &models.ExpertService{ID: "s1", ExpertID: "e1", Title: "Call", IsActive: true}
	services.services["s2"] = &models.ExpertService{ID: "s2", ExpertID: "e1", Title: "Retired", IsActive: false}
	videos.videos["v1"] = &models.ExpertVideo{ID: "v1", ExpertID: "e1", URL: "https://example.com/v1"}

	view, err := svc.GetExpertProfile(context.Background(), "e1")
	if err != nil {
		t.Fatalf("GetExpertProfile() error = %v", err)
	}
	if view.Profile.FirstName != "Ada" {
		t.Errorf("profile first name = %q, want Ada", view.Profile.FirstName)
	}
	if len(view.Services) != 1 {
		t.Errorf("services = %d, want 1 (inactive excluded)", len(view.Services))
	}
	if len(view.Videos) != 1 {
		t.Errorf("videos = %d, want 1", len(view.Videos))
	}
}

func TestGetExpertProfileRejectsNonExpert(t *testing.T) {
	svc, profiles, _, _, _ := newTestService()
	profiles.profiles["u1"] = &models.Profile{ID: "u1", IsExpert: false}

	if _, err := svc.GetExpertProfile(context.Background(), "u1"); err == nil {
		t.Fatal("GetExpertProfile() should fail for a non-expert profile")
	}
}

func TestCreateServiceValidation(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	tests := []struct {
		name    string
		service models.ExpertService
		wantErr bool
	}{
		{"valid per-session service", models.ExpertService{ExpertID: "e1", Title: "Call", ServiceType: models.ServiceType30Min, Price: 25}, false},
		{"valid package", models.ExpertService{ExpertID: "e1", Title: "Mentoring", ServiceType: models.ServiceType1Month, Price: 400}, false},
		{"missing title", models.ExpertService{ExpertID: "e1", ServiceType: models.ServiceType30Min}, true},
		{"unknown service type", models.ExpertService{ExpertID: "e1", Title: "Call", ServiceType: "fortnight"}, true},
		{"negative price", models.ExpertService{ExpertID: "e1", Title: "Call", ServiceType: models.ServiceType1Hour, Price: -5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := svc.CreateService(context.Background(), &tt.service)
			if tt.wantErr {
				if err == nil {
					t.Fatal("CreateService() should have failed")
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateService() error = %v", err)
			}
			if created.ID == "" {
				t.Error("CreateService() should assign an ID")
			}
			if !created.IsActive {
				t.Error("new services should be active")
			}
		})
	}
}

func TestSearchExpertsTrimsQuery(t *testing.T) {
	svc, profiles, _, _, _ := newTestService()
	profiles.profiles["e1"] = &models.Profile{ID: "e1", IsExpert: true, FirstName: "Grace"}

	results, err := svc.SearchExperts(context.Background(), "  Grace  ")
	if err != nil {
		t.Fatalf("SearchExperts() error = %v", err)
	}
	if len(results) != 1 {
		t.Errorf("results = %d, want 1", len(results))
	}

	empty, err := svc.SearchExperts(context.Background(), "   ")
	if err != nil {
		t.Fatalf("SearchExperts() with blank query error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("blank query results = %d, want 0", len(empty))
	}
}

func TestGetExpertProfileIncludesCategories(t *testing.T) {
	svc, profiles, _, _, _ := newTestService()
	profiles.profiles["e1"] = &models.Profile{ID: "e1", IsExpert: true, FirstName: "Ada"}

	cats := svc.Categories.(*fakeCategoryRepo)
	cats.categories = []models.Category{
		{ID: "c1", Name: "Engineering"},
		{ID: "c2", Name: "Design"},
	}
	cats.associations = []models.CategoryAssociation{{ID: "a1", ExpertID: "e1", CategoryID: "c2"}}

	view, err := svc.GetExpertProfile(context.Background(), "e1")
	if err != nil {
		t.Fatalf("GetExpertProfile() error = %v", err)
	}
	if len(view.Categories) != 1 || view.Categories[0].ID != "c2" {
		t.Errorf("categories = %+v, want just c2", view.Categories)
	}
}

func TestCreateCategory(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	created, err := svc.CreateCategory(context.Background(), &models.Category{Name: "  Engineering  "})
	if err != nil {
		t.Fatalf("CreateCategory() error = %v", err)
	}
	if created.ID == "" {
		t.Error("CreateCategory() should assign an ID")
	}
	if created.Name != "Engineering" {
		t.Errorf("name = %q, want trimmed Engineering", created.Name)
	}

	if _, err := svc.CreateCategory(context.Background(), &models.Category{Name: "   "}); err == nil {
		t.Error("CreateCategory() with a blank name should fail")
	}
}

func TestJoinCategory(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	cats := svc.Categories.(*fakeCategoryRepo)
	cats.categories = []models.Category{{ID: "c1", Name: "Engineering"}}

	if err := svc.JoinCategory(context.Background(), "e1", "c1"); err != nil {
		t.Fatalf("JoinCategory() error = %v", err)
	}
	if len(cats.associations) != 1 {
		t.Fatalf("associations = %d, want 1", len(cats.associations))
	}
	if cats.associations[0].ID == "" {
		t.Error("JoinCategory() should assign an association ID")
	}

	if err := svc.JoinCategory(context.Background(), "e1", "no-such-category"); err == nil {
		t.Error("JoinCategory() with an unknown category should fail")
	}
}

func TestListSuggestions(t *testing.T) {
	svc, _, _, _, suggestions := newTestService()
	suggestions.suggestions = []models.ExpertSuggestion{
		{ID: "s1", Name: "Dr. Lovelace"},
		{ID: "s2", Name: "Dr. Hopper"},
	}

	got, err := svc.ListSuggestions(context.Background())
	if err != nil {
		t.Fatalf("ListSuggestions() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("suggestions = %d, want 2", len(got))
	}
}

func TestSuggestExpert(t *testing.T) {
	svc, _, _, _, suggestions := newTestService()

	err := svc.SuggestExpert(context.Background(), &models.ExpertSuggestion{
		Name: "Dr. Lovelace", Reason: "pioneering work", SubmittedBy: "u1",
	})
	if err != nil {
		t.Fatalf("SuggestExpert() error = %v", err)
	}
	if len(suggestions.suggestions) != 1 {
		t.Fatalf("stored suggestions = %d, want 1", len(suggestions.suggestions))
	}
	if suggestions.suggestions[0].ID == "" {
		t.Error("SuggestExpert() should assign an ID")
	}

	if err := svc.SuggestExpert(context.Background(), &models.ExpertSuggestion{Name: "No Reason"}); err == nil {
		t.Error("SuggestExpert() without a reason should fail")
	}
}

func TestDeleteVideoChecksOwnership(t *testing.T) {
	svc, _, _, videos, _ := newTestService()
	videos.videos["v1"] = &models.ExpertVideo{ID: "v1", ExpertID: "e1", URL: "https://example.com/v1"}

	if err := svc.DeleteVideo(context.Background(), "v1", "someone-else"); err == nil {
		t.Fatal("DeleteVideo() should refuse another expert's video")
	}
	if _, ok := videos.videos["v1"]; !ok {
		t.Fatal("video must survive a refused delete")
	}

	if err := svc.DeleteVideo(context.Background(), "v1", "e1"); err != nil {
		t.Fatalf("DeleteVideo() error = %v", err)
	}
	if _, ok := videos.videos["v1"]; ok {
		t.Error("video should be gone after owner delete")
	}
}

func TestAddVideoWithExternalURL(t *testing.T) {
	svc, _, _, videos, _ := newTestService()

	video, err := svc.AddVideo(context.Background(), "e1", "", "https://youtube.com/watch?v=x")
	if err != nil {
		t.Fatalf("AddVideo() error = %v", err)
	}
	if video.PublicID != "" {
		t.Error("external videos carry no storage asset ID")
	}
	if _, ok := videos.videos[video.ID]; !ok {
		t.Error("video was not stored")
	}

	if _, err := svc.AddVideo(context.Background(), "e1", "", ""); err == nil {
		t.Error("AddVideo() without file or url should fail")
	}
}
