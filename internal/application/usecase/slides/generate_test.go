package slides

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruai/platform-api/internal/application/service"
	"github.com/recruai/platform-api/internal/application/usecase/identity"
	"github.com/recruai/platform-api/internal/domain/owner"
	"github.com/recruai/platform-api/internal/domain/presentation"
	"github.com/recruai/platform-api/pkg/apperror"
	"github.com/recruai/platform-api/pkg/logger"
)

func TestExtractImageKeywordsFromComment(t *testing.T) {
	html := `<html><body><h1>Kafka</h1><!-- IMAGE_KEYWORDS: distributed message broker --></body></html>`
	assert.Equal(t, "distributed message broker", ExtractImageKeywords(html))
}

func TestExtractImageKeywordsFallsBackToLongWords(t *testing.T) {
	html := `<html><body>Scaling consumer groups without downtime</body></html>`
	keywords := ExtractImageKeywords(html)
	assert.Equal(t, "Scaling consumer groups without downtime", keywords)
}

func TestExtractImageKeywordsCapsAtFiveWords(t *testing.T) {
	html := "alpha-one bravo-two charlie-three delta-four echo-five foxtrot-six"
	keywords := ExtractImageKeywords(html)
	assert.Len(t, strings.Fields(keywords), 5)
	assert.NotContains(t, keywords, "foxtrot-six")
}

func TestExtractImageKeywordsDefault(t *testing.T) {
	assert.Equal(t, "professional business concept", ExtractImageKeywords("<p>hi</p>"))
	assert.Equal(t, "professional business concept", ExtractImageKeywords(""))
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "https://img.example/a.jpg", imageURL(`<img src="https://img.example/a.jpg" alt="">`))
	assert.Equal(t, "", imageURL(`<img src="" alt="">`))
	assert.Equal(t, "", imageURL(`<p>no image</p>`))
}

type scriptedStream struct {
	tokens []string
	pos    int
}

func (s *scriptedStream) Recv() (string, error) {
	if s.pos >= len(s.tokens) {
		return "", io.EOF
	}
	token := s.tokens[s.pos]
	s.pos++
	return token, nil
}

func (s *scriptedStream) Close() error { return nil }

type fakeLLM struct {
	tokens []string
}

func (f *fakeLLM) GenerateChatResponse(context.Context, string) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeLLM) StreamChatResponse(context.Context, string) (service.TokenStream, error) {
	return &scriptedStream{tokens: f.tokens}, nil
}

type fakeImages struct {
	url string
}

func (f *fakeImages) Search(context.Context, string) (string, error) {
	return f.url, nil
}

type fakePresentationRepo struct {
	created *presentation.Presentation
	slides  []*presentation.Slide
	status  string
	count   int

	storedID    uuid.UUID
	storedOwner uuid.UUID
	stored      []*presentation.Slide
}

func (r *fakePresentationRepo) Create(_ context.Context, p *presentation.Presentation) error {
	r.created = p
	return nil
}

func (r *fakePresentationRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status string, slideCount int) error {
	r.status = status
	r.count = slideCount
	return nil
}

func (r *fakePresentationRepo) ListByOwner(context.Context, uuid.UUID) ([]*presentation.Presentation, error) {
	return nil, nil
}

func (r *fakePresentationRepo) AddSlide(_ context.Context, s *presentation.Slide) error {
	r.slides = append(r.slides, s)
	return nil
}

func (r *fakePresentationRepo) ListSlides(_ context.Context, presentationID uuid.UUID, ownerID uuid.UUID) ([]*presentation.Slide, error) {
	if presentationID == r.storedID && ownerID == r.storedOwner {
		return r.stored, nil
	}
	return []*presentation.Slide{}, nil
}

type fakeOwnerRepo struct {
	o *owner.Owner
}

func (r *fakeOwnerRepo) FindByID(_ context.Context, id uuid.UUID) (*owner.Owner, error) {
	if r.o != nil && r.o.ID == id {
		return r.o, nil
	}
	return nil, apperror.NewAppError(apperror.ErrNotFound, "User not found", "", nil)
}

func (r *fakeOwnerRepo) FindByEmail(context.Context, string) (*owner.Owner, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeOwnerRepo) FindByUsername(context.Context, string) (*owner.Owner, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeOwnerRepo) Create(context.Context, *owner.Owner) error { return nil }
func (r *fakeOwnerRepo) Update(context.Context, *owner.Owner) error { return nil }

func newGenerateTest(tokens []string, imageURL string) (*GenerateUseCase, *fakePresentationRepo, *owner.Owner) {
	o := &owner.Owner{ID: uuid.New(), Email: "alice@example.com"}
	repo := &fakePresentationRepo{}
	uc := NewGenerateUseCase(
		identity.NewResolver(&fakeOwnerRepo{o: o}),
		repo,
		&fakeLLM{tokens: tokens},
		&fakeImages{url: imageURL},
		logger.NewNopLogger(),
	)
	return uc, repo, o
}

const slideHTML = `<html><body><img src="" alt=""><!-- IMAGE_KEYWORDS: goroutine scheduling --></body></html>`

func TestGenerateHappyPath(t *testing.T) {
	// Two slides arrive in uneven token chunks, the second split mid-marker.
	tokens := []string{
		slideHTML + "\n<!-- SLIDE",
		"_END -->\n" + slideHTML + "<!-- SLIDE_END -->",
	}
	uc, repo, o := newGenerateTest(tokens, "https://images.example/x.jpg")

	var events []Event
	err := uc.Execute(context.Background(), o.ID.String(), GenerateInput{
		Topic:      "Go concurrency",
		SlideCount: 2,
		Approval:   true,
	}, func(ev Event) error {
		events = append(events, ev)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, events, 4)
	assert.Equal(t, "plan_generated", events[0].Status)
	assert.Len(t, events[0].Plan, 2)
	assert.Equal(t, "slide_generated", events[1].Status)
	assert.Equal(t, 1, events[1].SlideNumber)
	assert.Equal(t, "slide_generated", events[2].Status)
	assert.Equal(t, 2, events[2].SlideNumber)
	assert.Equal(t, "presentation_finalized", events[3].Status)

	assert.Contains(t, events[1].SlideHTML, `src="https://images.example/x.jpg"`)

	require.NotNil(t, repo.created)
	assert.Equal(t, "Presentation on Go concurrency", repo.created.Title)
	require.NotNil(t, repo.created.ExpiresAt)
	assert.Equal(t, presentation.StatusCompleted, repo.status)
	assert.Equal(t, 2, repo.count)

	require.Len(t, repo.slides, 2)
	require.NotNil(t, repo.slides[0].ImageURL)
	assert.Equal(t, "https://images.example/x.jpg", *repo.slides[0].ImageURL)
}

func TestGenerateRequiresApproval(t *testing.T) {
	uc, repo, o := newGenerateTest(nil, "")

	var events []Event
	err := uc.Execute(context.Background(), o.ID.String(), GenerateInput{
		Topic: "Go concurrency",
	}, func(ev Event) error {
		events = append(events, ev)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, "plan_generated", events[0].Status)
	assert.Len(t, events[0].Plan, defaultSlideCount)
	assert.Equal(t, "error", events[1].Status)
	assert.Equal(t, "Approval required to proceed", events[1].Message)

	// Nothing was persisted before approval.
	assert.Nil(t, repo.created)
}

func TestGenerateRequiresTopic(t *testing.T) {
	uc, _, o := newGenerateTest(nil, "")

	err := uc.Execute(context.Background(), o.ID.String(), GenerateInput{Approval: true}, func(Event) error {
		t.Fatal("no event should be emitted before validation")
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestGenerateRejectsUnknownOwner(t *testing.T) {
	uc, _, _ := newGenerateTest(nil, "")

	err := uc.Execute(context.Background(), uuid.NewString(), GenerateInput{Topic: "x", Approval: true}, func(Event) error {
		t.Fatal("no event should be emitted for an unresolved owner")
		return nil
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGenerateWithoutImageMatchKeepsSlide(t *testing.T) {
	tokens := []string{slideHTML + "<!-- SLIDE_END -->"}
	uc, repo, o := newGenerateTest(tokens, "")

	var events []Event
	err := uc.Execute(context.Background(), o.ID.String(), GenerateInput{
		Topic:      "Go concurrency",
		SlideCount: 1,
		Approval:   true,
	}, func(ev Event) error {
		events = append(events, ev)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, repo.slides, 1)
	assert.Nil(t, repo.slides[0].ImageURL)
	assert.Contains(t, repo.slides[0].HTMLContent, `src=""`)
	assert.Equal(t, presentation.StatusCompleted, repo.status)
}
