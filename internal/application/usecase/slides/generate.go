package slides

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recruai/platform-api/internal/application/service"
	"github.com/recruai/platform-api/internal/application/usecase/identity"
	"github.com/recruai/platform-api/internal/domain/presentation"
	"github.com/recruai/platform-api/pkg/apperror"
	"github.com/recruai/platform-api/pkg/logger"
)

const (
	slideEndMarker    = "<!-- SLIDE_END -->"
	keywordsMarker    = "<!-- IMAGE_KEYWORDS:"
	defaultSlideCount = 5
	presentationTTL   = 7 * 24 * time.Hour
)

// Event is one SSE frame of the generation stream.
type Event struct {
	Status      string     `json:"status"`
	Plan        []PlanStep `json:"plan,omitempty"`
	Message     string     `json:"message,omitempty"`
	SlideNumber int        `json:"slide_number,omitempty"`
	SlideHTML   string     `json:"slide_html,omitempty"`
}

type PlanStep struct {
	SlideNumber    int    `json:"slide_number"`
	Title          string `json:"title"`
	ContentOutline string `json:"content_outline"`
}

type GenerateInput struct {
	Topic      string
	SlideCount int
	Approval   bool
}

// EmitFunc delivers one event to the client. A write error aborts generation;
// there is no cancellation propagation beyond that.
type EmitFunc func(Event) error

type GenerateUseCase struct {
	resolver *identity.Resolver
	repo     presentation.Repository
	llm      service.LLMService
	images   service.ImageSearch
	logger   logger.Logger
}

func NewGenerateUseCase(
	resolver *identity.Resolver,
	repo presentation.Repository,
	llm service.LLMService,
	images service.ImageSearch,
	log logger.Logger,
) *GenerateUseCase {
	return &GenerateUseCase{
		resolver: resolver,
		repo:     repo,
		llm:      llm,
		images:   images,
		logger:   log,
	}
}

// Execute runs the full generation pipeline, emitting plan_generated, one
// slide_generated per completed slide and presentation_finalized. Errors
// after the stream has opened surface as an error event, not an error return.
func (uc *GenerateUseCase) Execute(ctx context.Context, identityToken string, input GenerateInput, emit EmitFunc) error {
	o, err := uc.resolver.ResolveOwner(ctx, identityToken)
	if err != nil {
		return err
	}
	if strings.TrimSpace(input.Topic) == "" {
		return apperror.NewInvalidInput("topic is required", nil)
	}
	if input.SlideCount <= 0 {
		input.SlideCount = defaultSlideCount
	}

	plan := buildPlan(input.Topic, input.SlideCount)
	if err := emit(Event{Status: "plan_generated", Plan: plan}); err != nil {
		return err
	}

	if !input.Approval {
		return emit(Event{Status: "error", Message: "Approval required to proceed"})
	}

	p := &presentation.Presentation{
		ID:         uuid.New(),
		OwnerID:    o.ID,
		Title:      "Presentation on " + input.Topic,
		Topic:      input.Topic,
		SlideCount: input.SlideCount,
		Status:     presentation.StatusGenerating,
	}
	expiresAt := time.Now().UTC().Add(presentationTTL)
	p.ExpiresAt = &expiresAt
	if err := uc.repo.Create(ctx, p); err != nil {
		return emit(Event{Status: "error", Message: "failed to create presentation"})
	}

	slideCount, err := uc.generateSlides(ctx, p, input, emit)
	if err != nil {
		uc.logger.Error("Slide generation failed", err, zap.String("presentation_id", p.ID.String()))
		if updErr := uc.repo.UpdateStatus(ctx, p.ID, presentation.StatusError, slideCount); updErr != nil {
			uc.logger.Error("Failed to mark presentation errored", updErr, zap.String("presentation_id", p.ID.String()))
		}
		return emit(Event{Status: "error", Message: err.Error()})
	}

	if err := uc.repo.UpdateStatus(ctx, p.ID, presentation.StatusCompleted, slideCount); err != nil {
		return emit(Event{Status: "error", Message: "failed to finalize presentation"})
	}
	return emit(Event{Status: "presentation_finalized"})
}

func (uc *GenerateUseCase) generateSlides(ctx context.Context, p *presentation.Presentation, input GenerateInput, emit EmitFunc) (int, error) {
	stream, err := uc.llm.StreamChatResponse(ctx, buildGenerationPrompt(input.Topic, input.SlideCount))
	if err != nil {
		return 0, fmt.Errorf("cannot open model stream: %w", err)
	}
	defer stream.Close()

	var buf strings.Builder
	slideNumber := 0

	for {
		token, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return slideNumber, fmt.Errorf("model stream failed: %w", err)
		}
		buf.WriteString(token)

		content := buf.String()
		if !strings.Contains(content, slideEndMarker) {
			continue
		}

		parts := strings.Split(content, slideEndMarker)
		for _, raw := range parts[:len(parts)-1] {
			html := strings.TrimSpace(raw)
			if html == "" {
				continue
			}
			slideNumber++

			html = uc.illustrate(ctx, html)
			slide := &presentation.Slide{
				PresentationID: p.ID,
				SlideNumber:    slideNumber,
				HTMLContent:    html,
			}
			if url := imageURL(html); url != "" {
				slide.ImageURL = &url
			}
			if err := uc.repo.AddSlide(ctx, slide); err != nil {
				return slideNumber, fmt.Errorf("cannot persist slide %d: %w", slideNumber, err)
			}
			if err := emit(Event{Status: "slide_generated", SlideNumber: slideNumber, SlideHTML: html}); err != nil {
				return slideNumber, err
			}
		}
		buf.Reset()
		buf.WriteString(parts[len(parts)-1])
	}

	return slideNumber, nil
}

// illustrate looks up one image for the slide and fills the empty src slot.
// Lookup failures leave the slide without an image.
func (uc *GenerateUseCase) illustrate(ctx context.Context, html string) string {
	url, err := uc.images.Search(ctx, ExtractImageKeywords(html))
	if err != nil {
		uc.logger.Warn("Image search failed", zap.Error(err))
		return html
	}
	if url == "" {
		return html
	}
	return strings.Replace(html, `src=""`, `src="`+url+`"`, -1)
}

func imageURL(html string) string {
	const prefix = `src="`
	idx := strings.Index(html, prefix)
	if idx < 0 {
		return ""
	}
	rest := html[idx+len(prefix):]
	end := strings.Index(rest, `"`)
	if end <= 0 {
		return ""
	}
	url := rest[:end]
	if !strings.HasPrefix(url, "http") {
		return ""
	}
	return url
}

// ExtractImageKeywords pulls the keyword hint the model was asked to leave in
// an HTML comment, falling back to the longest words of the slide body.
func ExtractImageKeywords(html string) string {
	if idx := strings.Index(html, keywordsMarker); idx >= 0 {
		rest := html[idx+len(keywordsMarker):]
		if end := strings.Index(rest, "-->"); end >= 0 {
			if keywords := strings.TrimSpace(rest[:end]); keywords != "" {
				return keywords
			}
		}
	}

	stripped := html
	for _, tag := range []string{"<html>", "</html>", "<head>", "</head>", "<body>", "</body>", "<style>", "</style>"} {
		stripped = strings.ReplaceAll(stripped, tag, "")
	}
	words := make([]string, 0, 5)
	for _, w := range strings.Fields(stripped) {
		if len(w) > 5 && !strings.HasPrefix(w, "<") {
			words = append(words, w)
			if len(words) == 5 {
				break
			}
		}
	}
	if len(words) == 0 {
		return "professional business concept"
	}
	return strings.Join(words, " ")
}

func buildPlan(topic string, slideCount int) []PlanStep {
	plan := make([]PlanStep, 0, slideCount)
	for i := 1; i <= slideCount; i++ {
		plan = append(plan, PlanStep{
			SlideNumber:    i,
			Title:          fmt.Sprintf("Slide %d Title", i),
			ContentOutline: fmt.Sprintf("Content outline for slide %d about %s", i, topic),
		})
	}
	return plan
}

func buildGenerationPrompt(topic string, slideCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate exactly %d professional slides in HTML/CSS format for a presentation about: %q\n\n", slideCount, topic)
	b.WriteString("For each slide, create complete, self-contained HTML with inline CSS.\n\n")
	b.WriteString("REQUIREMENTS:\n")
	b.WriteString("- Each slide must be complete, standalone HTML with inline CSS\n")
	b.WriteString("- Always include <img src=\"\" alt=\"\"> tags (src will be filled with image URL)\n")
	b.WriteString("- After each slide's closing </html> tag, add the marker " + slideEndMarker + "\n")
	b.WriteString("- Inside each slide add an HTML comment " + keywordsMarker + " a few words --> describing a fitting stock photo\n")
	b.WriteString("- Use professional colors and typography\n")
	b.WriteString("- Use appropriate slide layout for the content\n")
	fmt.Fprintf(&b, "- Include relevant content about: %s\n\n", topic)
	fmt.Fprintf(&b, "Generate %d slides now:", slideCount)
	return b.String()
}
