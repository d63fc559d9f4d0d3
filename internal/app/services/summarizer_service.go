package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ardhiancalwa/Schola/internal/app/models"
	"github.com/ardhiancalwa/Schola/internal/app/models/dto"
	"github.com/ardhiancalwa/Schola/internal/pkg/apperrors"
	"github.com/ardhiancalwa/Schola/internal/pkg/filestorage"
	"github.com/ardhiancalwa/Schola/internal/pkg/genai"
	"github.com/ardhiancalwa/Schola/internal/pkg/learningmethod"
	"github.com/ardhiancalwa/Schola/internal/pkg/logger"
	"github.com/ardhiancalwa/Schola/internal/pkg/pdftext"
)

// TextGenerator produces one text completion for a prompt on a named model.
type TextGenerator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// AnalysisStore persists completed analyses.
type AnalysisStore interface {
	Create(ctx context.Context, analysis *models.MaterialAnalysis) error
	GetLatestByMaterialID(ctx context.Context, materialID string) (*models.MaterialAnalysis, error)
}

// SummarizerConfig tunes the generation pipeline. Zero values fall back to
// the defaults below.
type SummarizerConfig struct {
	Models           []string
	MaxAttempts      int
	RateLimitBackoff time.Duration
	ParseBackoff     time.Duration
	MaxPromptChars   int
}

var defaultSummarizerConfig = SummarizerConfig{
	Models: []string{
		"gemini-2.5-flash",
		"gemini-2.0-flash-lite",
		"gemini-2.0-flash",
	},
	MaxAttempts:      3,
	RateLimitBackoff: 35 * time.Second,
	ParseBackoff:     3 * time.Second,
	MaxPromptChars:   30000,
}

// SummarizerService runs the material summarization pipeline: store the
// upload, extract its text, prompt the generative model with fallback and
// retries, validate the JSON shape, persist the result.
type SummarizerService struct {
	generator TextGenerator
	store     AnalysisStore
	storage   filestorage.FileStorage
	config    SummarizerConfig

	// sleep is replaceable in tests so backoffs do not slow them down
	sleep func(ctx context.Context, d time.Duration) error
}

// NewSummarizerService creates a summarizer. A nil generator marks the
// service as not configured; requests then fail with
// ErrSummarizerNotConfigured instead of reaching the network.
func NewSummarizerService(generator TextGenerator, store AnalysisStore, storage filestorage.FileStorage, config SummarizerConfig) *SummarizerService {
	if len(config.Models) == 0 {
		config.Models = defaultSummarizerConfig.Models
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = defaultSummarizerConfig.MaxAttempts
	}
	if config.RateLimitBackoff <= 0 {
		config.RateLimitBackoff = defaultSummarizerConfig.RateLimitBackoff
	}
	if config.ParseBackoff <= 0 {
		config.ParseBackoff = defaultSummarizerConfig.ParseBackoff
	}
	if config.MaxPromptChars <= 0 {
		config.MaxPromptChars = defaultSummarizerConfig.MaxPromptChars
	}

	return &SummarizerService{
		generator: generator,
		store:     store,
		storage:   storage,
		config:    config,
		sleep:     waitFor,
	}
}

// AnalyzeMaterialInput carries the upload and its classroom context.
type AnalyzeMaterialInput struct {
	ClassID        int64
	ClassLevel     string
	GradeNumber    int
	LearningMethod string
	File           *multipart.FileHeader
}

// AnalyzeMaterial runs the full pipeline and returns the persisted analysis.
func (s *SummarizerService) AnalyzeMaterial(ctx context.Context, userID int64, input AnalyzeMaterialInput) (*models.MaterialAnalysis, error) {
	if s.generator == nil {
		return nil, apperrors.ErrSummarizerNotConfigured
	}

	if !models.IsValidClassLevel(input.ClassLevel) {
		return nil, apperrors.NewBadRequestError("classLevel must be one of SD, SMP, SMA, SMK")
	}

	method, err := learningmethod.Normalize(input.LearningMethod)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	started := time.Now()

	storedPath, err := s.storage.SaveFile(input.File, fmt.Sprintf("materials/%d", userID))
	if err != nil {
		return nil, fmt.Errorf("failed to store material: %w", err)
	}

	data, err := s.storage.ReadFile(storedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read stored material: %w", err)
	}

	text, err := pdftext.ExtractText(data)
	if err != nil {
		s.cleanup(storedPath)
		return nil, apperrors.ErrNoExtractableText
	}

	prompt := buildSummaryPrompt(text, input.ClassLevel, input.GradeNumber, string(method), s.config.MaxPromptChars)

	summary, modelUsed, err := s.generateSummary(ctx, prompt)
	if err != nil {
		s.cleanup(storedPath)
		return nil, err
	}

	analysis := &models.MaterialAnalysis{
		UserID:         userID,
		ClassID:        input.ClassID,
		MaterialID:     uuid.New().String(),
		FileName:       input.File.Filename,
		FilePath:       storedPath,
		ClassLevel:     models.ClassLevel(input.ClassLevel),
		GradeNumber:    input.GradeNumber,
		LearningMethod: string(method),
		Summary:        *summary,
		ProcessingTime: time.Since(started).Seconds(),
	}

	if err := s.store.Create(ctx, analysis); err != nil {
		logger.Error().Err(err).Str("materialId", analysis.MaterialID).Msg("Failed to persist analysis")
		return nil, apperrors.ErrAnalysisSaveFailed
	}

	logger.Info().
		Str("materialId", analysis.MaterialID).
		Str("model", modelUsed).
		Float64("seconds", analysis.ProcessingTime).
		Msg("Material analyzed")

	return analysis, nil
}

// generateSummary walks the model fallback list. Rate limits and malformed
// completions are retried on the same model with their own backoffs; any
// other failure moves straight to the next model.
func (s *SummarizerService) generateSummary(ctx context.Context, prompt string) (*models.MaterialSummary, string, error) {
	var lastErr error

	for _, model := range s.config.Models {
		for attempt := 1; attempt <= s.config.MaxAttempts; attempt++ {
			raw, err := s.generator.Generate(ctx, model, prompt)
			if err != nil {
				lastErr = err
				if errors.Is(err, genai.ErrRateLimited) {
					logger.Warn().Str("model", model).Int("attempt", attempt).Msg("Generation rate limited, backing off")
					if attempt < s.config.MaxAttempts {
						if serr := s.sleep(ctx, s.config.RateLimitBackoff); serr != nil {
							return nil, "", serr
						}
					}
					continue
				}
				logger.Warn().Err(err).Str("model", model).Msg("Generation failed, trying next model")
				break
			}

			summary, err := parseSummary(raw)
			if err != nil {
				lastErr = err
				logger.Warn().Err(err).Str("model", model).Int("attempt", attempt).Msg("Malformed completion, retrying")
				if attempt < s.config.MaxAttempts {
					if serr := s.sleep(ctx, s.config.ParseBackoff); serr != nil {
						return nil, "", serr
					}
				}
				continue
			}

			return summary, model, nil
		}
	}

	return nil, "", fmt.Errorf("all generation models failed: %w", lastErr)
}

// GenerateTips produces free-form teaching tips, with the same model
// fallback as the summary pipeline but without shape validation.
func (s *SummarizerService) GenerateTips(ctx context.Context, req dto.GenerateTipsRequest) (string, error) {
	if s.generator == nil {
		return "", apperrors.ErrSummarizerNotConfigured
	}

	method, err := learningmethod.Normalize(req.LearningStyle)
	if err != nil {
		return "", apperrors.NewBadRequestError(err.Error())
	}

	prompt := fmt.Sprintf(
		"Anda adalah asisten pengajaran. Berikan tips praktis mengajar topik %q untuk siswa dengan gaya belajar %s. Jawab dalam bahasa Indonesia, maksimal 5 poin singkat.",
		req.Topic, method,
	)

	var lastErr error
	for _, model := range s.config.Models {
		for attempt := 1; attempt <= s.config.MaxAttempts; attempt++ {
			text, err := s.generator.Generate(ctx, model, prompt)
			if err == nil {
				return text, nil
			}
			lastErr = err
			if errors.Is(err, genai.ErrRateLimited) {
				if attempt < s.config.MaxAttempts {
					if serr := s.sleep(ctx, s.config.RateLimitBackoff); serr != nil {
						return "", serr
					}
				}
				continue
			}
			break
		}
	}

	return "", fmt.Errorf("all generation models failed: %w", lastErr)
}

// GetAnalysis retrieves the most recent analysis for a material.
func (s *SummarizerService) GetAnalysis(ctx context.Context, materialID string) (*models.MaterialAnalysis, error) {
	return s.store.GetLatestByMaterialID(ctx, materialID)
}

func (s *SummarizerService) cleanup(storedPath string) {
	if err := s.storage.DeleteFile(storedPath); err != nil {
		logger.Warn().Err(err).Str("path", storedPath).Msg("Failed to remove stored material")
	}
}

// buildSummaryPrompt assembles the Indonesian instruction prompt. The
// material text is truncated so the request stays inside the model's input
// window.
func buildSummaryPrompt(text, classLevel string, gradeNumber int, learningMethod string, maxChars int) string {
	if len(text) > maxChars {
		cut := maxChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	return fmt.Sprintf(`Anda adalah asisten guru yang merangkum materi ajar.
Rangkum materi berikut untuk siswa %s kelas %d dengan metode belajar utama %s.
Jawab HANYA dengan JSON valid tanpa teks lain, persis dengan struktur berikut:
{
  "material": {
    "title": "judul materi",
    "description": "deskripsi singkat",
    "sections": [
      {"title": "judul bagian", "backgroundColor": "#EEF2FF", "points": ["poin 1", "poin 2"]}
    ]
  },
  "insights": {
    "mainTopics": ["topik utama"],
    "difficultAreas": [
      {"title": "bagian sulit", "explanation": "mengapa sulit"}
    ],
    "teachingRecommendations": [
      {"learningStyle": "%s", "methods": ["metode"], "suggestions": ["saran"]}
    ]
  }
}

Materi:
%s`, classLevel, gradeNumber, learningMethod, learningMethod, text)
}

// parseSummary decodes a model completion into a summary. Completions often
// arrive wrapped in markdown fences or prose, so only the outermost JSON
// object is decoded.
func parseSummary(raw string) (*models.MaterialSummary, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("completion contains no JSON object")
	}

	var summary models.MaterialSummary
	if err := json.Unmarshal([]byte(raw[start:end+1]), &summary); err != nil {
		return nil, fmt.Errorf("failed to decode summary JSON: %w", err)
	}

	if err := validateSummary(&summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

// validateSummary checks the structural invariants a stored summary must
// hold. A completion that parses but misses these is treated the same as
// unparseable JSON.
func validateSummary(summary *models.MaterialSummary) error {
	if strings.TrimSpace(summary.Material.Title) == "" {
		return fmt.Errorf("summary is missing material.title")
	}
	if strings.TrimSpace(summary.Material.Description) == "" {
		return fmt.Errorf("summary is missing material.description")
	}
	if len(summary.Material.Sections) == 0 {
		return fmt.Errorf("summary has no material sections")
	}
	for i, section := range summary.Material.Sections {
		if len(section.Points) == 0 {
			return fmt.Errorf("summary section %d has no points", i)
		}
	}
	if len(summary.Insights.MainTopics) == 0 {
		return fmt.Errorf("summary has no main topics")
	}
	if len(summary.Insights.DifficultAreas) == 0 {
		return fmt.Errorf("summary has no difficult areas")
	}
	if len(summary.Insights.TeachingRecommendations) == 0 {
		return fmt.Errorf("summary has no teaching recommendations")
	}
	return nil
}

func waitFor(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
