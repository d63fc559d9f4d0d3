package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardhiancalwa/Schola/internal/app/models"
	"github.com/ardhiancalwa/Schola/internal/pkg/apperrors"
	"github.com/ardhiancalwa/Schola/internal/pkg/genai"
)

const validSummaryJSON = `{
	"material": {
		"title": "Fotosintesis",
		"description": "Proses tumbuhan membuat makanan",
		"sections": [
			{"title": "Pengertian", "backgroundColor": "#EEF2FF", "points": ["Tumbuhan mengubah cahaya menjadi energi"]}
		]
	},
	"insights": {
		"mainTopics": ["Fotosintesis"],
		"difficultAreas": [{"title": "Reaksi gelap", "explanation": "Banyak tahapan kimia"}],
		"teachingRecommendations": [{"learningStyle": "visual", "methods": ["Diagram"], "suggestions": ["Gunakan video"]}]
	}
}`

type generatorCall struct {
	model string
}

type scriptedResponse struct {
	text string
	err  error
}

type scriptedGenerator struct {
	responses []scriptedResponse
	calls     []generatorCall
}

func (g *scriptedGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	g.calls = append(g.calls, generatorCall{model: model})
	if len(g.responses) == 0 {
		return "", errors.New("no scripted response left")
	}
	next := g.responses[0]
	g.responses = g.responses[1:]
	return next.text, next.err
}

type fakeStore struct {
	created   []*models.MaterialAnalysis
	createErr error
}

func (s *fakeStore) Create(ctx context.Context, analysis *models.MaterialAnalysis) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, analysis)
	return nil
}

func (s *fakeStore) GetLatestByMaterialID(ctx context.Context, materialID string) (*models.MaterialAnalysis, error) {
	for i := len(s.created) - 1; i >= 0; i-- {
		if s.created[i].MaterialID == materialID {
			return s.created[i], nil
		}
	}
	return nil, apperrors.ErrAnalysisNotFound
}

type fakeStorage struct {
	files   map[string][]byte
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: make(map[string][]byte)}
}

func (s *fakeStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	stored := path.Join(subPath, fileHeader.Filename)
	s.files[stored] = data
	return stored, nil
}

func (s *fakeStorage) ReadFile(storedPath string) ([]byte, error) {
	data, ok := s.files[storedPath]
	if !ok {
		return nil, errors.New("file not found")
	}
	return data, nil
}

func (s *fakeStorage) DeleteFile(storedPath string) error {
	delete(s.files, storedPath)
	s.deleted = append(s.deleted, storedPath)
	return nil
}

func newTestSummarizer(gen TextGenerator, store AnalysisStore, storage *fakeStorage) (*SummarizerService, *[]time.Duration) {
	svc := NewSummarizerService(gen, store, storage, SummarizerConfig{
		Models:      []string{"model-a", "model-b"},
		MaxAttempts: 3,
	})

	var sleeps []time.Duration
	svc.sleep = func(ctx context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)
		return nil
	}
	return svc, &sleeps
}

func materialFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

func materialText() []byte {
	return []byte(strings.Repeat("Fotosintesis adalah proses tumbuhan mengubah cahaya matahari menjadi energi kimia. ", 5))
}

func TestGenerateSummaryRetriesRateLimitOnSameModel(t *testing.T) {
	gen := &scriptedGenerator{responses: []scriptedResponse{
		{err: fmt.Errorf("%w: model model-a", genai.ErrRateLimited)},
		{err: fmt.Errorf("%w: model model-a", genai.ErrRateLimited)},
		{text: validSummaryJSON},
	}}
	svc, sleeps := newTestSummarizer(gen, &fakeStore{}, newFakeStorage())

	summary, model, err := svc.generateSummary(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "model-a", model)
	assert.Equal(t, "Fotosintesis", summary.Material.Title)

	for _, call := range gen.calls {
		assert.Equal(t, "model-a", call.model)
	}
	assert.Len(t, gen.calls, 3)
	assert.Equal(t, []time.Duration{35 * time.Second, 35 * time.Second}, *sleeps)
}

func TestGenerateSummaryFallsBackOnHardFailure(t *testing.T) {
	gen := &scriptedGenerator{responses: []scriptedResponse{
		{err: errors.New("model not available")},
		{text: "```json\n" + validSummaryJSON + "\n```"},
	}}
	svc, sleeps := newTestSummarizer(gen, &fakeStore{}, newFakeStorage())

	summary, model, err := svc.generateSummary(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "model-b", model)
	assert.Equal(t, "Fotosintesis", summary.Material.Title)
	assert.Empty(t, *sleeps)
}

func TestGenerateSummaryRetriesMalformedThenMovesOn(t *testing.T) {
	gen := &scriptedGenerator{responses: []scriptedResponse{
		{text: "not json at all"},
		{text: `{"material": {}}`},
		{text: `{"material": {"title": "x", "sections": []}}`},
		{text: validSummaryJSON},
	}}
	svc, sleeps := newTestSummarizer(gen, &fakeStore{}, newFakeStorage())

	summary, model, err := svc.generateSummary(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "model-b", model)
	assert.NotNil(t, summary)

	assert.Equal(t, "model-a", gen.calls[0].model)
	assert.Equal(t, "model-a", gen.calls[2].model)
	assert.Equal(t, "model-b", gen.calls[3].model)
	assert.Equal(t, []time.Duration{3 * time.Second, 3 * time.Second}, *sleeps)
}

func TestGenerateSummaryAllModelsExhausted(t *testing.T) {
	gen := &scriptedGenerator{responses: []scriptedResponse{
		{err: errors.New("boom a")},
		{err: errors.New("boom b")},
	}}
	svc, _ := newTestSummarizer(gen, &fakeStore{}, newFakeStorage())

	_, _, err := svc.generateSummary(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all generation models failed")
	assert.Contains(t, err.Error(), "boom b")
}

func TestAnalyzeMaterialPersistsResult(t *testing.T) {
	gen := &scriptedGenerator{responses: []scriptedResponse{{text: validSummaryJSON}}}
	store := &fakeStore{}
	storage := newFakeStorage()
	svc, _ := newTestSummarizer(gen, store, storage)

	analysis, err := svc.AnalyzeMaterial(context.Background(), 7, AnalyzeMaterialInput{
		ClassID:        3,
		ClassLevel:     "SMA",
		GradeNumber:    11,
		LearningMethod: "Visual (Gambar, Video, Diagram)",
		File:           materialFileHeader(t, "bab-1.pdf", materialText()),
	})
	require.NoError(t, err)

	require.Len(t, store.created, 1)
	assert.Equal(t, analysis, store.created[0])
	assert.Equal(t, int64(7), analysis.UserID)
	assert.Equal(t, models.LevelSMA, analysis.ClassLevel)
	assert.Equal(t, "visual", analysis.LearningMethod)
	assert.Equal(t, "bab-1.pdf", analysis.FileName)
	assert.Equal(t, "Fotosintesis", analysis.Summary.Material.Title)

	_, err = uuid.Parse(analysis.MaterialID)
	assert.NoError(t, err, "material id should be a uuid")

	stored, err := svc.GetAnalysis(context.Background(), analysis.MaterialID)
	require.NoError(t, err)
	assert.Equal(t, analysis, stored)
}

func TestAnalyzeMaterialRejectsInvalidInput(t *testing.T) {
	svc, _ := newTestSummarizer(&scriptedGenerator{}, &fakeStore{}, newFakeStorage())

	t.Run("invalid class level", func(t *testing.T) {
		_, err := svc.AnalyzeMaterial(context.Background(), 1, AnalyzeMaterialInput{
			ClassLevel:     "University",
			LearningMethod: "visual",
			File:           materialFileHeader(t, "a.pdf", materialText()),
		})
		require.Error(t, err)
		var custom *apperrors.CustomError
		require.ErrorAs(t, err, &custom)
	})

	t.Run("invalid learning method", func(t *testing.T) {
		_, err := svc.AnalyzeMaterial(context.Background(), 1, AnalyzeMaterialInput{
			ClassLevel:     "SMA",
			LearningMethod: "telepathy",
			File:           materialFileHeader(t, "a.pdf", materialText()),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "visual, auditory")
	})
}

func TestAnalyzeMaterialUnreadableUploadIsCleanedUp(t *testing.T) {
	store := &fakeStore{}
	storage := newFakeStorage()
	svc, _ := newTestSummarizer(&scriptedGenerator{}, store, storage)

	_, err := svc.AnalyzeMaterial(context.Background(), 1, AnalyzeMaterialInput{
		ClassLevel:     "SMP",
		GradeNumber:    8,
		LearningMethod: "visual",
		File:           materialFileHeader(t, "empty.pdf", []byte("x")),
	})
	require.ErrorIs(t, err, apperrors.ErrNoExtractableText)
	assert.Empty(t, store.created)
	assert.Len(t, storage.deleted, 1)
}

func TestAnalyzeMaterialGenerationFailureDoesNotPersist(t *testing.T) {
	gen := &scriptedGenerator{responses: []scriptedResponse{
		{err: errors.New("boom")},
		{err: errors.New("boom")},
	}}
	store := &fakeStore{}
	storage := newFakeStorage()
	svc, _ := newTestSummarizer(gen, store, storage)

	_, err := svc.AnalyzeMaterial(context.Background(), 1, AnalyzeMaterialInput{
		ClassLevel:     "SD",
		GradeNumber:    4,
		LearningMethod: "visual",
		File:           materialFileHeader(t, "a.pdf", materialText()),
	})
	require.Error(t, err)
	assert.Empty(t, store.created)
	assert.Len(t, storage.deleted, 1)
}

func TestAnalyzeMaterialSaveFailure(t *testing.T) {
	gen := &scriptedGenerator{responses: []scriptedResponse{{text: validSummaryJSON}}}
	store := &fakeStore{createErr: errors.New("db down")}
	svc, _ := newTestSummarizer(gen, store, newFakeStorage())

	_, err := svc.AnalyzeMaterial(context.Background(), 1, AnalyzeMaterialInput{
		ClassLevel:     "SMK",
		GradeNumber:    10,
		LearningMethod: "visual",
		File:           materialFileHeader(t, "a.pdf", materialText()),
	})
	require.ErrorIs(t, err, apperrors.ErrAnalysisSaveFailed)
}

func TestSummarizerNotConfigured(t *testing.T) {
	svc := NewSummarizerService(nil, &fakeStore{}, newFakeStorage(), SummarizerConfig{})

	_, err := svc.AnalyzeMaterial(context.Background(), 1, AnalyzeMaterialInput{
		ClassLevel:     "SMA",
		LearningMethod: "visual",
		File:           materialFileHeader(t, "a.pdf", materialText()),
	})
	assert.ErrorIs(t, err, apperrors.ErrSummarizerNotConfigured)
}

func TestBuildSummaryPromptTruncatesMaterial(t *testing.T) {
	long := strings.Repeat("a", 500)
	prompt := buildSummaryPrompt(long, "SMA", 11, "visual", 100)
	assert.Contains(t, prompt, strings.Repeat("a", 100))
	assert.NotContains(t, prompt, strings.Repeat("a", 101))
}

func TestBuildSummaryPromptKeepsRunesWhole(t *testing.T) {
	// 99 ASCII bytes followed by a three-byte rune straddling the cap.
	long := strings.Repeat("a", 99) + "日本語"
	prompt := buildSummaryPrompt(long, "SMA", 11, "visual", 100)
	assert.True(t, utf8.ValidString(prompt))
	assert.Contains(t, prompt, strings.Repeat("a", 99))
	assert.NotContains(t, prompt, "日")
}
