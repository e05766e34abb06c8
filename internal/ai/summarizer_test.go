package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/trend-digest/internal/logger"
	"github.com/MKhiriev/trend-digest/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStats() []models.TopicStat {
	return []models.TopicStat{
		{
			Word: "AI",
			Titles: []models.NewsTitle{
				{Title: "Model released", SourceName: "weibo", URL: "https://example.com/1"},
				{Title: "Chips in demand", SourceName: "zhihu", MobileURL: "https://m.example.com/2"},
			},
		},
		{
			Word: "Energy",
			Titles: []models.NewsTitle{
				{Title: "Prices fall", SourceName: "toutiao"},
			},
		},
	}
}

func TestBuildNewsContent(t *testing.T) {
	got := buildNewsContent(sampleStats(), 0)

	expected := "[AI]\n" +
		"- Model released (weibo) [link](https://example.com/1)\n" +
		"- Chips in demand (zhihu) [link](https://m.example.com/2)\n" +
		"\n" +
		"[Energy]\n" +
		"- Prices fall (toutiao)"
	assert.Equal(t, expected, got)
}

func TestBuildNewsContent_CapsHeadlines(t *testing.T) {
	got := buildNewsContent(sampleStats(), 1)

	assert.Contains(t, got, "Model released")
	assert.NotContains(t, got, "Chips in demand")
	assert.NotContains(t, got, "[Energy]")
}

func TestBuildNewsContent_SkipsEmpty(t *testing.T) {
	stats := []models.TopicStat{
		{Word: "empty topic"},
		{Word: "blank title", Titles: []models.NewsTitle{{Title: "", SourceName: "x"}}},
	}

	assert.Empty(t, buildNewsContent(stats, 0))
}

func TestSummarizer_Unavailable(t *testing.T) {
	s := NewSummarizer(NewClient(ClientConfig{}), logger.Nop())

	_, err := s.SummarizeNews(context.Background(), sampleStats(), 0)

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, s.Available())
}

func TestSummarizer_NothingToSummarize(t *testing.T) {
	s := NewSummarizer(NewClient(ClientConfig{APIKey: "key"}), logger.Nop())

	_, err := s.SummarizeNews(context.Background(), nil, 0)

	assert.ErrorIs(t, err, ErrNothingToSummarize)
}

func TestSummarizer_SummarizeNews(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"## Digest"}}]}`))
	}))
	t.Cleanup(srv.Close)
	s := NewSummarizer(NewClient(ClientConfig{APIKey: "key", BaseURL: srv.URL}), logger.Nop())

	// Act
	got, err := s.SummarizeNews(context.Background(), sampleStats(), 10)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "## Digest", got)
}
