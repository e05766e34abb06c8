package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/trend-digest/internal/logger"
	"github.com/MKhiriev/trend-digest/models"
)

// ErrNothingToSummarize is returned when the topic stats carry no headlines.
var ErrNothingToSummarize = errors.New("no news content to summarize")

// summarySystemPrompt instructs the model how to shape the digest: grouped
// by theme, concrete names and figures preserved, a source link per bullet,
// Markdown, under 500 words.
const summarySystemPrompt = `You are a professional news-digest assistant. Summarize the given list of trending headlines into a concise, insightful digest.

Requirements:
1. Group the news by theme and mark each theme with an emoji.
2. List the 2-3 most important points under each theme.
3. Add a short comment or background note for major events.
4. Keep the language tight and to the point.
5. Stay under 500 words in total.
6. Output Markdown.
7. IMPORTANT: keep every concrete name from the source text - company names, ticker symbols, person names, exact figures. Never replace them with vague wording like "a company" or "a stock".
8. IMPORTANT: append a source link to every bullet using Markdown link syntax [source](url). When several similar headlines are merged, keep the single most representative link.`

// Summarizer turns collected topic statistics into an AI-written digest.
type Summarizer struct {
	client *Client
	logger *logger.Logger
}

// NewSummarizer constructs a Summarizer over the given client.
func NewSummarizer(client *Client, log *logger.Logger) *Summarizer {
	return &Summarizer{client: client, logger: log}
}

// Available reports whether the underlying client is configured.
func (s *Summarizer) Available() bool {
	return s.client.Available()
}

// SummarizeNews builds a bounded prompt from the topic stats and asks the
// model for a digest. maxNews caps the number of headlines included;
// a value <= 0 means no cap.
func (s *Summarizer) SummarizeNews(ctx context.Context, stats []models.TopicStat, maxNews int) (string, error) {
	if !s.client.Available() {
		return "", ErrUnavailable
	}

	content := buildNewsContent(stats, maxNews)
	if content == "" {
		return "", ErrNothingToSummarize
	}

	prompt := fmt.Sprintf("Summarize the following trending news:\n\n%s\n\nFollow the format given in the system prompt.", content)

	s.logger.Debug().Int("chars", len(content)).Msg("requesting news summary")

	result, err := s.client.SimpleChat(ctx, prompt, summarySystemPrompt)
	if err != nil {
		return "", fmt.Errorf("summarize news: %w", err)
	}

	s.logger.Debug().Int("chars", len(result)).Msg("news summary generated")
	return result, nil
}

// buildNewsContent renders the topic stats into the prompt body: a keyword
// header per topic, one bullet per headline with its source and preferred
// link. maxNews caps the total number of headlines; <= 0 means unlimited.
func buildNewsContent(stats []models.TopicStat, maxNews int) string {
	var sb strings.Builder
	count := 0

	full := func() bool { return maxNews > 0 && count >= maxNews }

	for _, stat := range stats {
		if full() {
			break
		}
		if len(stat.Titles) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("[%s]\n", stat.Word))

		for _, title := range stat.Titles {
			if full() {
				break
			}
			if title.Title == "" {
				continue
			}

			if link := title.Link(); link != "" {
				sb.WriteString(fmt.Sprintf("- %s (%s) [link](%s)\n", title.Title, title.SourceName, link))
			} else {
				sb.WriteString(fmt.Sprintf("- %s (%s)\n", title.Title, title.SourceName))
			}
			count++
		}

		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}
