package models

// NewsTitle is one trending headline collected from a source platform.
type NewsTitle struct {
	// Title is the headline text.
	Title string `json:"title"`

	// SourceName is the human-readable platform name.
	SourceName string `json:"source_name"`

	// URL is the canonical article link.
	URL string `json:"url"`

	// MobileURL is the mobile-friendly link, preferred when present.
	MobileURL string `json:"mobile_url"`
}

// Link returns the preferred link of the headline: the mobile URL when set,
// the canonical URL otherwise.
func (t NewsTitle) Link() string {
	if t.MobileURL != "" {
		return t.MobileURL
	}
	return t.URL
}

// TopicStat groups the headlines matched by one tracked keyword.
type TopicStat struct {
	// Word is the tracked keyword.
	Word string `json:"word"`

	// Titles are the matched headlines, most relevant first.
	Titles []NewsTitle `json:"titles"`
}
