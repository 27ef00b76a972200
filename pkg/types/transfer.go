package types

const EXPORT_VERSION = "1.0"

// ExportData is the full backup document. Import accepts the same shape
// and is additive: tags are upserted by name, entries are appended into
// sections matched by name, unknown sections are skipped.
type ExportData struct {
	ExportDate string          `json:"export_date"`
	Version    string          `json:"version"`
	Sections   []ExportSection `json:"sections"`
	Tags       []Tag           `json:"tags"`
	Prompts    []Prompt        `json:"prompts"`
}

type ExportSection struct {
	Section
	Subtopics []Subtopic    `json:"subtopics"`
	Entries   []ExportEntry `json:"entries"`
}

type ExportEntry struct {
	Entry
	Tags    []Tag              `json:"tags"`
	Answers []AnswerWithPrompt `json:"answers"`
}

type ImportResult struct {
	TagsUpserted    int `json:"tags_upserted"`
	EntriesImported int `json:"entries_imported"`
	SectionsSkipped int `json:"sections_skipped"`
}
