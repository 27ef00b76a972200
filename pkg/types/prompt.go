package types

type Prompt struct {
	ID        int64  `json:"id" db:"id"`
	Question  string `json:"question" db:"question"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}

type Answer struct {
	ID        int64  `json:"id" db:"id"`
	EntryID   int64  `json:"entry_id" db:"entry_id"`
	PromptID  int64  `json:"prompt_id" db:"prompt_id"`
	Content   string `json:"content" db:"content"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}

// AnswerWithPrompt is the entry read shape: the answer joined with the
// question it replies to.
type AnswerWithPrompt struct {
	Answer
	Question string `json:"question" db:"question"`
}
