package types

type TableName string

func (t TableName) Name() string {
	return string(t)
}

const (
	TABLE_USER      TableName = "diary_user"
	TABLE_SECTION   TableName = "diary_section"
	TABLE_SUBTOPIC  TableName = "diary_subtopic"
	TABLE_ENTRY     TableName = "diary_entry"
	TABLE_TAG       TableName = "diary_tag"
	TABLE_ENTRY_TAG TableName = "diary_entry_tag"
	TABLE_PROMPT    TableName = "diary_prompt"
	TABLE_ANSWER    TableName = "diary_answer"
)
