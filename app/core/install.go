package core

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/reflectdiary/diary-api/pkg/types"
	"github.com/reflectdiary/diary-api/pkg/utils"
)

// DefaultPassword protects a fresh install until the user changes it.
const DefaultPassword = "password"

// DefaultSections are the 12 seeded self-reflection categories. They are
// upserted by name on every start; user data in them is never touched.
var DefaultSections = []types.Section{
	{Name: "Basic information", Description: "Core facts about yourself, biography, key details", SortOrder: 1},
	{Name: "Life story", Description: "Important events, stages, turning points", SortOrder: 2},
	{Name: "Personality", Description: "Character, temperament, behavioral traits", SortOrder: 3},
	{Name: "Values and beliefs", Description: "Worldview, principles, convictions", SortOrder: 4},
	{Name: "Body and health", Description: "Physical condition, wellbeing, healthy habits", SortOrder: 5},
	{Name: "Social life", Description: "Relationships, communication, social roles", SortOrder: 6},
	{Name: "Interests and creativity", Description: "Hobbies, passions, creative expression", SortOrder: 7},
	{Name: "Mind and motivation", Description: "Thinking, learning, aspirations", SortOrder: 8},
	{Name: "Goals and dreams", Description: "Plans, ambitions, desires", SortOrder: 9},
	{Name: "Shadow side", Description: "Fears, weaknesses, problems", SortOrder: 10},
	{Name: "Relationship with self", Description: "Self-esteem, inner dialogue, self-acceptance", SortOrder: 11},
	{Name: "Reflection and growth", Description: "Insights, conclusions, personal development", SortOrder: 12},
}

// DefaultPrompts are the reflection questions offered while writing.
var DefaultPrompts = []string{
	"What did you feel in that moment?",
	"Why do you think this matters to you?",
	"What would you tell a friend in the same situation?",
	"What does this say about what you value?",
	"What would you like to do differently next time?",
}

// Install prepares a fresh database: schema, the singleton credential row
// and the seeded sections and prompts. Safe to run on every start.
func (s *Core) Install() error {
	if err := s.Store().Install(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*20)
	defer cancel()

	total, err := s.Store().UserStore().Total(ctx)
	if err != nil {
		return err
	}
	if total == 0 {
		hash, err := utils.GenPasswordHash(DefaultPassword)
		if err != nil {
			return err
		}
		now := time.Now().Unix()
		if err = s.Store().UserStore().Create(ctx, types.User{
			ID:           utils.GenSpecID(),
			PasswordHash: hash,
			UpdatedAt:    now,
			CreatedAt:    now,
		}); err != nil {
			return err
		}
		slog.Warn("Created initial user with the default password, change it in settings",
			slog.String("component", "core.Install"))
	}

	for _, section := range DefaultSections {
		exist, err := s.Store().SectionStore().GetByName(ctx, section.Name)
		if err != nil && err != sql.ErrNoRows {
			return err
		}
		if exist != nil {
			continue
		}
		section.ID = utils.GenSpecID()
		section.CreatedAt = time.Now().Unix()
		if err = s.Store().SectionStore().Create(ctx, section); err != nil {
			return err
		}
	}

	prompts, err := s.Store().PromptStore().List(ctx)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	known := make(map[string]struct{}, len(prompts))
	for _, prompt := range prompts {
		known[prompt.Question] = struct{}{}
	}
	for _, question := range DefaultPrompts {
		if _, exist := known[question]; exist {
			continue
		}
		if err = s.Store().PromptStore().Create(ctx, types.Prompt{
			ID:        utils.GenSpecID(),
			Question:  question,
			CreatedAt: time.Now().Unix(),
		}); err != nil {
			return err
		}
	}

	return nil
}
