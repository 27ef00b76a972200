package sqlstore

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/reflectdiary/diary-api/app/store"
	"github.com/reflectdiary/diary-api/pkg/register"
	"github.com/reflectdiary/diary-api/pkg/sqlstore"
)

//go:embed migrations/schema.sql
var schemaSQL string

type (
	CommonFields       = sqlstore.CommonFields
	SqlProviderAchieve = sqlstore.SqlProviderAchieve
)

var provider = &Provider{
	stores: &Stores{},
}

func GetProvider() *Provider {
	return provider
}

type Provider struct {
	*sqlstore.SqlProvider
	stores *Stores
}

type Stores struct {
	store.UserStore
	store.SectionStore
	store.SubtopicStore
	store.EntryStore
	store.TagStore
	store.EntryTagStore
	store.PromptStore
	store.AnswerStore
}

type RegisterKey struct{}

func MustSetup(m sqlstore.ConnectConfig, s ...sqlstore.ConnectConfig) func() *Provider {
	provider.SqlProvider = sqlstore.MustSetupProvider(m, s...)

	for _, f := range register.ResolveFuncHandlers[*Provider](RegisterKey{}) {
		f(provider)
	}

	return func() *Provider {
		return provider
	}
}

// Install applies the embedded schema. Statements are idempotent so this
// runs on every start.
func (p *Provider) Install() error {
	for _, statement := range strings.Split(schemaSQL, ";") {
		statement = strings.TrimSpace(statement)
		if statement == "" {
			continue
		}
		if _, err := p.GetMasterDB().Exec(statement); err != nil {
			return fmt.Errorf("sqlstore install: %w", err)
		}
	}
	return nil
}

func (p *Provider) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return p.SqlProvider.Transaction(ctx, fn)
}

func (p *Provider) UserStore() store.UserStore {
	return p.stores.UserStore
}

func (p *Provider) SectionStore() store.SectionStore {
	return p.stores.SectionStore
}

func (p *Provider) SubtopicStore() store.SubtopicStore {
	return p.stores.SubtopicStore
}

func (p *Provider) EntryStore() store.EntryStore {
	return p.stores.EntryStore
}

func (p *Provider) TagStore() store.TagStore {
	return p.stores.TagStore
}

func (p *Provider) EntryTagStore() store.EntryTagStore {
	return p.stores.EntryTagStore
}

func (p *Provider) PromptStore() store.PromptStore {
	return p.stores.PromptStore
}

func (p *Provider) AnswerStore() store.AnswerStore {
	return p.stores.AnswerStore
}

func ErrorSqlBuild(err error) error {
	return fmt.Errorf("sql build error: %w", err)
}
