package sqlstore

import "context"

type SqlProviderAchieve interface {
	GetMaster(ctx context.Context) Executor
	GetReplica(ctx context.Context) Executor
}

type Table interface {
	Name() string
}

// CommonFields is embedded by every table store and carries the provider,
// table name and column list.
type CommonFields struct {
	provider   SqlProviderAchieve
	table      string
	allColumns []string
}

func (c *CommonFields) SetProvider(p SqlProviderAchieve) {
	c.provider = p
}

func (c *CommonFields) SetTable(t Table) {
	c.table = t.Name()
}

func (c *CommonFields) SetAllColumns(columns ...string) {
	c.allColumns = columns
}

func (c *CommonFields) GetTable() string {
	return c.table
}

func (c *CommonFields) GetAllColumns() []string {
	return c.allColumns
}

func (c *CommonFields) GetMaster(ctx context.Context) Executor {
	return c.provider.GetMaster(ctx)
}

func (c *CommonFields) GetReplica(ctx context.Context) Executor {
	return c.provider.GetReplica(ctx)
}
