package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/teamadmin/internal/dbx"
	"github.com/dmitrijs2005/teamadmin/internal/server/repositories/ads"
	"github.com/dmitrijs2005/teamadmin/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Ads(db dbx.DBTX) ads.Repository
	Users(db dbx.DBTX) users.Repository
}
