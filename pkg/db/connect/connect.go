// select a database backend from configuration.
package connect

import (
	"context"
	"fmt"

	kconf "github.com/opst/extlite/pkg/configs/app"
	kdb "github.com/opst/extlite/pkg/db"
	kpg "github.com/opst/extlite/pkg/db/postgres"
	ksqlite "github.com/opst/extlite/pkg/db/sqlite"
)

// Open connects to the database described by conf.
func Open(ctx context.Context, conf kconf.DBConfig) (kdb.Database, error) {
	dsn, err := conf.DSN()
	if err != nil {
		return nil, err
	}

	switch conf.Driver {
	case kpg.Driver:
		return kpg.New(ctx, dsn)
	case ksqlite.Driver:
		return ksqlite.New(ctx, dsn)
	default:
		return nil, fmt.Errorf("%w: unknown driver %q", kconf.ErrInvalidConfig, conf.Driver)
	}
}
