package driver

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

const (
	DialectNeo4j    = "neo4j"
	DialectMemgraph = "memgraph"
)

// Neo4jDriver speaks Bolt to Neo4j or Memgraph. Only index DDL differs between the two.
type Neo4jDriver struct {
	Driver   neo4j.DriverWithContext
	Database string
	Dialect  string
	Logger   *zap.Logger
}

type Options struct {
	URI      string
	User     string
	Password string
	Database string
	Dialect  string
}

func NewNeo4jDriver(ctx context.Context, opts Options, logger *zap.Logger) (*Neo4jDriver, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	driver, err := neo4j.NewDriverWithContext(opts.URI, neo4j.BasicAuth(opts.User, opts.Password, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("failed to reach graph store at %s: %w", opts.URI, err)
	}

	dialect := opts.Dialect
	if dialect == "" {
		dialect = DialectNeo4j
	}

	logger.Info("connected to graph store", zap.String("uri", opts.URI), zap.String("dialect", dialect))
	return &Neo4jDriver{Driver: driver, Database: opts.Database, Dialect: dialect, Logger: logger}, nil
}

func (d *Neo4jDriver) Close(ctx context.Context) error {
	return d.Driver.Close(ctx)
}

func (d *Neo4jDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	var opts []neo4j.ExecuteQueryConfigurationOption
	if d.Database != "" {
		opts = append(opts, neo4j.ExecuteQueryWithDatabase(d.Database))
	}
	result, err := neo4j.ExecuteQuery(ctx, d.Driver, query, params, neo4j.EagerResultTransformer, opts...)
	if err != nil {
		return neo4j.EagerResult{}, fmt.Errorf("failed to execute query: %w", err)
	}
	return *result, nil
}

func (d *Neo4jDriver) ExecuteBatch(ctx context.Context, statements []Statement) error {
	session := d.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: d.Database,
	})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, st := range statements {
			res, err := tx.Run(ctx, st.Query, st.Params)
			if err != nil {
				return nil, err
			}
			if _, err := res.Consume(ctx); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("failed to execute batch of %d statements: %w", len(statements), err)
	}
	return nil
}

// BuildIndices creates uniqueness constraints on every merge key. Failures are logged and
// skipped because most of them mean the constraint already exists.
func (d *Neo4jDriver) BuildIndices(ctx context.Context) error {
	for _, q := range IndexQueries(d.Dialect) {
		if _, err := d.ExecuteQuery(ctx, q, nil); err != nil {
			d.Logger.Warn("failed to create index", zap.String("query", q), zap.Error(err))
		}
	}
	return nil
}
