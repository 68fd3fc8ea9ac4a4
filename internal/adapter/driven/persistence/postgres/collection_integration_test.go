//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/Wyydra/board/internal/adapter/driven/persistence/postgres"
	"github.com/Wyydra/board/internal/core/domain"
	"github.com/Wyydra/board/internal/core/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CollectionSuite struct {
	suite.Suite
	pool       *pgxpool.Pool
	collection *postgres.Collection
}

func (s *CollectionSuite) SetupSuite() {
	dockerPool, err := dockertest.NewPool("")
	require.NoError(s.T(), err, "Could not construct docker pool")

	resource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres", Tag: "16",
		Env: []string{"POSTGRES_USER=board", "POSTGRES_PASSWORD=board", "POSTGRES_DB=board"},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(s.T(), err, "Could not start PostgreSQL resource")

	s.T().Cleanup(func() {
		require.NoError(s.T(), dockerPool.Purge(resource))
	})

	dsn := fmt.Sprintf("postgres://board:board@%s/board?sslmode=disable", resource.GetHostPort("5432/tcp"))
	require.NoError(s.T(), dockerPool.Retry(func() error {
		var err error
		s.pool, err = postgres.Connect(context.Background(), dsn)
		return err
	}), "Could not connect to PostgreSQL")

	s.collection = postgres.NewCollection(s.pool, "messages")
	require.NoError(s.T(), s.collection.Migrate(context.Background()))
}

func (s *CollectionSuite) TearDownSuite() {
	s.pool.Close()
}

func (s *CollectionSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), "TRUNCATE messages")
	s.Require().NoError(err)
}

func (s *CollectionSuite) TestCreateListDelete() {
	ctx := context.Background()
	req := s.Require()

	first, err := s.collection.Create(ctx, "first")
	req.NoError(err)
	second, err := s.collection.Create(ctx, "second")
	req.NoError(err)
	req.False(first.ID.IsZero())

	messages, err := s.collection.List(ctx)
	req.NoError(err)
	req.Equal([]domain.MessageID{second.ID, first.ID}, []domain.MessageID{messages[0].ID, messages[1].ID})

	req.NoError(s.collection.Delete(ctx, first.ID))
	messages, err = s.collection.List(ctx)
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal("second", messages[0].Content)
}

func (s *CollectionSuite) TestBoardAgainstPostgres() {
	ctx := context.Background()
	req := s.Require()
	board := service.NewBoardService(s.collection, nil, 0)

	req.NoError(board.Post(ctx, "hello"))
	state := board.State()
	req.Len(state.Messages, 1)
	req.Empty(state.Draft)

	req.NoError(board.Delete(ctx, state.Messages[0].ID))
	req.Empty(board.State().Messages)
}

func TestCollectionSuite(t *testing.T) {
	suite.Run(t, new(CollectionSuite))
}
