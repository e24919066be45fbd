package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/docker/docker/client"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/huycopper/flashmind/internal/database"
	"github.com/huycopper/flashmind/internal/interfaces"
	"github.com/huycopper/flashmind/internal/models"
	"github.com/huycopper/flashmind/migrations"
	"github.com/huycopper/flashmind/pkg/migration"
)

// RatingIntegrationSuite runs the rating repository against a real
// PostgreSQL, since the aggregate recompute lives entirely in SQL.
type RatingIntegrationSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	pool        *pgxpool.Pool
	userRepo    interfaces.UserRepository
	deckRepo    interfaces.DeckRepository
	ratingRepo  interfaces.RatingRepository
}

func (s *RatingIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	var err error

	s.pgContainer, err = postgres.Run(s.ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("flashmind_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
	)
	require.NoError(s.T(), err, "Failed to start postgres container")

	connStr, err := s.pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "Failed to get postgres connection string")

	s.pool, err = pgxpool.New(s.ctx, connStr)
	require.NoError(s.T(), err, "Failed to connect to test postgres")

	migrator := migration.NewMigrator(migration.Config{
		MigrationsPath: ".",
		MigrationsFS:   migrations.FS,
	}, s.pool)
	require.NoError(s.T(), migrator.Up(), "Failed to apply migrations")

	logger := zap.NewNop()
	s.userRepo = database.NewPgUserRepository(s.pool, logger)
	s.deckRepo = database.NewPgDeckRepository(s.pool, logger)
	s.ratingRepo = database.NewPgRatingRepository(s.pool, logger)
}

func (s *RatingIntegrationSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

func (s *RatingIntegrationSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, "TRUNCATE TABLE users RESTART IDENTITY CASCADE")
	require.NoError(s.T(), err, "Failed to truncate users table")
}

func (s *RatingIntegrationSuite) createUser(username string) *models.User {
	user := &models.User{
		Username:     username,
		DisplayName:  username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(s.T(), s.userRepo.Create(s.ctx, user))
	return user
}

func (s *RatingIntegrationSuite) createDeck(owner *models.User) *models.Deck {
	deck := &models.Deck{
		OwnerID:   owner.ID,
		OwnerName: owner.DisplayName,
		Title:     "Biology 101",
		Tags:      []string{},
		IsPublic:  true,
	}
	require.NoError(s.T(), s.deckRepo.Create(s.ctx, deck))
	return deck
}

func (s *RatingIntegrationSuite) TestRate_RecomputesAggregates() {
	t := s.T()
	alice := s.createUser("alice")
	bob := s.createUser("bob")
	deck := s.createDeck(alice)

	require.NoError(t, s.ratingRepo.Rate(s.ctx, deck.ID, alice.ID, 4))
	require.NoError(t, s.ratingRepo.Rate(s.ctx, deck.ID, bob.ID, 2))

	got, err := s.deckRepo.GetByID(s.ctx, deck.ID)
	require.NoError(t, err)
	require.InDelta(t, 3.0, got.AverageRating, 0.001)
	require.Equal(t, 2, got.RatingCount)

	// Re-rating replaces the previous value without growing the count.
	require.NoError(t, s.ratingRepo.Rate(s.ctx, deck.ID, alice.ID, 5))

	got, err = s.deckRepo.GetByID(s.ctx, deck.ID)
	require.NoError(t, err)
	require.InDelta(t, 3.5, got.AverageRating, 0.001)
	require.Equal(t, 2, got.RatingCount)
}

func (s *RatingIntegrationSuite) TestRate_AverageRoundsToOneDecimal() {
	t := s.T()
	alice := s.createUser("alice")
	bob := s.createUser("bob")
	carol := s.createUser("carol")
	deck := s.createDeck(alice)

	require.NoError(t, s.ratingRepo.Rate(s.ctx, deck.ID, alice.ID, 5))
	require.NoError(t, s.ratingRepo.Rate(s.ctx, deck.ID, bob.ID, 4))
	require.NoError(t, s.ratingRepo.Rate(s.ctx, deck.ID, carol.ID, 4))

	// 13/3 = 4.333..., stored as 4.3.
	got, err := s.deckRepo.GetByID(s.ctx, deck.ID)
	require.NoError(t, err)
	require.InDelta(t, 4.3, got.AverageRating, 0.001)
	require.Equal(t, 3, got.RatingCount)
}

func (s *RatingIntegrationSuite) TestGetValue() {
	t := s.T()
	alice := s.createUser("alice")
	deck := s.createDeck(alice)

	_, err := s.ratingRepo.GetValue(s.ctx, deck.ID, alice.ID)
	require.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, s.ratingRepo.Rate(s.ctx, deck.ID, alice.ID, 4))

	value, err := s.ratingRepo.GetValue(s.ctx, deck.ID, alice.ID)
	require.NoError(t, err)
	require.Equal(t, 4, value)
}

func (s *RatingIntegrationSuite) TestRate_UnknownDeck() {
	t := s.T()
	alice := s.createUser("alice")

	err := s.ratingRepo.Rate(s.ctx, uuid.New(), alice.ID, 3)
	require.ErrorIs(t, err, models.ErrDeckNotFound)
}

func TestRatingIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	cli, err := client.NewClientWithOpts(client.FromEnv)
	if err != nil {
		t.Fatalf("Docker client init error: %v. Ensure Docker is running and accessible.", err)
	}
	if _, err := cli.Ping(context.Background()); err != nil {
		t.Fatalf("Docker daemon is not running or accessible: %v", err)
	}
	cli.Close()

	suite.Run(t, new(RatingIntegrationSuite))
}
