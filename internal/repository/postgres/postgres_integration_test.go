package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"team-registration/config"
	"team-registration/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	first, err := repo.CreateApplication(ctx, entities.Application{
		TeamName:      "Falcons",
		Region:        "North",
		ContactPerson: "Anna Smirnova",
		LeaderName:    "Ivan Petrov",
		Login:         "IVANPETROV1a2b3c",
		Password:      "secret-one",
	})
	require.NoError(t, err)
	require.Positive(t, first.ID)
	require.False(t, first.SubmittedAt.IsZero())

	// Same login again violates the unique constraint.
	_, err = repo.CreateApplication(ctx, entities.Application{
		TeamName:      "Other",
		Region:        "South",
		ContactPerson: "Someone",
		LeaderName:    "Ivan Petrov",
		Login:         "IVANPETROV1a2b3c",
		Password:      "secret-two",
	})
	require.ErrorIs(t, err, entities.ErrLoginExists)

	second, err := repo.CreateApplication(ctx, entities.Application{
		TeamName:      "Hawks",
		Region:        "South",
		ContactPerson: "Boris",
		LeaderName:    "Olga",
		Login:         "OLGA9f8e7d",
		Password:      "secret-three",
	})
	require.NoError(t, err)
	require.Greater(t, second.ID, first.ID)

	apps, err := repo.ListApplications(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	require.Equal(t, first.ID, apps[0].ID)
	require.Equal(t, second.ID, apps[1].ID)

	// Round-trip of submitted fields.
	require.Equal(t, "Falcons", apps[0].TeamName)
	require.Equal(t, "North", apps[0].Region)
	require.Equal(t, "Anna Smirnova", apps[0].ContactPerson)
	require.Equal(t, "Ivan Petrov", apps[0].LeaderName)
	require.Equal(t, "secret-one", apps[0].Password)

	fetched, err := repo.GetApplication(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, first.Login, fetched.Login)

	_, err = repo.GetApplication(ctx, 999999)
	require.ErrorIs(t, err, entities.ErrApplicationNotFound)
}

func TestRepositoryTeamMembersIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	app, err := repo.CreateApplication(ctx, entities.Application{
		TeamName: "Falcons", Region: "North", ContactPerson: "Anna",
		LeaderName: "Ivan Petrov", Login: "IVANPETROVaabbcc", Password: "pw",
	})
	require.NoError(t, err)

	other, err := repo.CreateApplication(ctx, entities.Application{
		TeamName: "Hawks", Region: "South", ContactPerson: "Boris",
		LeaderName: "Olga", Login: "OLGAddeeff", Password: "pw2",
	})
	require.NoError(t, err)

	// Unknown parent is rejected and persists nothing.
	_, err = repo.AddTeamMember(ctx, entities.TeamMember{
		ApplicationID: 999999, FullName: "Ghost", DateOfBirth: "2000-01-01",
		Phone: "+1", Email: "g@example.com", Role: "participant",
	})
	require.ErrorIs(t, err, entities.ErrApplicationNotFound)

	members, err := repo.ListTeamMembers(ctx, 999999)
	require.NoError(t, err)
	require.Empty(t, members)

	sport := "basketball"
	card := "STU-42"
	reason := "wheelchair user"
	coach, err := repo.AddTeamMember(ctx, entities.TeamMember{
		ApplicationID: app.ID, FullName: "Ivan Petrov", DateOfBirth: "1980-03-14",
		Phone: "+100", Email: "ivan@example.com", Role: "coach", Sport: &sport,
	})
	require.NoError(t, err)
	require.Positive(t, coach.ID)

	player, err := repo.AddTeamMember(ctx, entities.TeamMember{
		ApplicationID: app.ID, FullName: "Petr Ivanov", DateOfBirth: "2008-11-02",
		Phone: "+101", Email: "petr@example.com", Role: "participant",
		Sport: &sport, StudentCard: &card, Disability: true, DisabilityReason: &reason,
	})
	require.NoError(t, err)
	require.Greater(t, player.ID, coach.ID)

	_, err = repo.AddTeamMember(ctx, entities.TeamMember{
		ApplicationID: other.ID, FullName: "Stranger", DateOfBirth: "2007-07-07",
		Phone: "+102", Email: "s@example.com", Role: "escort",
	})
	require.NoError(t, err)

	roster, err := repo.ListTeamMembers(ctx, app.ID)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	require.Equal(t, coach.ID, roster[0].ID)
	require.Equal(t, player.ID, roster[1].ID)

	// Round-trip of member fields including optionals.
	require.Equal(t, "Petr Ivanov", roster[1].FullName)
	require.Equal(t, "2008-11-02", roster[1].DateOfBirth)
	require.Equal(t, "+101", roster[1].Phone)
	require.Equal(t, "petr@example.com", roster[1].Email)
	require.Equal(t, "participant", roster[1].Role)
	require.NotNil(t, roster[1].StudentCard)
	require.Equal(t, card, *roster[1].StudentCard)
	require.True(t, roster[1].Disability)
	require.NotNil(t, roster[1].DisabilityReason)
	require.Equal(t, reason, *roster[1].DisabilityReason)
	require.Nil(t, roster[0].StudentCard)
	require.False(t, roster[0].Disability)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=team_registration_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Documents: config.DocumentsConfig{
			StaticDir:      t.TempDir(),
			UploadsDir:     t.TempDir(),
			MaxUploadFiles: 5,
		},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "team_registration_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=team_registration_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
