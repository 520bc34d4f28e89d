package postgres_test

import (
	"context"
	"strings"
	"testing"
	"time"

	postgres_adapter "github.com/Keloce-2005/Back-office/internal/adapters/out/postgres"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/migration"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/announcement"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/notification"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/core/ports"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work and its repositories
// against a PostgreSQL container migrated with the embedded SQL files.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	migrator, err := migration.New(dsn, zap.NewNop())
	suite.Require().NoError(err)
	suite.Require().NoError(migrator.Up())
	suite.Require().NoError(migrator.Close())

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates every table so tests do not see each other's rows.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE " + strings.Join(postgres_adapter.Tables(), ", ") + " CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newUser(role user.Role) *user.User {
	id := kernel.NewUUID()
	u, err := user.NewUser(id, "user-"+id.String()[:8], id.String()[:8]+"@example.com", "hash", role, time.Now())
	suite.Require().NoError(err)
	return u
}

func (suite *UnitOfWorkIntegrationTestSuite) newAnnouncement(authorID kernel.UUID) *announcement.Announcement {
	route, err := kernel.NewRoute("Paris", "Lyon")
	suite.Require().NoError(err)
	departure := time.Now().Add(24 * time.Hour)
	schedule, err := kernel.NewSchedule(departure, departure.Add(4*time.Hour))
	suite.Require().NoError(err)
	price, err := kernel.MoneyFromString("25.00")
	suite.Require().NoError(err)

	a, err := announcement.NewAnnouncement(kernel.NewUUID(), authorID, announcement.Details{
		Title:    "Fridge",
		Kind:     announcement.Parcel,
		Route:    route,
		Schedule: schedule,
		Price:    price,
	}, time.Now())
	suite.Require().NoError(err)
	return a
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.UserRepository())
	suite.NotNil(uow2.DeliveryRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersists() {
	ctx := context.Background()
	u := suite.newUser(user.Client)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UserRepository().Add(ctx, u))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().UserRepository().Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.Equal(u.Username(), loaded.Username())
	suite.Equal(user.Client, loaded.Role())
	suite.True(loaded.Wallet().IsZero())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscards() {
	ctx := context.Background()
	u := suite.newUser(user.Courier)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UserRepository().Add(ctx, u))
	suite.Len(uow.TrackedAggregates(), 1)
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Empty(uow.TrackedAggregates(), "Rolled back writes must not be pushed")
	_, err := suite.factory.Create().UserRepository().Get(ctx, u.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TracksWritesInOrder() {
	ctx := context.Background()
	u := suite.newUser(user.Client)
	n, err := notification.NewNotification(kernel.NewUUID(), u.ID(), "Hello", "World", notification.Info, "", time.Now())
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UserRepository().Add(ctx, u))
	suite.Require().NoError(uow.NotificationRepository().Add(ctx, n))
	suite.Require().NoError(uow.Commit(ctx))

	tracked := uow.TrackedAggregates()
	suite.Require().Len(tracked, 2)
	suite.Same(u, tracked[0])
	suite.Same(n, tracked[1])
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUserRepository_FindByLoginAndExists() {
	ctx := context.Background()
	u := suite.newUser(user.Merchant)
	repo := suite.factory.Create().UserRepository()
	suite.Require().NoError(repo.Add(ctx, u))

	byName, err := repo.FindByLogin(ctx, u.Username())
	suite.Require().NoError(err)
	suite.True(byName.ID().IsEqual(u.ID()))

	byEmail, err := repo.FindByLogin(ctx, u.Email())
	suite.Require().NoError(err)
	suite.True(byEmail.ID().IsEqual(u.ID()))

	exists, err := repo.Exists(ctx, "someone-else", u.Email())
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = repo.Exists(ctx, "someone-else", "else@example.com")
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAnnouncementRepository_GetForUpdateInsideTransaction() {
	ctx := context.Background()
	author := suite.newUser(user.Client)
	a := suite.newAnnouncement(author.ID())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UserRepository().Add(ctx, author))
	suite.Require().NoError(uow.AnnouncementRepository().Add(ctx, a))

	locked, err := uow.AnnouncementRepository().GetForUpdate(ctx, a.ID())
	suite.Require().NoError(err)
	locked.RegisterView()
	suite.Require().NoError(uow.AnnouncementRepository().Update(ctx, locked))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().AnnouncementRepository().Get(ctx, a.ID())
	suite.Require().NoError(err)
	suite.Equal(1, loaded.Views())
	suite.Equal(announcement.Active, loaded.Status())
	suite.True(loaded.Schedule().Equal(a.Schedule()))
	suite.True(loaded.Price().Equal(a.Price()))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
