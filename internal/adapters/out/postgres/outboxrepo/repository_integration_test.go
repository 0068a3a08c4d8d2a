package outboxrepo_test

import (
	"context"
	"testing"
	"time"

	"purchasing/internal/adapters/out/postgres/outboxrepo"
	"purchasing/internal/adapters/out/postgres/pgtest"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/ports"
	"purchasing/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type OutboxRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *outboxrepo.GormOutboxRepository
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = outboxrepo.NewGormOutboxRepository(suite.database.DB)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetUnpublished_ReturnsOldestFirstUpToLimit() {
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	newest := suite.message(base.Add(2 * time.Minute))
	oldest := suite.message(base)
	middle := suite.message(base.Add(time.Minute))
	suite.Require().NoError(suite.repository.Add(ctx, newest, oldest, middle))

	messages, err := suite.repository.GetUnpublished(ctx, 2)

	suite.Require().NoError(err)
	suite.Require().Len(messages, 2)
	suite.True(messages[0].ID.IsEqual(oldest.ID))
	suite.True(messages[1].ID.IsEqual(middle.ID))
	suite.JSONEq(`{"event_type":"order.submitted"}`, string(messages[0].Payload))
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestMarkPublished_HidesMessages() {
	ctx := context.Background()
	published := suite.message(time.Now())
	pending := suite.message(time.Now().Add(time.Second))
	suite.Require().NoError(suite.repository.Add(ctx, published, pending))

	suite.Require().NoError(suite.repository.MarkPublished(ctx, []kernel.UUID{published.ID}, time.Now()))

	messages, err := suite.repository.GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 1)
	suite.True(messages[0].ID.IsEqual(pending.ID))
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetUnpublished_SkipsRowsLockedByAnotherRelay() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.message(time.Now())))

	tx := suite.database.DB.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	locked, err := outboxrepo.NewGormOutboxRepository(tx).GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(locked, 1)

	other, err := suite.repository.GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(other)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetUnpublished_RejectsNonPositiveLimit() {
	_, err := suite.repository.GetUnpublished(context.Background(), 0)

	suite.Require().ErrorIs(err, errs.ErrValidation)
}

func (suite *OutboxRepositoryIntegrationTestSuite) message(occurredAt time.Time) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:          kernel.NewUUID(),
		AggregateID: kernel.NewUUID(),
		EventType:   "order.submitted",
		Payload:     []byte(`{"event_type":"order.submitted"}`),
		OccurredAt:  occurredAt,
	}
}

func TestOutboxRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(OutboxRepositoryIntegrationTestSuite))
}
