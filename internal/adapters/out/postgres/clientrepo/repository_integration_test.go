package clientrepo_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"waterdelivery/internal/adapters/out/postgres/clientrepo"
	"waterdelivery/internal/adapters/out/postgres/pgtest"
	"waterdelivery/internal/core/domain/model/client"
	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/ledger"
	"waterdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ClientRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *clientrepo.GormClientRepository
}

func (suite *ClientRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background(), func(db *gorm.DB) error {
		return db.AutoMigrate(&clientrepo.ClientDTO{})
	})
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *ClientRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("clients"))

	suite.repository = clientrepo.NewGormClientRepository(suite.pg.DB)
}

func (suite *ClientRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *ClientRepositoryIntegrationTestSuite) TestAdd_WithoutLocation() {
	ctx := context.Background()
	c := suite.newClient("+998901112233", nil)

	suite.Require().NoError(suite.repository.Add(ctx, c))

	got, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal("+998901112233", got.Phone())
	suite.Equal("Aziz", got.Name())
	suite.Nil(got.Location())
	suite.True(got.BalanceDebt().IsZero())
	suite.Nil(got.LastOrderAt())
}

func (suite *ClientRepositoryIntegrationTestSuite) TestAdd_DuplicatePhone_Fails() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newClient("+998900000001", nil)))

	err := suite.repository.Add(ctx, suite.newClient("+998900000001", nil))

	suite.Require().Error(err)
}

func (suite *ClientRepositoryIntegrationTestSuite) TestUpdate_PersistsBalanceAndLocation() {
	ctx := context.Background()
	c := suite.newClient("+998901234567", nil)
	suite.Require().NoError(suite.repository.Add(ctx, c))

	at := time.Now().UTC().Truncate(time.Microsecond)
	entry, err := ledger.NewEntry(kernel.NewUUID(), c.ID(), kernel.MoneyFromInt(24000), "manual", nil, at)
	suite.Require().NoError(err)
	suite.Require().NoError(c.ApplyLedgerEntry(entry))
	point, err := kernel.NewGeoPoint(41.3111, 69.2797)
	suite.Require().NoError(err)
	suite.Require().NoError(c.Relocate(point))
	c.TouchLastOrder(at)

	suite.Require().NoError(suite.repository.Update(ctx, c))

	got, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal("24000.00", got.BalanceDebt().String())
	suite.Require().NotNil(got.Location())
	suite.InDelta(41.3111, got.Location().Lat(), 1e-9)
	suite.InDelta(69.2797, got.Location().Lon(), 1e-9)
	suite.Require().NotNil(got.LastOrderAt())
	suite.True(at.Equal(*got.LastOrderAt()))
}

func (suite *ClientRepositoryIntegrationTestSuite) TestUpdate_UnknownClient_NotFound() {
	err := suite.repository.Update(context.Background(), suite.newClient("+998907777777", nil))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ClientRepositoryIntegrationTestSuite) TestGet_UnknownID_NotFound() {
	_, err := suite.repository.GetForUpdate(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ClientRepositoryIntegrationTestSuite) TestGetForUpdate_BlocksSecondLockerUntilCommit() {
	ctx := context.Background()
	c := suite.newClient("+998905555555", nil)
	suite.Require().NoError(suite.repository.Add(ctx, c))

	first := suite.pg.DB.Begin()
	suite.Require().NoError(first.Error)
	_, err := clientrepo.NewGormClientRepository(first).GetForUpdate(ctx, c.ID())
	suite.Require().NoError(err)

	var acquired atomic.Bool
	done := make(chan error, 1)
	go func() {
		second := suite.pg.DB.Begin()
		if second.Error != nil {
			done <- second.Error
			return
		}
		defer second.Rollback()

		_, lockErr := clientrepo.NewGormClientRepository(second).GetForUpdate(ctx, c.ID())
		acquired.Store(true)
		done <- lockErr
	}()

	suite.Never(acquired.Load, 300*time.Millisecond, 20*time.Millisecond)
	suite.Require().NoError(first.Commit().Error)

	select {
	case lockErr := <-done:
		suite.Require().NoError(lockErr)
	case <-time.After(5 * time.Second):
		suite.Fail("second locker did not acquire the row after commit")
	}
}

func (suite *ClientRepositoryIntegrationTestSuite) newClient(phone string, location *kernel.GeoPoint) *client.Client {
	c, err := client.NewClient(kernel.NewUUID(), phone, "Aziz", location)
	suite.Require().NoError(err)
	return c
}

func TestClientRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	suite.Run(t, new(ClientRepositoryIntegrationTestSuite))
}
