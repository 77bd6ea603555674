package ledger

import (
	"context"
	"testing"

	"github.com/blues/cfl/internal/access"
	"github.com/blues/cfl/internal/database"
	"github.com/blues/cfl/internal/event"
	"github.com/blues/cfl/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	testOwner    = "0xAa00000000000000000000000000000000000001"
	testAdmin    = "0xAa00000000000000000000000000000000000002"
	testCreator  = "0xCc00000000000000000000000000000000000001"
	testCreator2 = "0xCc00000000000000000000000000000000000002"
	testBacker   = "0xBb00000000000000000000000000000000000001"
	testBacker2  = "0xBb00000000000000000000000000000000000002"
	testToken    = "0x7700000000000000000000000000000000000001"
	testTreasury = "0xEe00000000000000000000000000000000000001"
	nullAddress  = "0x0000000000000000000000000000000000000000"
)

// fakeTransfer 可配置结果的转账服务替身
type fakeTransfer struct {
	ok    bool
	err   error
	calls int
}

func (f *fakeTransfer) TransferFrom(_ context.Context, _, _, _ string, _ uint64) (bool, error) {
	f.calls++
	return f.ok, f.err
}

type testEnv struct {
	db            *gorm.DB
	ac            *access.Control
	transfer      *fakeTransfer
	campaigns     *CampaignLogic
	contributions *ContributionLogic
	rewards       *RewardLogic
	queries       *QueryLogic
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	notifier, err := event.NewNotifier(db)
	require.NoError(t, err)
	t.Cleanup(notifier.Close)

	ac := access.NewControl(db, testOwner)
	transfer := &fakeTransfer{ok: true}

	return &testEnv{
		db:            db,
		ac:            ac,
		transfer:      transfer,
		campaigns:     NewCampaignLogic(db, ac, notifier),
		contributions: NewContributionLogic(db, ac, transfer, testTreasury, notifier),
		rewards:       NewRewardLogic(db, ac, notifier),
		queries:       NewQueryLogic(db),
	}
}

// createCampaign 审批创建者并创建一个活动
func (e *testEnv) createCampaign(t *testing.T, creator string) *model.Campaign {
	t.Helper()
	require.NoError(t, e.ac.ApproveCreator(testOwner, creator))
	campaign, err := e.campaigns.CreateCampaign(creator, "Community Solar Array", "rooftop panels for the district", 1000, "")
	require.NoError(t, err)
	return campaign
}

// contribute 以默认代币完成一次贡献
func (e *testEnv) contribute(t *testing.T, backer string, campaignID, amount uint64) {
	t.Helper()
	_, err := e.contributions.Contribute(context.Background(), backer, campaignID, amount, testToken)
	require.NoError(t, err)
}

// reloadCampaign 重新读取活动行
func (e *testEnv) reloadCampaign(t *testing.T, id uint64) *model.Campaign {
	t.Helper()
	var campaign model.Campaign
	require.NoError(t, e.db.First(&campaign, "id = ?", id).Error)
	return &campaign
}
