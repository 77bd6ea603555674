package ledger

import (
	"testing"

	"github.com/blues/cfl/internal/access"
	"github.com/blues/cfl/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCampaign(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.campaigns.CreateCampaign(testCreator, "t", "d", 100, "")
	assert.ErrorIs(t, err, ErrCreatorNotApproved)

	_, err = env.campaigns.CreateCampaign(nullAddress, "t", "d", 100, "")
	assert.ErrorIs(t, err, ErrNullCreator)

	require.NoError(t, env.ac.ApproveCreator(testOwner, testCreator))
	first, err := env.campaigns.CreateCampaign(testCreator, "Solar", "panels", 1000, "https://img.example/1.png")
	require.NoError(t, err)

	assert.Equal(t, uint64(1), first.ID)
	assert.Equal(t, model.NormalizeAddress(testCreator), first.Creator)
	assert.Equal(t, model.CampaignStatusActive, first.Status)
	assert.True(t, first.IsActive)
	assert.Greater(t, first.StartTimestamp, int64(0))
	assert.Zero(t, first.EndTimestamp)
	assert.Zero(t, first.AmountRaised)

	// ID来自单调序列
	second, err := env.campaigns.CreateCampaign(testCreator, "Library", "books", 500, "")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), second.ID)
}

func TestCreateCampaignWhilePlatformPaused(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.ac.ApproveCreator(testOwner, testCreator))
	require.NoError(t, env.ac.PausePlatform(testOwner))

	_, err := env.campaigns.CreateCampaign(testCreator, "t", "d", 100, "")
	assert.ErrorIs(t, err, access.ErrPlatformPaused)

	require.NoError(t, env.ac.UnpausePlatform(testOwner))
	_, err = env.campaigns.CreateCampaign(testCreator, "t", "d", 100, "")
	assert.NoError(t, err)
}

func TestGetCampaign(t *testing.T) {
	env := newTestEnv(t)
	created := env.createCampaign(t, testCreator)

	found, err := env.campaigns.GetCampaign(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = env.campaigns.GetCampaign(42)
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestSetCampaignEndTime(t *testing.T) {
	env := newTestEnv(t)
	campaign := env.createCampaign(t, testCreator)

	assert.ErrorIs(t, env.campaigns.SetCampaignEndTime(testBacker, campaign.ID, 12345), ErrNotCreator)
	assert.ErrorIs(t, env.campaigns.SetCampaignEndTime(testCreator, campaign.ID, 0), ErrInvalidEndTime)
	assert.ErrorIs(t, env.campaigns.SetCampaignEndTime(testCreator, 42, 12345), ErrCampaignNotFound)

	require.NoError(t, env.campaigns.SetCampaignEndTime(testCreator, campaign.ID, 12345))
	assert.Equal(t, int64(12345), env.reloadCampaign(t, campaign.ID).EndTimestamp)
}

func TestUpdateCampaignStatus(t *testing.T) {
	env := newTestEnv(t)
	campaign := env.createCampaign(t, testCreator)

	err := env.campaigns.UpdateCampaignStatus(testBacker, campaign.ID, model.CampaignStatusPaused)
	assert.ErrorIs(t, err, ErrNotCreator)

	err = env.campaigns.UpdateCampaignStatus(testCreator, campaign.ID, model.CampaignStatusCompleted)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	require.NoError(t, env.campaigns.UpdateCampaignStatus(testCreator, campaign.ID, model.CampaignStatusPaused))
	assert.Equal(t, model.CampaignStatusPaused, env.reloadCampaign(t, campaign.ID).Status)

	require.NoError(t, env.campaigns.UpdateCampaignStatus(testCreator, campaign.ID, model.CampaignStatusActive))
	assert.Equal(t, model.CampaignStatusActive, env.reloadCampaign(t, campaign.ID).Status)

	// 已完成的活动状态不可再变更
	require.NoError(t, env.db.Model(&model.Campaign{}).
		Where("id = ?", campaign.ID).
		Update("status", model.CampaignStatusCompleted).Error)
	err = env.campaigns.UpdateCampaignStatus(testCreator, campaign.ID, model.CampaignStatusActive)
	assert.ErrorIs(t, err, ErrStatusNotMutable)
}

func TestAdminPauseUnpause(t *testing.T) {
	env := newTestEnv(t)
	campaign := env.createCampaign(t, testCreator)
	require.NoError(t, env.ac.AddAdmin(testOwner, testAdmin))

	assert.ErrorIs(t, env.campaigns.PauseCampaign(testBacker, campaign.ID), access.ErrNotAdminOrOwner)
	assert.ErrorIs(t, env.campaigns.PauseCampaign(testAdmin, 42), ErrCampaignNotFound)

	require.NoError(t, env.campaigns.PauseCampaign(testAdmin, campaign.ID))
	paused := env.reloadCampaign(t, campaign.ID)
	assert.Equal(t, model.CampaignStatusPaused, paused.Status)
	assert.Greater(t, paused.PausedAt, int64(0))

	// 强制路径不检查当前状态，重复暂停也成功
	require.NoError(t, env.campaigns.PauseCampaign(testOwner, campaign.ID))

	require.NoError(t, env.campaigns.UnpauseCampaign(testAdmin, campaign.ID))
	resumed := env.reloadCampaign(t, campaign.ID)
	assert.Equal(t, model.CampaignStatusActive, resumed.Status)
	assert.Zero(t, resumed.PausedAt)
}

func TestCampaignStats(t *testing.T) {
	env := newTestEnv(t)
	campaign := env.createCampaign(t, testCreator)
	env.contribute(t, testBacker, campaign.ID, 250)

	_, err := env.campaigns.GetCampaignStats(testBacker, campaign.ID)
	assert.ErrorIs(t, err, ErrNotCreator)

	stats, err := env.campaigns.GetCampaignStats(testCreator, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(250), stats["amount_raised"])
	assert.Equal(t, float64(25), stats["completion_percentage"])
	assert.Equal(t, uint64(1), stats["supporter_count"])
}

func TestAdminCampaignStats(t *testing.T) {
	env := newTestEnv(t)
	campaign := env.createCampaign(t, testCreator)
	require.NoError(t, env.ac.AddAdmin(testOwner, testAdmin))

	// 管理员侧入口只认在任管理员，所有者走不通
	_, err := env.campaigns.AdminGetCampaignStats(testOwner, campaign.ID)
	assert.ErrorIs(t, err, access.ErrNotAdmin)

	_, err = env.campaigns.AdminGetCampaignStats(testCreator, campaign.ID)
	assert.ErrorIs(t, err, access.ErrNotAdmin)

	stats, err := env.campaigns.AdminGetCampaignStats(testAdmin, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.ID, stats["campaign_id"])
}
