package ledger

import (
	"testing"

	"github.com/blues/cfl/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) setRaised(t *testing.T, id, amount uint64) {
	t.Helper()
	require.NoError(t, e.db.Model(&model.Campaign{}).
		Where("id = ?", id).
		Update("amount_raised", amount).Error)
}

func TestGetCampaigns(t *testing.T) {
	env := newTestEnv(t)

	campaigns, err := env.queries.GetCampaigns()
	require.NoError(t, err)
	assert.Empty(t, campaigns)

	env.createCampaign(t, testCreator)
	env.createCampaign(t, testCreator2)

	campaigns, err = env.queries.GetCampaigns()
	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, uint64(1), campaigns[0].ID)
	assert.Equal(t, uint64(2), campaigns[1].ID)
}

func TestGetTopCampaignsReturnsAllTies(t *testing.T) {
	env := newTestEnv(t)

	top, err := env.queries.GetTopCampaigns()
	require.NoError(t, err)
	assert.Empty(t, top)

	a := env.createCampaign(t, testCreator)
	b := env.createCampaign(t, testCreator)
	c := env.createCampaign(t, testCreator2)
	env.setRaised(t, a.ID, 100)
	env.setRaised(t, b.ID, 200)
	env.setRaised(t, c.ID, 200)

	top, err = env.queries.GetTopCampaigns()
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, b.ID, top[0].ID)
	assert.Equal(t, c.ID, top[1].ID)
}

func TestGetTopCampaignsAllZero(t *testing.T) {
	env := newTestEnv(t)
	env.createCampaign(t, testCreator)
	env.createCampaign(t, testCreator)

	// 所有活动都是0也算并列第一
	top, err := env.queries.GetTopCampaigns()
	require.NoError(t, err)
	assert.Len(t, top, 2)
}

func TestGetFeaturedCampaignsActiveOnly(t *testing.T) {
	env := newTestEnv(t)

	a := env.createCampaign(t, testCreator)
	b := env.createCampaign(t, testCreator)
	env.setRaised(t, a.ID, 500)
	env.setRaised(t, b.ID, 100)

	// 全局最高的活动被暂停后，精选在剩余进行中活动里取最高
	require.NoError(t, env.campaigns.UpdateCampaignStatus(testCreator, a.ID, model.CampaignStatusPaused))

	featured, err := env.queries.GetFeaturedCampaigns()
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, b.ID, featured[0].ID)

	top, err := env.queries.GetTopCampaigns()
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, a.ID, top[0].ID)
}

func TestGetUserCampaigns(t *testing.T) {
	env := newTestEnv(t)

	a := env.createCampaign(t, testCreator)
	env.createCampaign(t, testCreator2)
	b := env.createCampaign(t, testCreator)

	campaigns, err := env.queries.GetUserCampaigns(testCreator)
	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, a.ID, campaigns[0].ID)
	assert.Equal(t, b.ID, campaigns[1].ID)

	campaigns, err = env.queries.GetUserCampaigns(testBacker)
	require.NoError(t, err)
	assert.Empty(t, campaigns)
}
