package ledger

import (
	"testing"

	"github.com/blues/cfl/internal/access"
	"github.com/blues/cfl/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNFTTier(t *testing.T) {
	cases := []struct {
		count uint64
		tier  uint8
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{4, 4},
		{5, 5},
		{12, 5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.tier, GetNFTTier(tc.count), "count=%d", tc.count)
	}
}

// supportCampaigns 让用户进入n个活动的支持者集合
func supportCampaigns(t *testing.T, env *testEnv, user string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		campaign := env.createCampaign(t, testCreator)
		require.NoError(t, env.contributions.AddSupporter(testCreator, campaign.ID, user))
	}
}

func TestSupportedCampaignCount(t *testing.T) {
	env := newTestEnv(t)

	count, err := env.rewards.SupportedCampaignCount(testBacker)
	require.NoError(t, err)
	assert.Zero(t, count)

	supportCampaigns(t, env, testBacker, 3)
	count, err = env.rewards.SupportedCampaignCount(testBacker)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)
}

func TestCanClaimTierReward(t *testing.T) {
	env := newTestEnv(t)
	supportCampaigns(t, env, testBacker, 2)

	_, err := env.rewards.CanClaimTierReward(testBacker, 0)
	assert.ErrorIs(t, err, ErrInvalidTier)
	_, err = env.rewards.CanClaimTierReward(testBacker, 6)
	assert.ErrorIs(t, err, ErrInvalidTier)

	ok, err := env.rewards.CanClaimTierReward(testBacker, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = env.rewards.CanClaimTierReward(testBacker, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	// 支持数换算的等级未覆盖目标等级
	ok, err = env.rewards.CanClaimTierReward(testBacker, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMintNFTReward(t *testing.T) {
	env := newTestEnv(t)
	supportCampaigns(t, env, testBacker, 2)

	_, err := env.rewards.MintNFTReward(nullAddress)
	assert.ErrorIs(t, err, ErrNullRecipient)

	// 从高到低铸造：先2后1
	first, err := env.rewards.MintNFTReward(testBacker)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), first.TokenID)
	assert.Equal(t, uint8(2), first.Tier)
	assert.True(t, first.Claimed)
	assert.Equal(t, model.DefaultTierMetadata[2], first.MetadataURI)

	claimed, err := env.rewards.HasClaimedReward(testBacker, 2)
	require.NoError(t, err)
	assert.True(t, claimed)

	second, err := env.rewards.MintNFTReward(testBacker)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), second.TokenID)
	assert.Equal(t, uint8(1), second.Tier)

	// 可领取的等级用尽
	_, err = env.rewards.MintNFTReward(testBacker)
	assert.ErrorIs(t, err, ErrNoClaimableTier)

	rewards, err := env.rewards.GetUserRewards(testBacker)
	require.NoError(t, err)
	require.Len(t, rewards, 2)
	assert.Equal(t, uint64(1), rewards[0].TokenID)
	assert.Equal(t, uint64(2), rewards[1].TokenID)
}

func TestMintWithoutSupport(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.rewards.MintNFTReward(testBacker)
	assert.ErrorIs(t, err, ErrNoClaimableTier)
}

func TestClaimFlagIsGlobalAcrossCampaigns(t *testing.T) {
	env := newTestEnv(t)
	supportCampaigns(t, env, testBacker, 1)

	reward, err := env.rewards.MintNFTReward(testBacker)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), reward.Tier)

	// 支持更多活动不会重置已领取的等级
	supportCampaigns(t, env, testBacker, 1)

	ok, err := env.rewards.CanClaimTierReward(testBacker, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = env.rewards.CanClaimTierReward(testBacker, 2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGetAvailableTiers(t *testing.T) {
	env := newTestEnv(t)

	tiers, err := env.rewards.GetAvailableTiers(testBacker)
	require.NoError(t, err)
	assert.Empty(t, tiers)

	supportCampaigns(t, env, testBacker, 3)
	tiers, err = env.rewards.GetAvailableTiers(testBacker)
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 2, 3}, tiers)

	_, err = env.rewards.MintNFTReward(testBacker)
	require.NoError(t, err)
	tiers, err = env.rewards.GetAvailableTiers(testBacker)
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 2}, tiers)
}

func TestGetTokenTier(t *testing.T) {
	env := newTestEnv(t)
	supportCampaigns(t, env, testBacker, 1)

	reward, err := env.rewards.MintNFTReward(testBacker)
	require.NoError(t, err)

	tier, err := env.rewards.GetTokenTier(reward.TokenID)
	require.NoError(t, err)
	assert.Equal(t, reward.Tier, tier)

	_, err = env.rewards.GetTokenTier(99)
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestTierMetadata(t *testing.T) {
	env := newTestEnv(t)

	// 迁移播种的默认URI
	uri, err := env.rewards.GetTierMetadata(3)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultTierMetadata[3], uri)

	_, err = env.rewards.GetTierMetadata(0)
	assert.ErrorIs(t, err, ErrInvalidTier)

	err = env.rewards.SetTierMetadata(testBacker, 3, "ipfs://custom/3.json")
	assert.ErrorIs(t, err, access.ErrNotAdminOrOwner)

	err = env.rewards.SetTierMetadata(testOwner, 6, "ipfs://custom/6.json")
	assert.ErrorIs(t, err, ErrInvalidTier)

	require.NoError(t, env.rewards.SetTierMetadata(testOwner, 3, "ipfs://custom/3.json"))
	uri, err = env.rewards.GetTierMetadata(3)
	require.NoError(t, err)
	assert.Equal(t, "ipfs://custom/3.json", uri)

	// 铸造使用当前配置的URI
	supportCampaigns(t, env, testBacker, 3)
	reward, err := env.rewards.MintNFTReward(testBacker)
	require.NoError(t, err)
	assert.Equal(t, uint8(3), reward.Tier)
	assert.Equal(t, "ipfs://custom/3.json", reward.MetadataURI)
}
