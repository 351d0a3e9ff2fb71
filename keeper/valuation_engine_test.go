package keeper_test

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/jmakwana0x1/ERC4626Vault/types"
	"github.com/jmakwana0x1/ERC4626Vault/utils"
)

func (s *TestSuite) TestTotalAssetsAndShares() {
	s.Require().True(s.k.TotalAssets(s.ctx).IsZero(), "fresh vault should hold no assets")
	s.Require().True(s.k.TotalShares(s.ctx).IsZero(), "fresh vault should have no shares")

	s.FundAccount(s.aliceAddr, sdk.NewCoins(sdk.NewInt64Coin(underlyingDenom, 1_000)))
	_, err := s.k.Deposit(s.ctx, s.aliceAddr, s.aliceAddr, sdk.NewInt64Coin(underlyingDenom, 1_000))
	s.Require().NoError(err, "deposit should succeed")

	s.Require().Equal(sdkmath.NewInt(1_000), s.k.TotalAssets(s.ctx), "total assets should match the deposit")
	s.Require().Equal(sdkmath.NewInt(1_000), s.k.TotalShares(s.ctx), "total shares should match the issuance")

	// Assets sent straight to the pool account count immediately.
	s.donate(500)
	s.Require().Equal(sdkmath.NewInt(1_500), s.k.TotalAssets(s.ctx), "donations should raise total assets")
	s.Require().Equal(sdkmath.NewInt(1_000), s.k.TotalShares(s.ctx), "donations should not mint shares")
}

func (s *TestSuite) TestNAVPerShare() {
	s.Require().True(s.k.NAVPerShare(s.ctx).IsZero(), "vault without shares should report zero NAV")

	s.FundAccount(s.aliceAddr, sdk.NewCoins(sdk.NewInt64Coin(underlyingDenom, 1_000)))
	_, err := s.k.Deposit(s.ctx, s.aliceAddr, s.aliceAddr, sdk.NewInt64Coin(underlyingDenom, 1_000))
	s.Require().NoError(err, "deposit should succeed")
	s.Require().Equal(sdkmath.LegacyOneDec(), s.k.NAVPerShare(s.ctx), "fresh pool should be worth one asset per share")

	s.donate(500)
	s.Require().Equal(sdkmath.LegacyMustNewDecFromStr("1.5"), s.k.NAVPerShare(s.ctx), "donation should lift NAV to 1.5")

	// Draining the pool account without burning shares drops NAV to zero.
	s.Require().NoError(s.app.Bank.SendCoins(s.ctx, s.vaultAddr(), s.bobAddr, sdk.NewCoins(sdk.NewInt64Coin(underlyingDenom, 1_500))), "draining the pool should succeed")
	s.Require().True(s.k.NAVPerShare(s.ctx).IsZero(), "empty pool with live shares should report zero NAV")
}

func (s *TestSuite) TestConvertToShares() {
	s.setupAppreciatedPool()

	tests := []struct {
		name     string
		assets   sdk.Coin
		expected sdk.Coin
		errMsg   string
	}{
		{
			name:     "truncating conversion",
			assets:   sdk.NewInt64Coin(underlyingDenom, 1_000),
			expected: sdk.NewInt64Coin(shareDenom, 666),
		},
		{
			name:     "exact conversion",
			assets:   sdk.NewInt64Coin(underlyingDenom, 750),
			expected: sdk.NewInt64Coin(shareDenom, 500),
		},
		{
			name:     "zero assets",
			assets:   sdk.NewInt64Coin(underlyingDenom, 0),
			expected: sdk.NewInt64Coin(shareDenom, 0),
		},
		{
			name:   "wrong denom",
			assets: sdk.NewInt64Coin(shareDenom, 100),
			errMsg: "asset denom not supported for vault",
		},
		{
			name:   "nil amount",
			assets: sdk.Coin{Denom: underlyingDenom},
			errMsg: "invalid coin amount",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			shares, err := s.k.ConvertToShares(s.ctx, tc.assets)
			if tc.errMsg != "" {
				s.Require().Error(err, "expected error for case: %s", tc.name)
				s.Require().ErrorIs(err, types.ErrInvalidRequest, "conversion failures should be invalid requests")
				s.Require().ErrorContains(err, tc.errMsg, "unexpected error text for case: %s", tc.name)
			} else {
				s.Require().NoError(err, "unexpected error for case: %s", tc.name)
				s.Require().Equal(tc.expected, shares, "unexpected shares for case: %s", tc.name)
			}
		})
	}
}

func (s *TestSuite) TestConvertToAssets() {
	s.setupAppreciatedPool()

	tests := []struct {
		name     string
		shares   sdk.Coin
		expected sdk.Coin
		errMsg   string
	}{
		{
			name:     "truncating conversion",
			shares:   sdk.NewInt64Coin(shareDenom, 667),
			expected: sdk.NewInt64Coin(underlyingDenom, 1_000),
		},
		{
			name:     "full supply converts to the whole pool",
			shares:   sdk.NewInt64Coin(shareDenom, 1_000),
			expected: sdk.NewInt64Coin(underlyingDenom, 1_500),
		},
		{
			name:     "zero shares",
			shares:   sdk.NewInt64Coin(shareDenom, 0),
			expected: sdk.NewInt64Coin(underlyingDenom, 0),
		},
		{
			name:   "wrong denom",
			shares: sdk.NewInt64Coin(underlyingDenom, 100),
			errMsg: "share denom not supported for vault",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			assets, err := s.k.ConvertToAssets(s.ctx, tc.shares)
			if tc.errMsg != "" {
				s.Require().Error(err, "expected error for case: %s", tc.name)
				s.Require().ErrorContains(err, tc.errMsg, "unexpected error text for case: %s", tc.name)
			} else {
				s.Require().NoError(err, "unexpected error for case: %s", tc.name)
				s.Require().Equal(tc.expected, assets, "unexpected assets for case: %s", tc.name)
			}
		})
	}
}

// TestConversionsOnDrainedPool pins the two degenerate exchange rates: a pool
// that lost every asset while shares remain issues new shares 1:1 and values
// existing shares at zero.
func (s *TestSuite) TestConversionsOnDrainedPool() {
	s.FundAccount(s.aliceAddr, sdk.NewCoins(sdk.NewInt64Coin(underlyingDenom, 1_000)))
	_, err := s.k.Deposit(s.ctx, s.aliceAddr, s.aliceAddr, sdk.NewInt64Coin(underlyingDenom, 1_000))
	s.Require().NoError(err, "deposit should succeed")
	s.Require().NoError(s.app.Bank.SendCoins(s.ctx, s.vaultAddr(), s.bobAddr, sdk.NewCoins(sdk.NewInt64Coin(underlyingDenom, 1_000))), "draining the pool should succeed")

	shares, err := s.k.ConvertToShares(s.ctx, sdk.NewInt64Coin(underlyingDenom, 123))
	s.Require().NoError(err, "conversion on a drained pool should succeed")
	s.Require().Equal(sdk.NewInt64Coin(shareDenom, 123), shares, "drained pool should issue shares one to one")

	assets, err := s.k.ConvertToAssets(s.ctx, sdk.NewInt64Coin(shareDenom, 123))
	s.Require().NoError(err, "conversion on a drained pool should succeed")
	s.Require().True(assets.IsZero(), "shares in a drained pool should be worth nothing")
}

// TestPreviewsMatchOperations runs every preview immediately before its
// operation at the same pool state and requires identical figures.
func (s *TestSuite) TestPreviewsMatchOperations() {
	s.setupAppreciatedPool()
	s.FundAccount(s.bobAddr, sdk.NewCoins(sdk.NewInt64Coin(underlyingDenom, 5_000)))

	previewed, err := s.k.PreviewDeposit(s.ctx, sdk.NewInt64Coin(underlyingDenom, 1_000))
	s.Require().NoError(err, "preview deposit should succeed")
	s.Require().Equal(sdk.NewInt64Coin(shareDenom, 666), previewed, "preview should truncate like deposit")
	minted, err := s.k.Deposit(s.ctx, s.bobAddr, s.bobAddr, sdk.NewInt64Coin(underlyingDenom, 1_000))
	s.Require().NoError(err, "deposit should succeed")
	s.Require().Equal(previewed, minted, "deposit should mint exactly the previewed shares")

	previewed, err = s.k.PreviewMint(s.ctx, sdk.NewInt64Coin(shareDenom, 100))
	s.Require().NoError(err, "preview mint should succeed")
	charged, err := s.k.Mint(s.ctx, s.bobAddr, s.bobAddr, sdk.NewInt64Coin(shareDenom, 100))
	s.Require().NoError(err, "mint should succeed")
	s.Require().Equal(previewed, charged, "mint should charge exactly the previewed assets")

	previewed, err = s.k.PreviewWithdraw(s.ctx, sdk.NewInt64Coin(underlyingDenom, 500))
	s.Require().NoError(err, "preview withdraw should succeed")
	burned, err := s.k.Withdraw(s.ctx, s.bobAddr, s.bobAddr, s.bobAddr, sdk.NewInt64Coin(underlyingDenom, 500))
	s.Require().NoError(err, "withdraw should succeed")
	s.Require().Equal(previewed, burned, "withdraw should burn exactly the previewed shares")

	previewed, err = s.k.PreviewRedeem(s.ctx, sdk.NewInt64Coin(shareDenom, 200))
	s.Require().NoError(err, "preview redeem should succeed")
	paid, err := s.k.Redeem(s.ctx, s.bobAddr, s.bobAddr, s.bobAddr, sdk.NewInt64Coin(shareDenom, 200))
	s.Require().NoError(err, "redeem should succeed")
	s.Require().Equal(previewed, paid, "redeem should pay exactly the previewed assets")
}

// TestPreviewRoundingPairs pins the rounding direction of each preview at a
// rate of 1.5 assets per share, where entry and exit legs disagree by one.
func (s *TestSuite) TestPreviewRoundingPairs() {
	s.setupAppreciatedPool()

	deposit, err := s.k.PreviewDeposit(s.ctx, sdk.NewInt64Coin(underlyingDenom, 1_000))
	s.Require().NoError(err)
	withdraw, err := s.k.PreviewWithdraw(s.ctx, sdk.NewInt64Coin(underlyingDenom, 1_000))
	s.Require().NoError(err)
	s.Require().Equal(sdk.NewInt64Coin(shareDenom, 666), deposit, "deposit preview should round down")
	s.Require().Equal(sdk.NewInt64Coin(shareDenom, 667), withdraw, "withdraw preview should round up")

	redeem, err := s.k.PreviewRedeem(s.ctx, sdk.NewInt64Coin(shareDenom, 667))
	s.Require().NoError(err)
	mint, err := s.k.PreviewMint(s.ctx, sdk.NewInt64Coin(shareDenom, 667))
	s.Require().NoError(err)
	s.Require().Equal(sdk.NewInt64Coin(underlyingDenom, 1_000), redeem, "redeem preview should round down")
	s.Require().Equal(sdk.NewInt64Coin(underlyingDenom, 1_001), mint, "mint preview should round up")
}

func (s *TestSuite) TestMaxDepositAndMint() {
	s.Require().Equal(utils.MaxAmount, s.k.MaxDeposit(s.ctx, s.aliceAddr), "open vault should not cap deposits")
	s.Require().Equal(utils.MaxAmount, s.k.MaxMint(s.ctx, s.aliceAddr), "open vault should not cap mints")

	s.Require().NoError(s.k.SetDepositsEnabled(s.ctx, s.adminAddr, false))
	s.Require().True(s.k.MaxDeposit(s.ctx, s.aliceAddr).IsZero(), "disabled deposits should report a zero limit")
	s.Require().True(s.k.MaxMint(s.ctx, s.aliceAddr).IsZero(), "disabled deposits should report a zero mint limit")

	s.Require().NoError(s.k.SetDepositsEnabled(s.ctx, s.adminAddr, true))
	s.Require().NoError(s.k.SetPaused(s.ctx, s.adminAddr, true))
	s.Require().True(s.k.MaxDeposit(s.ctx, s.aliceAddr).IsZero(), "paused vault should report a zero deposit limit")
	s.Require().True(s.k.MaxMint(s.ctx, s.aliceAddr).IsZero(), "paused vault should report a zero mint limit")
}

func (s *TestSuite) TestMaxWithdrawAndRedeem() {
	s.setupAppreciatedPool()

	limit, err := s.k.MaxWithdraw(s.ctx, s.aliceAddr)
	s.Require().NoError(err, "max withdraw should compute")
	s.Require().Equal(sdkmath.NewInt(1_500), limit, "limit should be the share balance valued at the current rate")
	s.Require().Equal(sdkmath.NewInt(1_000), s.k.MaxRedeem(s.ctx, s.aliceAddr), "redeem limit should be the share balance")

	// The withdraw limit is always consistent with ConvertToAssets.
	converted, err := s.k.ConvertToAssets(s.ctx, s.app.Bank.GetBalance(s.ctx, s.aliceAddr, shareDenom))
	s.Require().NoError(err, "conversion should succeed")
	s.Require().Equal(converted.Amount, limit, "max withdraw should equal the converted share balance")

	limit, err = s.k.MaxWithdraw(s.ctx, s.bobAddr)
	s.Require().NoError(err, "max withdraw should compute for a stranger")
	s.Require().True(limit.IsZero(), "account without shares should have a zero withdraw limit")
	s.Require().True(s.k.MaxRedeem(s.ctx, s.bobAddr).IsZero(), "account without shares should have a zero redeem limit")

	s.Require().NoError(s.k.SetWithdrawalsEnabled(s.ctx, s.adminAddr, false))
	limit, err = s.k.MaxWithdraw(s.ctx, s.aliceAddr)
	s.Require().NoError(err, "max withdraw should compute while gated")
	s.Require().True(limit.IsZero(), "disabled withdrawals should report a zero limit")
	s.Require().True(s.k.MaxRedeem(s.ctx, s.aliceAddr).IsZero(), "disabled withdrawals should report a zero redeem limit")

	s.Require().NoError(s.k.SetWithdrawalsEnabled(s.ctx, s.adminAddr, true))
	s.Require().NoError(s.k.SetPaused(s.ctx, s.adminAddr, true))
	limit, err = s.k.MaxWithdraw(s.ctx, s.aliceAddr)
	s.Require().NoError(err, "max withdraw should compute while paused")
	s.Require().True(limit.IsZero(), "paused vault should report a zero withdraw limit")
	s.Require().True(s.k.MaxRedeem(s.ctx, s.aliceAddr).IsZero(), "paused vault should report a zero redeem limit")
}
