package usecase

import (
	"testing"

	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/MMN3003/carbondesk/src/wallet/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const account = "0x742d35cc6634c0532925a3b844bc454e4438f44e"

func TestConnectChecksumsAddress(t *testing.T) {
	s := NewService(logger.Nop())

	w, err := s.Connect(account)
	require.NoError(t, err)
	assert.True(t, w.Connected)
	assert.Equal(t, "0x742d35Cc6634C0532925a3b844Bc454e4438f44e", w.Account)
	assert.Equal(t, w.Account, s.Account())
}

func TestConnectRejectsGarbage(t *testing.T) {
	s := NewService(logger.Nop())
	_, err := s.Connect("0x1234...5678")
	assert.ErrorIs(t, err, domain.ErrInvalidAccount)
	assert.False(t, s.State().Connected)
}

func TestAccountsChanged(t *testing.T) {
	s := NewService(logger.Nop())
	_, err := s.AccountsChanged([]string{account, "0x1234567890abcdef1234567890abcdef12345678"})
	require.NoError(t, err)
	assert.True(t, s.State().Connected)

	w, err := s.AccountsChanged(nil)
	require.NoError(t, err)
	assert.False(t, w.Connected)
	assert.Empty(t, s.Account())
}
