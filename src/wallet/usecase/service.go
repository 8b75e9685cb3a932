package usecase

import (
	"sync"

	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/MMN3003/carbondesk/src/wallet/domain"
	"github.com/ethereum/go-ethereum/common"
)

var _ domain.AccountSource = (*Service)(nil)

// Service tracks the account handed over by the wallet provider. It performs
// no handshake of its own.
type Service struct {
	logger *logger.Logger

	mu    sync.RWMutex
	state domain.Wallet
}

func NewService(logg *logger.Logger) *Service {
	return &Service{logger: logg}
}

// Connect records account as connected. The address is stored checksummed.
func (s *Service) Connect(account string) (domain.Wallet, error) {
	if !common.IsHexAddress(account) {
		return domain.Wallet{}, domain.ErrInvalidAccount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.Wallet{Account: common.HexToAddress(account).Hex(), Connected: true}
	s.logger.Infof("wallet connected account=%s", s.state.Account)
	return s.state, nil
}

func (s *Service) Disconnect() domain.Wallet {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Connected {
		s.logger.Infof("wallet disconnected account=%s", s.state.Account)
	}
	s.state = domain.Wallet{}
	return s.state
}

// AccountsChanged follows the provider's account list: an empty list
// disconnects, otherwise the first account becomes the active one.
func (s *Service) AccountsChanged(accounts []string) (domain.Wallet, error) {
	if len(accounts) == 0 {
		return s.Disconnect(), nil
	}
	return s.Connect(accounts[0])
}

func (s *Service) State() domain.Wallet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Service) Account() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Account
}
