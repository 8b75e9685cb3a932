package usecase

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	actionDomain "github.com/MMN3003/carbondesk/src/action/domain"
	actionUC "github.com/MMN3003/carbondesk/src/action/usecase"
	"github.com/MMN3003/carbondesk/src/ledger/adapter/simulated"
	ledger "github.com/MMN3003/carbondesk/src/ledger/domain"
	"github.com/MMN3003/carbondesk/src/logger"
	notification "github.com/MMN3003/carbondesk/src/notification/domain"
	notificationUC "github.com/MMN3003/carbondesk/src/notification/usecase"
	"github.com/MMN3003/carbondesk/src/swap/domain"
	"github.com/MMN3003/carbondesk/src/swap/repository"
	tokenRepo "github.com/MMN3003/carbondesk/src/token/repository"
	"github.com/benbjohnson/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	session *Session
	center  *notificationUC.Center
	ledger  *simulated.Ledger
	runner  *actionUC.Runner
}

func newFixture(t *testing.T, l ledger.Ledger) fixture {
	t.Helper()
	catalog, err := tokenRepo.NewMemoryCatalog(tokenRepo.DefaultTokens())
	require.NoError(t, err)
	center := notificationUC.NewCenter(clock.NewMock(), logger.Nop())
	sim := simulated.New(0, logger.Nop())
	if l == nil {
		l = sim
	}
	runner := actionUC.NewRunner("swap", center, logger.Nop())
	s, err := NewSession(
		catalog,
		repository.NewRateTable(decimal.RequireFromString("0.02")),
		NewEngine(FloatArithmetic),
		l,
		runner,
		logger.Nop(),
		"0.5",
		WithAccount(func() string { return "0x742d35Cc6634C0532925a3b844Bc454e4438f44e" }),
	)
	require.NoError(t, err)
	return fixture{session: s, center: center, ledger: sim, runner: runner}
}

func TestSessionStartsWithDistinctPair(t *testing.T) {
	f := newFixture(t, nil)
	st := f.session.State()
	assert.Equal(t, "cct", st.FromToken.ID)
	assert.Equal(t, "eth", st.ToToken.ID)
	assert.Equal(t, "0.5", st.SlippagePercent)
	assert.Equal(t, "0.02", st.Quote.Rate)
}

func TestSetFromAmountAndMax(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.session.SetFromAmount("500"))
	assert.Equal(t, "10", f.session.State().ToAmount)

	require.NoError(t, f.session.SetMax())
	st := f.session.State()
	assert.Equal(t, "1000", st.FromAmount)
	assert.Equal(t, "20", st.ToAmount)
	assert.Equal(t, domain.SideFrom, st.LastEdited)
}

func TestSetToAmountDerivesFrom(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.session.SetToAmount("10"))
	st := f.session.State()
	assert.Equal(t, "500", st.FromAmount)
	assert.Equal(t, domain.SideTo, st.LastEdited)

	q := f.session.Quote()
	assert.Equal(t, "9.95", q.MinimumReceived)
	assert.Equal(t, "500", q.InputAmount)
	assert.Equal(t, "10", q.OutputAmount)
}

func TestClearingAFieldClearsTheOther(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.session.SetFromAmount("500"))

	require.NoError(t, f.session.SetFromAmount(""))
	st := f.session.State()
	assert.Empty(t, st.ToAmount)
	assert.Equal(t, "0", st.Quote.MinimumReceived)

	require.NoError(t, f.session.SetFromAmount("abc"))
	assert.Empty(t, f.session.State().ToAmount)
}

func TestSwapDirectionMovesAmountsVerbatim(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.session.SetFromAmount("500"))

	f.session.SwapDirection()
	st := f.session.State()
	assert.Equal(t, "eth", st.FromToken.ID)
	assert.Equal(t, "cct", st.ToToken.ID)
	assert.Equal(t, "10", st.FromAmount)
	assert.Equal(t, "500", st.ToAmount)
	assert.Equal(t, domain.SideTo, st.LastEdited)
}

func TestSelectingOppositeTokenReassigns(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.session.SelectFromToken("eth"))
	st := f.session.State()
	assert.Equal(t, "eth", st.FromToken.ID)
	assert.Equal(t, "cct", st.ToToken.ID)

	require.NoError(t, f.session.SelectToToken("eth"))
	st = f.session.State()
	assert.Equal(t, "eth", st.ToToken.ID)
	assert.Equal(t, "cct", st.FromToken.ID)

	assert.Error(t, f.session.SelectToToken("btc"))
}

func TestPairStaysDistinct(t *testing.T) {
	f := newFixture(t, nil)
	ids := []string{"cct", "eth", "usdc"}
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 2000; i++ {
		switch rng.Intn(3) {
		case 0:
			require.NoError(t, f.session.SelectFromToken(ids[rng.Intn(len(ids))]))
		case 1:
			require.NoError(t, f.session.SelectToToken(ids[rng.Intn(len(ids))]))
		case 2:
			f.session.SwapDirection()
		}
		st := f.session.State()
		require.NotEqual(t, st.FromToken.ID, st.ToToken.ID, "step %d", i)
	}
}

func TestSetSlippageBounds(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.session.SetSlippage("0.1"))
	require.NoError(t, f.session.SetSlippage("5"))

	for _, v := range []string{"0.05", "5.1", "", "x"} {
		err := f.session.SetSlippage(v)
		assert.True(t, actionDomain.IsValidation(err), v)
	}
	assert.Equal(t, "5", f.session.State().SlippagePercent)
}

func TestSubmitOverBalanceIsRejected(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.session.SetFromAmount("2000"))

	res := f.session.Submit(context.Background())
	assert.Equal(t, actionDomain.OutcomeRejected, res.Outcome)
	assert.False(t, f.session.State().Busy)

	list := f.center.List()
	require.Len(t, list, 1)
	assert.Equal(t, notification.KindError, list[0].Kind)
	assert.Equal(t, "Insufficient CCT balance.", list[0].Message)

	ops, err := f.ledger.List(context.Background(), ledger.KindSwap)
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestSubmitInvalidAmount(t *testing.T) {
	f := newFixture(t, nil)
	for _, v := range []string{"", "0", "abc"} {
		require.NoError(t, f.session.SetFromAmount(v))
		res := f.session.Submit(context.Background())
		assert.Equal(t, actionDomain.OutcomeRejected, res.Outcome, v)
	}
	for _, n := range f.center.List() {
		assert.Equal(t, "Please enter a valid amount to swap.", n.Message)
	}
}

func TestSubmitSuccessClearsForm(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.session.SetFromAmount("500"))

	res := f.session.Submit(context.Background())
	require.Equal(t, actionDomain.OutcomeSucceeded, res.Outcome)

	n, ok := f.center.Get(res.NotificationID)
	require.True(t, ok)
	assert.Equal(t, notification.KindSuccess, n.Kind)
	assert.Equal(t, "Successfully swapped 500 CCT for 10 ETH!", n.Message)

	st := f.session.State()
	assert.Empty(t, st.FromAmount)
	assert.Empty(t, st.ToAmount)

	ops, err := f.ledger.List(context.Background(), ledger.KindSwap)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, "10", ops[0].CounterAmount)
	assert.Equal(t, "ETH", ops[0].CounterAsset)
	assert.Equal(t, "0x742d35Cc6634C0532925a3b844Bc454e4438f44e", ops[0].Account)
}

func TestSubmitFailureKeepsForm(t *testing.T) {
	f := newFixture(t, nil)
	f.ledger.FailWith(ledger.KindSwap, errors.New("rpc: nonce too low"))
	require.NoError(t, f.session.SetFromAmount("500"))

	res := f.session.Submit(context.Background())
	require.Equal(t, actionDomain.OutcomeFailed, res.Outcome)

	n, ok := f.center.Get(res.NotificationID)
	require.True(t, ok)
	assert.Equal(t, "Failed to complete swap. Please try again.", n.Message)
	assert.Equal(t, "500", f.session.State().FromAmount)
	assert.False(t, f.session.State().Busy)
}

type blockingLedger struct {
	started chan struct{}
	release chan struct{}
	calls   int
}

func (b *blockingLedger) Submit(ctx context.Context, op ledger.Operation) (ledger.Receipt, error) {
	b.calls++
	close(b.started)
	<-b.release
	return ledger.Receipt{ID: "r1", Status: ledger.StatusCompleted}, nil
}

func (b *blockingLedger) List(ctx context.Context, kind ledger.Kind) ([]ledger.Operation, error) {
	return nil, nil
}

func TestSubmitWhileBusyIsNoop(t *testing.T) {
	bl := &blockingLedger{started: make(chan struct{}), release: make(chan struct{})}
	f := newFixture(t, bl)
	require.NoError(t, f.session.SetFromAmount("500"))

	done := make(chan actionDomain.Result)
	go func() { done <- f.session.Submit(context.Background()) }()
	<-bl.started

	assert.True(t, f.session.State().Busy)
	second := f.session.Submit(context.Background())
	assert.Equal(t, actionDomain.OutcomeSkipped, second.Outcome)
	assert.Empty(t, second.NotificationID)

	close(bl.release)
	first := <-done
	assert.Equal(t, actionDomain.OutcomeSucceeded, first.Outcome)
	assert.Equal(t, 1, bl.calls)
	assert.Len(t, f.center.List(), 1)
}

func TestClosedSessionKeepsStateOnLateResult(t *testing.T) {
	bl := &blockingLedger{started: make(chan struct{}), release: make(chan struct{})}
	f := newFixture(t, bl)
	require.NoError(t, f.session.SetFromAmount("500"))

	done := make(chan actionDomain.Result)
	go func() { done <- f.session.Submit(context.Background()) }()
	<-bl.started
	f.session.Close()
	close(bl.release)

	assert.Equal(t, actionDomain.OutcomeSucceeded, (<-done).Outcome)
	assert.Equal(t, "500", f.session.State().FromAmount)
}

func TestHugeExponentEditDoesNotBlockSession(t *testing.T) {
	f := newFixture(t, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, f.session.SetFromAmount("1e50000000"))
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("amount edit did not return")
	}

	st := f.session.State()
	assert.Equal(t, "1e50000000", st.FromAmount)
	assert.Empty(t, st.ToAmount)
	res := f.session.Submit(context.Background())
	assert.Equal(t, actionDomain.OutcomeRejected, res.Outcome)
}
