package usecase

import (
	"context"
	"errors"
	"testing"

	actionDomain "github.com/MMN3003/carbondesk/src/action/domain"
	actionUC "github.com/MMN3003/carbondesk/src/action/usecase"
	"github.com/MMN3003/carbondesk/src/ledger/adapter/simulated"
	ledger "github.com/MMN3003/carbondesk/src/ledger/domain"
	"github.com/MMN3003/carbondesk/src/logger"
	notificationUC "github.com/MMN3003/carbondesk/src/notification/usecase"
	"github.com/MMN3003/carbondesk/src/whitelist/domain"
	"github.com/MMN3003/carbondesk/src/whitelist/repository"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const newAddress = "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"

func newService() (*Service, *simulated.Ledger, *notificationUC.Center) {
	center := notificationUC.NewCenter(clock.NewMock(), logger.Nop())
	l := simulated.New(0, logger.Nop())
	s := NewService(repository.NewMemoryRepo(repository.SeedEntries()...), l, actionUC.NewRunner("whitelist", center, logger.Nop()), logger.Nop())
	return s, l, center
}

func message(t *testing.T, c *notificationUC.Center, id string) string {
	t.Helper()
	n, ok := c.Get(id)
	require.True(t, ok)
	return n.Message
}

func TestAddEntry(t *testing.T) {
	s, l, center := newService()

	res := s.Save(context.Background(), domain.Form{Address: newAddress, Amount: "250"})
	require.Equal(t, actionDomain.OutcomeSucceeded, res.Outcome)
	assert.Equal(t, "Address added to whitelist successfully!", message(t, center, res.NotificationID))

	entries := s.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, newAddress, entries[2].Address)
	assert.Equal(t, "1750", s.Total().String())

	ops, err := l.List(context.Background(), ledger.KindWhitelistSave)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, entries[2].ID, ops[0].Reference)
}

func TestEditAndUpdate(t *testing.T) {
	s, _, center := newService()

	form, err := s.Edit("2")
	require.NoError(t, err)
	assert.Equal(t, "500", form.Amount)
	assert.Equal(t, "2", s.EditingID())

	form.Amount = "800"
	res := s.Save(context.Background(), form)
	require.Equal(t, actionDomain.OutcomeSucceeded, res.Outcome)
	assert.Equal(t, "Address updated successfully!", message(t, center, res.NotificationID))
	assert.Empty(t, s.EditingID())

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "800", entries[1].Amount)

	_, err = s.Edit("99")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancelEdit(t *testing.T) {
	s, _, _ := newService()
	_, err := s.Edit("1")
	require.NoError(t, err)
	s.Cancel()

	res := s.Save(context.Background(), domain.Form{Address: newAddress, Amount: "1"})
	require.Equal(t, actionDomain.OutcomeSucceeded, res.Outcome)
	assert.Len(t, s.Entries(), 3)
}

func TestSaveValidation(t *testing.T) {
	s, _, _ := newService()
	for _, f := range []domain.Form{
		{Address: "0x1234", Amount: "10"},
		{Address: newAddress, Amount: "0"},
		{Address: newAddress, Amount: ""},
	} {
		res := s.Save(context.Background(), f)
		assert.Equal(t, actionDomain.OutcomeRejected, res.Outcome)
	}
	assert.Len(t, s.Entries(), 2)
}

func TestSaveFailureKeepsEditing(t *testing.T) {
	s, l, center := newService()
	l.FailWith(ledger.KindWhitelistSave, errors.New("tx underpriced"))
	_, err := s.Edit("1")
	require.NoError(t, err)

	res := s.Save(context.Background(), domain.Form{Address: newAddress, Amount: "5"})
	require.Equal(t, actionDomain.OutcomeFailed, res.Outcome)
	assert.Equal(t, "Failed to update whitelist. Please try again.", message(t, center, res.NotificationID))
	assert.Equal(t, "1", s.EditingID())
	e := s.Entries()[0]
	assert.Equal(t, "1000", e.Amount)
}

func TestDelete(t *testing.T) {
	s, l, center := newService()

	res := s.Delete(context.Background(), "1")
	require.Equal(t, actionDomain.OutcomeSucceeded, res.Outcome)
	assert.Equal(t, "Address removed from whitelist successfully!", message(t, center, res.NotificationID))
	assert.Len(t, s.Entries(), 1)

	res = s.Delete(context.Background(), "1")
	assert.Equal(t, actionDomain.OutcomeRejected, res.Outcome)

	l.FailWith(ledger.KindWhitelistDelete, errors.New("revert"))
	res = s.Delete(context.Background(), "2")
	require.Equal(t, actionDomain.OutcomeFailed, res.Outcome)
	assert.Equal(t, "Failed to remove address from whitelist. Please try again.", message(t, center, res.NotificationID))
	assert.Len(t, s.Entries(), 1)
}

func TestSearch(t *testing.T) {
	s, _, _ := newService()

	assert.Len(t, s.Search(""), 2)
	got := s.Search("ABCDEF12345")
	assert.Len(t, got, 2)
	got = s.Search("0xabcd")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
	got = s.Search("500")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
	assert.Empty(t, s.Search("zzz"))
}
