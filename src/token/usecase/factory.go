package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	actionDomain "github.com/MMN3003/carbondesk/src/action/domain"
	actionUC "github.com/MMN3003/carbondesk/src/action/usecase"
	ledger "github.com/MMN3003/carbondesk/src/ledger/domain"
	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/MMN3003/carbondesk/src/token/domain"
)

const (
	DefaultDecimals = "18"
	maxDecimals     = 36
)

// CreateForm is the token creation form. Decimals defaults to 18 when empty.
type CreateForm struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Decimals    string `json:"decimals"`
}

// Factory deploys new carbon credit tokens and adds them to the catalog.
type Factory struct {
	catalog domain.Catalog
	ledger  ledger.Ledger
	runner  *actionUC.Runner
	logger  *logger.Logger
}

func NewFactory(catalog domain.Catalog, l ledger.Ledger, runner *actionUC.Runner, logg *logger.Logger) *Factory {
	return &Factory{catalog: catalog, ledger: l, runner: runner, logger: logg}
}

func (f *Factory) Busy() bool { return f.runner.Busy() }

func (f *Factory) Create(ctx context.Context, form CreateForm) actionDomain.Result {
	var tok domain.Token
	return f.runner.Submit(ctx, actionUC.Action{
		Name: "create-token",
		Validate: func() error {
			t, err := f.validate(form)
			tok = t
			return err
		},
		Work: func(ctx context.Context) error {
			_, err := f.ledger.Submit(ctx, ledger.Operation{
				Kind:      ledger.KindTokenCreate,
				Asset:     tok.Symbol,
				Amount:    tok.Balance,
				Reference: tok.Name,
			})
			return err
		},
		Success: func() string {
			return fmt.Sprintf(`Token "%s" (%s) created successfully!`, tok.Name, tok.Symbol)
		},
		Failure: "Failed to create token. Please check your inputs and try again.",
		OnSuccess: func() {
			if err := f.catalog.Add(tok); err != nil {
				f.logger.Errorf("adding %s to catalog: %v", tok.Symbol, err)
			}
		},
	})
}

func (f *Factory) validate(form CreateForm) (domain.Token, error) {
	name := strings.TrimSpace(form.Name)
	symbol := strings.ToUpper(strings.TrimSpace(form.Symbol))
	desc := strings.TrimSpace(form.Description)
	if name == "" {
		return domain.Token{}, actionDomain.Invalid("name", "Please enter a token name.")
	}
	if symbol == "" {
		return domain.Token{}, actionDomain.Invalid("symbol", "Please enter a token symbol.")
	}
	if desc == "" {
		return domain.Token{}, actionDomain.Invalid("description", "Please enter a token description.")
	}
	raw := strings.TrimSpace(form.Decimals)
	if raw == "" {
		raw = DefaultDecimals
	}
	decimals, err := strconv.Atoi(raw)
	if err != nil || decimals < 0 || decimals > maxDecimals {
		return domain.Token{}, actionDomain.Invalid("decimals", fmt.Sprintf("Decimals must be a whole number between 0 and %d.", maxDecimals))
	}
	id := strings.ToLower(symbol)
	if _, exists := f.catalog.Get(id); exists {
		return domain.Token{}, actionDomain.Invalid("symbol", fmt.Sprintf("A token with symbol %s already exists.", symbol))
	}
	return domain.Token{
		ID:          id,
		Name:        name,
		Symbol:      symbol,
		Balance:     "0",
		Decimals:    decimals,
		Description: desc,
	}, nil
}
