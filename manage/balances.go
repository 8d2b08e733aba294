package manage

import (
	"context"
	"net/http"
)

// Balance is one credit balance on a project.
type Balance struct {
	BalanceID       string  `json:"balance_id"`
	Amount          float64 `json:"amount"`
	Units           string  `json:"units"`
	PurchaseOrderID string  `json:"purchase_order_id,omitempty"`
}

type balancesPage struct {
	Balances []Balance `json:"balances"`
}

// ListBalances returns the project's credit balances.
func (c *Client) ListBalances(ctx context.Context, projectID string) ([]Balance, error) {
	var page balancesPage
	err := c.dg.DoJSON(
		ctx, http.MethodGet,
		"/v1/projects/"+projectID+"/balances",
		nil, nil, &page,
	)
	if err != nil {
		return nil, err
	}
	return page.Balances, nil
}

// GetBalance returns one balance by id.
func (c *Client) GetBalance(
	ctx context.Context,
	projectID, balanceID string,
) (*Balance, error) {
	var balance Balance
	err := c.dg.DoJSON(
		ctx, http.MethodGet,
		"/v1/projects/"+projectID+"/balances/"+balanceID,
		nil, nil, &balance,
	)
	if err != nil {
		return nil, err
	}
	return &balance, nil
}
