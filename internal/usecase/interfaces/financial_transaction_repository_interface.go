package interfaces

import (
	"context"

	"escritorio_juridico/internal/domain/entities"
)

//go:generate mockgen -source=financial_transaction_repository_interface.go -destination=mocks/financial_transaction_repository_interface.go -package=mock_interfaces

// IFinancialTransactionRepository abstracts DynamoDB persistence for FinancialTransaction.

type IFinancialTransactionRepository interface {
	Create(ctx context.Context, t entities.FinancialTransaction) (entities.FinancialTransaction, error)
	GetByID(ctx context.Context, id string) (entities.FinancialTransaction, error)
	ListByCaseID(ctx context.Context, caseID string) ([]entities.FinancialTransaction, error)
	Settle(ctx context.Context, t entities.FinancialTransaction) (entities.FinancialTransaction, error)
}
