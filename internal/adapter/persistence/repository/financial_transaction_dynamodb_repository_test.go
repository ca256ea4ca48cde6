package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"escritorio_juridico/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestFinancialTransactionDynamoRepository(t *testing.T) {
	tx := entities.FinancialTransaction{
		ID:          "tx-1",
		CaseID:      "case-1",
		Kind:        entities.TransactionKindCustas,
		Description: "Custas iniciais",
		Amount:      312.75,
		Status:      entities.TransactionStatusPendente,
		Date:        time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC),
	}

	t.Run("create stores amount as string", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewFinancialTransactionDynamoRepository(ddb, "")
		if _, err := repo.Create(context.Background(), tx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ddb.putIn.Item["amount"].(*types.AttributeValueMemberS).Value != "312.75" {
			t.Fatalf("unexpected amount attribute %+v", ddb.putIn.Item["amount"])
		}
	})

	t.Run("get by id round trip", func(t *testing.T) {
		av, err := attributevalue.MarshalMap(toFinancialTransactionItem(tx))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		repo := NewFinancialTransactionDynamoRepository(&fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: av}}, "")

		got, err := repo.GetByID(context.Background(), "tx-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Amount != 312.75 || got.Kind != entities.TransactionKindCustas || !got.Date.Equal(tx.Date) {
			t.Fatalf("unexpected transaction %+v", got)
		}
	})

	t.Run("settle missing item", func(t *testing.T) {
		ddb := &fakeDynamo{err: &types.ConditionalCheckFailedException{Message: aws.String("failed")}}
		repo := NewFinancialTransactionDynamoRepository(ddb, "")
		got, err := repo.Settle(context.Background(), tx)
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero transaction, got %+v %v", got, err)
		}
	})

	t.Run("settle success", func(t *testing.T) {
		settled := tx
		settled.Status = entities.TransactionStatusAprovado
		settled.ProviderPaymentID = "mp-1"
		settled.ProviderPayloadRaw = json.RawMessage(`{"id":"mp-1"}`)
		settled.ProviderPayload = map[string]interface{}{"id": "mp-1"}
		av, err := attributevalue.MarshalMap(toFinancialTransactionItem(settled))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		ddb := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: av}}
		repo := NewFinancialTransactionDynamoRepository(ddb, "")

		got, err := repo.Settle(context.Background(), settled)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.TransactionStatusAprovado || string(got.ProviderPayloadRaw) != `{"id":"mp-1"}` {
			t.Fatalf("unexpected transaction %+v", got)
		}
		if aws.ToString(ddb.updateIn.ConditionExpression) != "attribute_exists(#id)" {
			t.Fatalf("settle must require an existing item")
		}
	})
}
