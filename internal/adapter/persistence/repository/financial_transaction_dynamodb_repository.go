package repository

import (
	"context"
	"errors"
	"strconv"

	"escritorio_juridico/internal/domain/entities"
	"escritorio_juridico/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultTransactionsTableName = "financial_transactions"

type financialTransactionItem struct {
	ID                 string                 `dynamodbav:"id"`
	CaseID             string                 `dynamodbav:"case_id"`
	Kind               string                 `dynamodbav:"kind"`
	Description        string                 `dynamodbav:"description"`
	Amount             string                 `dynamodbav:"amount"`
	Status             string                 `dynamodbav:"status"`
	Date               string                 `dynamodbav:"date"`
	ProviderPaymentID  string                 `dynamodbav:"provider_payment_id,omitempty"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// FinancialTransactionDynamoRepository persists FinancialTransaction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: case_id-index (PK: case_id)

type FinancialTransactionDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IFinancialTransactionRepository = (*FinancialTransactionDynamoRepository)(nil)

func NewFinancialTransactionDynamoRepository(ddb DynamoDBAPI, tableName string) *FinancialTransactionDynamoRepository {
	return &FinancialTransactionDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultTransactionsTableName),
	}
}

func (r *FinancialTransactionDynamoRepository) Create(ctx context.Context, t entities.FinancialTransaction) (entities.FinancialTransaction, error) {
	av, err := attributevalue.MarshalMap(toFinancialTransactionItem(t))
	if err != nil {
		return entities.FinancialTransaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.FinancialTransaction{}, err
	}
	return t, nil
}

func (r *FinancialTransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.FinancialTransaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FinancialTransaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.FinancialTransaction{}, nil
	}

	var it financialTransactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FinancialTransaction{}, err
	}
	return fromFinancialTransactionItem(it), nil
}

func (r *FinancialTransactionDynamoRepository) ListByCaseID(ctx context.Context, caseID string) ([]entities.FinancialTransaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(caseIDIndex),
		KeyConditionExpression: aws.String("case_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: caseID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.FinancialTransaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it financialTransactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromFinancialTransactionItem(it))
	}
	return items, nil
}

// Settle overwrites status, date and provider fields of an existing transaction.
// A missing transaction yields a zero value.
func (r *FinancialTransactionDynamoRepository) Settle(ctx context.Context, t entities.FinancialTransaction) (entities.FinancialTransaction, error) {
	it := toFinancialTransactionItem(t)
	payload, err := attributevalue.Marshal(it.ProviderPayload)
	if err != nil {
		return entities.FinancialTransaction{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: t.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #status = :status, #date = :date, #provider_payment_id = :provider_payment_id, " +
			"#provider_payload = :provider_payload, #provider_payload_raw = :provider_payload_raw"),
		ExpressionAttributeNames: map[string]string{
			"#id":                   "id",
			"#status":               "status",
			"#date":                 "date",
			"#provider_payment_id":  "provider_payment_id",
			"#provider_payload":     "provider_payload",
			"#provider_payload_raw": "provider_payload_raw",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":               &types.AttributeValueMemberS{Value: it.Status},
			":date":                 &types.AttributeValueMemberS{Value: it.Date},
			":provider_payment_id":  &types.AttributeValueMemberS{Value: it.ProviderPaymentID},
			":provider_payload":     payload,
			":provider_payload_raw": &types.AttributeValueMemberS{Value: it.ProviderPayloadRaw},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.FinancialTransaction{}, nil
		}
		return entities.FinancialTransaction{}, err
	}

	var updated financialTransactionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &updated); err != nil {
		return entities.FinancialTransaction{}, err
	}
	return fromFinancialTransactionItem(updated), nil
}

func toFinancialTransactionItem(t entities.FinancialTransaction) financialTransactionItem {
	return financialTransactionItem{
		ID:                 t.ID,
		CaseID:             t.CaseID,
		Kind:               string(t.Kind),
		Description:        t.Description,
		Amount:             floatToString(t.Amount),
		Status:             string(t.Status),
		Date:               formatTime(t.Date),
		ProviderPaymentID:  t.ProviderPaymentID,
		ProviderPayload:    t.ProviderPayload,
		ProviderPayloadRaw: string(t.ProviderPayloadRaw),
	}
}

func fromFinancialTransactionItem(it financialTransactionItem) entities.FinancialTransaction {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	t := entities.FinancialTransaction{
		ID:                it.ID,
		CaseID:            it.CaseID,
		Kind:              entities.TransactionKind(it.Kind),
		Description:       it.Description,
		Amount:            amount,
		Status:            entities.TransactionStatus(it.Status),
		Date:              parseTime(it.Date),
		ProviderPaymentID: it.ProviderPaymentID,
		ProviderPayload:   it.ProviderPayload,
	}
	if it.ProviderPayloadRaw != "" {
		t.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return t
}
