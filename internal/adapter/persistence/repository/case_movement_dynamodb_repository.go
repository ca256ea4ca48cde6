package repository

import (
	"context"
	"sort"

	"escritorio_juridico/internal/domain/entities"
	"escritorio_juridico/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultMovementsTableName = "case_movements"

type caseMovementItem struct {
	ID         string `dynamodbav:"id"`
	CaseID     string `dynamodbav:"case_id"`
	FromStatus string `dynamodbav:"from_status"`
	ToStatus   string `dynamodbav:"to_status"`
	Actor      string `dynamodbav:"actor"`
	Note       string `dynamodbav:"note,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// CaseMovementDynamoRepository persists case history entries.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: case_id-index (PK: case_id)
type CaseMovementDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICaseMovementRepository = (*CaseMovementDynamoRepository)(nil)

func NewCaseMovementDynamoRepository(ddb DynamoDBAPI, tableName string) *CaseMovementDynamoRepository {
	return &CaseMovementDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultMovementsTableName),
	}
}

func (r *CaseMovementDynamoRepository) Create(ctx context.Context, m entities.CaseMovement) (entities.CaseMovement, error) {
	av, err := attributevalue.MarshalMap(caseMovementItem{
		ID:         m.ID,
		CaseID:     m.CaseID,
		FromStatus: string(m.FromStatus),
		ToStatus:   string(m.ToStatus),
		Actor:      m.Actor,
		Note:       m.Note,
		CreatedAt:  formatTime(m.CreatedAt),
	})
	if err != nil {
		return entities.CaseMovement{}, err
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
		return entities.CaseMovement{}, err
	}
	return m, nil
}

// ListByCaseID returns the history of a case, oldest first.
func (r *CaseMovementDynamoRepository) ListByCaseID(ctx context.Context, caseID string) ([]entities.CaseMovement, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(caseIDIndex),
		KeyConditionExpression: aws.String("case_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: caseID},
		},
	}

	items := make([]entities.CaseMovement, 0)
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it caseMovementItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, entities.CaseMovement{
				ID:         it.ID,
				CaseID:     it.CaseID,
				FromStatus: entities.CaseStatus(it.FromStatus),
				ToStatus:   entities.CaseStatus(it.ToStatus),
				Actor:      it.Actor,
				Note:       it.Note,
				CreatedAt:  parseTime(it.CreatedAt),
			})
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}
