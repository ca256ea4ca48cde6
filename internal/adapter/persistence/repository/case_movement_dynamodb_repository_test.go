package repository

import (
	"context"
	"testing"
	"time"

	"escritorio_juridico/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestCaseMovementDynamoRepository(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewCaseMovementDynamoRepository(ddb, "movements-test")
		m := entities.CaseMovement{
			ID:         "mv-1",
			CaseID:     "case-1",
			FromStatus: entities.CaseStatusSentenca,
			ToStatus:   entities.CaseStatusEmRecurso,
			Actor:      "staff-7",
			CreatedAt:  time.Now(),
		}
		if _, err := repo.Create(context.Background(), m); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if aws.ToString(ddb.putIn.TableName) != "movements-test" {
			t.Fatalf("unexpected table %q", aws.ToString(ddb.putIn.TableName))
		}
		if ddb.putIn.Item["actor"].(*types.AttributeValueMemberS).Value != "staff-7" {
			t.Fatalf("actor not stored")
		}
		if _, ok := ddb.putIn.Item["note"]; ok {
			t.Fatalf("empty note should be omitted")
		}
	})

	t.Run("list by case oldest first", func(t *testing.T) {
		item := func(id, created string) map[string]types.AttributeValue {
			av, err := attributevalue.MarshalMap(caseMovementItem{ID: id, CaseID: "case-1", CreatedAt: created})
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			return av
		}
		ddb := &fakeDynamo{queryOut: []*dynamodb.QueryOutput{
			{
				Items:            []map[string]types.AttributeValue{item("late", "2025-02-01T00:00:00Z")},
				LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "late"}},
			},
			{Items: []map[string]types.AttributeValue{item("early", "2025-01-01T00:00:00Z")}},
		}}
		repo := NewCaseMovementDynamoRepository(ddb, "")

		res, err := repo.ListByCaseID(context.Background(), "case-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 || res[0].ID != "early" {
			t.Fatalf("unexpected order %+v", res)
		}
		if aws.ToString(ddb.queryIn[0].IndexName) != caseIDIndex {
			t.Fatalf("expected query on %s", caseIDIndex)
		}
	})
}
