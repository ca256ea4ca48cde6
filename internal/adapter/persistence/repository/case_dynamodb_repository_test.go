package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"escritorio_juridico/internal/domain/entities"
	"escritorio_juridico/internal/domain/pipeline"
	"escritorio_juridico/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func mustMarshalCase(t *testing.T, c entities.Case) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toCaseItem(c))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestCaseDynamoRepository_Create(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewCaseDynamoRepository(ddb, "")

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := entities.Case{ID: "case-1", Titulo: "Revisional", Status: entities.CaseStatusEmElaboracao, CreatedAt: now, UpdatedAt: now}
	if _, err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if aws.ToString(ddb.putIn.TableName) != DefaultCasesTableName {
		t.Fatalf("unexpected table %q", aws.ToString(ddb.putIn.TableName))
	}
	if aws.ToString(ddb.putIn.ConditionExpression) != "attribute_not_exists(#id)" {
		t.Fatalf("create must not overwrite existing items")
	}
	status := ddb.putIn.Item["status"].(*types.AttributeValueMemberS).Value
	if status != "Em Elaboração" {
		t.Fatalf("unexpected stored status %q", status)
	}
}

func TestCaseDynamoRepository_GetByID(t *testing.T) {
	t.Run("not found returns zero value", func(t *testing.T) {
		repo := NewCaseDynamoRepository(&fakeDynamo{}, "cases-test")
		c, err := repo.GetByID(context.Background(), "missing")
		if err != nil || c.ID != "" {
			t.Fatalf("expected zero case, got %+v %v", c, err)
		}
	})

	t.Run("found", func(t *testing.T) {
		hearing := time.Date(2025, 5, 10, 14, 0, 0, 0, time.UTC)
		stored := entities.Case{ID: "case-1", Status: entities.CaseStatusAguardandoAudiencia, DataAudiencia: &hearing}
		ddb := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: mustMarshalCase(t, stored)}}
		repo := NewCaseDynamoRepository(ddb, "cases-test")

		c, err := repo.GetByID(context.Background(), "case-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Status != entities.CaseStatusAguardandoAudiencia || c.DataAudiencia == nil || !c.DataAudiencia.Equal(hearing) {
			t.Fatalf("unexpected case %+v", c)
		}
		if !aws.ToBool(ddb.getIn.ConsistentRead) {
			t.Fatalf("expected consistent read")
		}
	})
}

func TestCaseDynamoRepository_List(t *testing.T) {
	t.Run("phase filter expands to statuses and pages", func(t *testing.T) {
		older := entities.Case{ID: "a", Status: entities.CaseStatusPendente, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
		newer := entities.Case{ID: "b", Status: entities.CaseStatusAnalise, CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}
		ddb := &fakeDynamo{scanOut: []*dynamodb.ScanOutput{
			{
				Items:            []map[string]types.AttributeValue{mustMarshalCase(t, older)},
				LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "a"}},
			},
			{Items: []map[string]types.AttributeValue{mustMarshalCase(t, newer)}},
		}}
		repo := NewCaseDynamoRepository(ddb, "")

		res, err := repo.List(context.Background(), interfaces.CaseFilter{Phase: pipeline.PhaseTriagem, Area: "Trabalhista"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ddb.scanIn) != 2 || ddb.scanIn[1].ExclusiveStartKey == nil {
			t.Fatalf("expected paginated scan, got %d calls", len(ddb.scanIn))
		}
		expr := aws.ToString(ddb.scanIn[0].FilterExpression)
		if expr != "#status IN (:phase0, :phase1, :phase2, :phase3) AND #area = :area" {
			t.Fatalf("unexpected filter %q", expr)
		}
		if len(res) != 2 || res[0].ID != "b" {
			t.Fatalf("expected newest first, got %+v", res)
		}
	})

	t.Run("no filter scans everything", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewCaseDynamoRepository(ddb, "")
		if _, err := repo.List(context.Background(), interfaces.CaseFilter{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ddb.scanIn[0].FilterExpression != nil {
			t.Fatalf("expected no filter expression")
		}
	})

	t.Run("scan error", func(t *testing.T) {
		repo := NewCaseDynamoRepository(&fakeDynamo{err: errors.New("throttled")}, "")
		if _, err := repo.List(context.Background(), interfaces.CaseFilter{}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestCaseDynamoRepository_UpdateStatus(t *testing.T) {
	change := pipeline.StatusChange{
		From:           entities.CaseStatusEmElaboracao,
		To:             entities.CaseStatusProtocolado,
		NumeroProcesso: "0001234-56.2025.8.26.0100",
	}

	t.Run("conditions on expected status", func(t *testing.T) {
		updated := entities.Case{ID: "case-1", Status: entities.CaseStatusProtocolado, NumeroProcesso: change.NumeroProcesso}
		ddb := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: mustMarshalCase(t, updated)}}
		repo := NewCaseDynamoRepository(ddb, "")

		c, err := repo.UpdateStatus(context.Background(), "case-1", entities.CaseStatusEmElaboracao, change)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.NumeroProcesso != change.NumeroProcesso {
			t.Fatalf("unexpected case %+v", c)
		}
		in := ddb.updateIn
		if aws.ToString(in.ConditionExpression) != "attribute_exists(#id) AND #status = :expected" {
			t.Fatalf("unexpected condition %q", aws.ToString(in.ConditionExpression))
		}
		if in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberS).Value != "Em Elaboração" {
			t.Fatalf("expected status placeholder not bound")
		}
		if !strings.Contains(aws.ToString(in.UpdateExpression), "#numero_processo = :numero_processo") {
			t.Fatalf("protocol number not persisted: %q", aws.ToString(in.UpdateExpression))
		}
		if strings.Contains(aws.ToString(in.UpdateExpression), "resultado_sentenca") {
			t.Fatalf("unrelated fields must be left unchanged")
		}
	})

	t.Run("missing item maps to zero case", func(t *testing.T) {
		ddb := &fakeDynamo{err: &types.ConditionalCheckFailedException{Message: aws.String("failed")}}
		repo := NewCaseDynamoRepository(ddb, "")

		c, err := repo.UpdateStatus(context.Background(), "missing", entities.CaseStatusEmElaboracao, change)
		if err != nil || c.ID != "" {
			t.Fatalf("expected zero case, got %+v %v", c, err)
		}
	})

	t.Run("stale status maps to conflict", func(t *testing.T) {
		current := entities.Case{ID: "case-1", Status: entities.CaseStatusProtocolado}
		ddb := &fakeDynamo{err: &types.ConditionalCheckFailedException{
			Message: aws.String("failed"),
			Item:    mustMarshalCase(t, current),
		}}
		repo := NewCaseDynamoRepository(ddb, "")

		_, err := repo.UpdateStatus(context.Background(), "case-1", entities.CaseStatusEmElaboracao, change)
		if !errors.Is(err, interfaces.ErrStatusConflict) {
			t.Fatalf("expected ErrStatusConflict, got %v", err)
		}
	})
}

func TestCaseDynamoRepository_UpdateDetails(t *testing.T) {
	titulo := " Ação revisional "
	urg := entities.UrgencyAlta
	ddb := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: mustMarshalCase(t, entities.Case{ID: "case-1", Titulo: "Ação revisional"})}}
	repo := NewCaseDynamoRepository(ddb, "")

	c, err := repo.UpdateDetails(context.Background(), "case-1", entities.CaseDetails{Titulo: &titulo, Urgencia: &urg})
	if err != nil || c.ID != "case-1" {
		t.Fatalf("unexpected result %+v %v", c, err)
	}
	expr := aws.ToString(ddb.updateIn.UpdateExpression)
	if !strings.Contains(expr, "#titulo = :titulo") || !strings.Contains(expr, "#urgencia = :urgencia") || strings.Contains(expr, "#area") {
		t.Fatalf("unexpected update expression %q", expr)
	}
	if ddb.updateIn.ExpressionAttributeValues[":titulo"].(*types.AttributeValueMemberS).Value != "Ação revisional" {
		t.Fatalf("expected trimmed title")
	}
	if strings.Contains(expr, "#status") {
		t.Fatalf("details update must never touch status")
	}
}

func TestCaseDynamoRepository_Delete(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewCaseDynamoRepository(ddb, "")
	if err := repo.Delete(context.Background(), "case-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ddb.deleteIn.Key["id"].(*types.AttributeValueMemberS).Value != "case-1" {
		t.Fatalf("unexpected key")
	}
}
