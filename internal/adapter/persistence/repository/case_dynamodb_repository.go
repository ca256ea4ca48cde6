package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"escritorio_juridico/internal/domain/entities"
	"escritorio_juridico/internal/domain/pipeline"
	"escritorio_juridico/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultCasesTableName = "cases"

type caseItem struct {
	ID                string `dynamodbav:"id"`
	ClientID          string `dynamodbav:"client_id"`
	Titulo            string `dynamodbav:"titulo"`
	Area              string `dynamodbav:"area"`
	Descricao         string `dynamodbav:"descricao,omitempty"`
	NumeroProcesso    string `dynamodbav:"numero_processo,omitempty"`
	Status            string `dynamodbav:"status"`
	Urgencia          string `dynamodbav:"urgencia"`
	ResultadoSentenca string `dynamodbav:"resultado_sentenca,omitempty"`
	DataAudiencia     string `dynamodbav:"data_audiencia,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// CaseDynamoRepository persists Case entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Status updates are conditional on the status the caller validated against,
// so two staff members racing on the same case cannot both win.
type CaseDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICaseRepository = (*CaseDynamoRepository)(nil)

func NewCaseDynamoRepository(ddb DynamoDBAPI, tableName string) *CaseDynamoRepository {
	return &CaseDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultCasesTableName),
	}
}

func (r *CaseDynamoRepository) Create(ctx context.Context, c entities.Case) (entities.Case, error) {
	av, err := attributevalue.MarshalMap(toCaseItem(c))
	if err != nil {
		return entities.Case{}, err
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
		return entities.Case{}, err
	}
	return c, nil
}

func (r *CaseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Case, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Case{}, err
	}
	if len(out.Item) == 0 {
		return entities.Case{}, nil
	}
	return unmarshalCase(out.Item)
}

// List scans the table applying filter server side. Results are ordered by
// creation time, newest first.
func (r *CaseDynamoRepository) List(ctx context.Context, filter interfaces.CaseFilter) ([]entities.Case, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if expr, names, values := buildCaseFilter(filter); expr != "" {
		input.FilterExpression = aws.String(expr)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var cases []entities.Case
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			c, err := unmarshalCase(raw)
			if err != nil {
				return nil, err
			}
			cases = append(cases, c)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.SliceStable(cases, func(i, j int) bool {
		return cases[i].CreatedAt.After(cases[j].CreatedAt)
	})
	return cases, nil
}

func buildCaseFilter(f interfaces.CaseFilter) (string, map[string]string, map[string]types.AttributeValue) {
	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	eq := func(attr, value string) {
		names["#"+attr] = attr
		values[":"+attr] = &types.AttributeValueMemberS{Value: value}
		conds = append(conds, fmt.Sprintf("#%s = :%s", attr, attr))
	}

	if f.Status != "" {
		eq("status", string(f.Status))
	}
	if f.Phase != "" {
		statuses := pipeline.StatusesIn(f.Phase)
		placeholders := make([]string, 0, len(statuses))
		for i, s := range statuses {
			key := fmt.Sprintf(":phase%d", i)
			values[key] = &types.AttributeValueMemberS{Value: string(s)}
			placeholders = append(placeholders, key)
		}
		names["#status"] = "status"
		if len(placeholders) == 0 {
			// Unknown phase matches nothing.
			values[":phase_none"] = &types.AttributeValueMemberS{Value: ""}
			placeholders = append(placeholders, ":phase_none")
		}
		conds = append(conds, fmt.Sprintf("#status IN (%s)", strings.Join(placeholders, ", ")))
	}
	if f.ClientID != "" {
		eq("client_id", f.ClientID)
	}
	if f.Area != "" {
		eq("area", f.Area)
	}
	if f.Urgencia != "" {
		eq("urgencia", string(f.Urgencia))
	}

	if len(conds) == 0 {
		return "", nil, nil
	}
	return strings.Join(conds, " AND "), names, values
}

// UpdateStatus applies change only if the stored status still equals expected.
// A missing case yields a zero Case; a status mismatch yields ErrStatusConflict.
func (r *CaseDynamoRepository) UpdateStatus(ctx context.Context, id string, expected entities.CaseStatus, change pipeline.StatusChange) (entities.Case, error) {
	now := formatTime(time.Now())
	sets := []string{"#status = :status", "#updated_at = :updated_at"}
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(change.To)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
		":expected":   &types.AttributeValueMemberS{Value: string(expected)},
	}
	if change.NumeroProcesso != "" {
		sets = append(sets, "#numero_processo = :numero_processo")
		names["#numero_processo"] = "numero_processo"
		values[":numero_processo"] = &types.AttributeValueMemberS{Value: change.NumeroProcesso}
	}
	if change.ResultadoSentenca != "" {
		sets = append(sets, "#resultado_sentenca = :resultado_sentenca")
		names["#resultado_sentenca"] = "resultado_sentenca"
		values[":resultado_sentenca"] = &types.AttributeValueMemberS{Value: string(change.ResultadoSentenca)}
	}
	if change.DataAudiencia != nil {
		sets = append(sets, "#data_audiencia = :data_audiencia")
		names["#data_audiencia"] = "data_audiencia"
		values[":data_audiencia"] = &types.AttributeValueMemberS{Value: formatTime(*change.DataAudiencia)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:                 aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:                    aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeNames:            names,
		ExpressionAttributeValues:           values,
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.Case{}, nil
			}
			return entities.Case{}, interfaces.ErrStatusConflict
		}
		return entities.Case{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Case{}, nil
	}
	return unmarshalCase(out.Attributes)
}

func (r *CaseDynamoRepository) UpdateDetails(ctx context.Context, id string, details entities.CaseDetails) (entities.Case, error) {
	sets := []string{"#updated_at = :updated_at"}
	names := map[string]string{"#updated_at": "updated_at"}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
	}
	set := func(attr string, v *string) {
		if v == nil {
			return
		}
		sets = append(sets, fmt.Sprintf("#%s = :%s", attr, attr))
		names["#"+attr] = attr
		values[":"+attr] = &types.AttributeValueMemberS{Value: strings.TrimSpace(*v)}
	}
	set("titulo", details.Titulo)
	set("area", details.Area)
	set("descricao", details.Descricao)
	set("client_id", details.ClientID)
	if details.Urgencia != nil {
		u := string(*details.Urgencia)
		set("urgencia", &u)
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Case{}, nil
		}
		return entities.Case{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Case{}, nil
	}
	return unmarshalCase(out.Attributes)
}

func (r *CaseDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func unmarshalCase(raw map[string]types.AttributeValue) (entities.Case, error) {
	var it caseItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Case{}, err
	}
	return fromCaseItem(it), nil
}

func toCaseItem(c entities.Case) caseItem {
	it := caseItem{
		ID:                c.ID,
		ClientID:          c.ClientID,
		Titulo:            c.Titulo,
		Area:              c.Area,
		Descricao:         c.Descricao,
		NumeroProcesso:    c.NumeroProcesso,
		Status:            string(c.Status),
		Urgencia:          string(c.Urgencia),
		ResultadoSentenca: string(c.ResultadoSentenca),
		CreatedAt:         formatTime(c.CreatedAt),
		UpdatedAt:         formatTime(c.UpdatedAt),
	}
	if c.DataAudiencia != nil {
		it.DataAudiencia = formatTime(*c.DataAudiencia)
	}
	return it
}

func fromCaseItem(it caseItem) entities.Case {
	c := entities.Case{
		ID:                it.ID,
		ClientID:          it.ClientID,
		Titulo:            it.Titulo,
		Area:              it.Area,
		Descricao:         it.Descricao,
		NumeroProcesso:    it.NumeroProcesso,
		Status:            entities.CaseStatus(it.Status),
		Urgencia:          entities.Urgency(it.Urgencia),
		ResultadoSentenca: entities.SentenceOutcome(it.ResultadoSentenca),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	if it.DataAudiencia != "" {
		d := parseTime(it.DataAudiencia)
		c.DataAudiencia = &d
	}
	return c
}
