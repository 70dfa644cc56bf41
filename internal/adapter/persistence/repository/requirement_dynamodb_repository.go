package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"buildconnect/internal/domain/entities"
	"buildconnect/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRequirementsTableName = "requirements"
	requirementsHomeownerIndex   = "homeowner-index"
	requirementsStatusIndex      = "status-index"

	removeQuoteRefAttempts = 3
)

type timelineItem struct {
	StartDate string `dynamodbav:"start_date,omitempty"`
	EndDate   string `dynamodbav:"end_date,omitempty"`
}

type requirementItem struct {
	ID                    string       `dynamodbav:"id"`
	Homeowner             string       `dynamodbav:"homeowner"`
	ServiceType           string       `dynamodbav:"service_type"`
	Title                 string       `dynamodbav:"title"`
	Description           string       `dynamodbav:"description"`
	Budget                float64      `dynamodbav:"budget"`
	BudgetRange           string       `dynamodbav:"budget_range"`
	Timeline              timelineItem `dynamodbav:"timeline"`
	Location              string       `dynamodbav:"location"`
	BuildingType          string       `dynamodbav:"building_type"`
	Size                  float64      `dynamodbav:"size,omitempty"`
	Bedrooms              int          `dynamodbav:"bedrooms,omitempty"`
	Bathrooms             int          `dynamodbav:"bathrooms,omitempty"`
	Features              []string     `dynamodbav:"features,omitempty"`
	Status                string       `dynamodbav:"status"`
	SelectedQuote         string       `dynamodbav:"selected_quote,omitempty"`
	Quotes                []string     `dynamodbav:"quotes"`
	IsActive              bool         `dynamodbav:"is_active"`
	Priority              string       `dynamodbav:"priority"`
	RequestMultipleQuotes bool         `dynamodbav:"request_multiple_quotes"`
	ContactPreference     string       `dynamodbav:"contact_preference,omitempty"`
	CreatedAt             string       `dynamodbav:"created_at"`
	UpdatedAt             string       `dynamodbav:"updated_at"`
}

// RequirementDynamoRepository persists Requirement entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: homeowner-index (PK: homeowner)
//   - GSI: status-index (PK: status)
//
// selected_quote is written only by the selection transaction and is absent
// until then, so attribute_not_exists(selected_quote) doubles as the
// single-winner guard.

type RequirementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRequirementRepository = (*RequirementDynamoRepository)(nil)

func NewRequirementDynamoRepository(ddb *dynamodb.Client) *RequirementDynamoRepository {
	return &RequirementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUIREMENTS_TABLE", defaultRequirementsTableName),
	}
}

func (r *RequirementDynamoRepository) Create(ctx context.Context, req entities.Requirement) (entities.Requirement, error) {
	av, err := attributevalue.MarshalMap(toRequirementItem(req))
	if err != nil {
		return entities.Requirement{}, err
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
		return entities.Requirement{}, err
	}
	return req, nil
}

func (r *RequirementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Requirement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Requirement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Requirement{}, nil
	}

	var it requirementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Requirement{}, err
	}
	return fromRequirementItem(it), nil
}

func (r *RequirementDynamoRepository) ListByHomeowner(ctx context.Context, homeownerID string) ([]entities.Requirement, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requirementsHomeownerIndex),
		KeyConditionExpression: aws.String("#homeowner = :homeowner"),
		ExpressionAttributeNames: map[string]string{
			"#homeowner": "homeowner",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":homeowner": &types.AttributeValueMemberS{Value: homeownerID},
		},
	})
	if err != nil {
		return nil, err
	}

	requirements, err := unmarshalRequirements(out.Items)
	if err != nil {
		return nil, err
	}
	sort.Slice(requirements, func(i, j int) bool {
		return requirements[i].CreatedAt.After(requirements[j].CreatedAt)
	})
	return requirements, nil
}

func (r *RequirementDynamoRepository) ListOpen(ctx context.Context, f interfaces.RequirementFilter) ([]entities.Requirement, error) {
	filters := []string{"#is_active = :active"}
	names := map[string]string{
		"#status":    "status",
		"#is_active": "is_active",
	}
	values := map[string]types.AttributeValue{
		":open":   &types.AttributeValueMemberS{Value: string(entities.RequirementStatusOpen)},
		":active": &types.AttributeValueMemberBOOL{Value: true},
	}
	if f.BuildingType != "" {
		filters = append(filters, "#building_type = :building_type")
		names["#building_type"] = "building_type"
		values[":building_type"] = &types.AttributeValueMemberS{Value: string(f.BuildingType)}
	}
	if f.BudgetRange != "" {
		filters = append(filters, "#budget_range = :budget_range")
		names["#budget_range"] = "budget_range"
		values[":budget_range"] = &types.AttributeValueMemberS{Value: string(f.BudgetRange)}
	}
	if f.Location != "" {
		filters = append(filters, "contains(#location, :location)")
		names["#location"] = "location"
		values[":location"] = &types.AttributeValueMemberS{Value: f.Location}
	}

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(requirementsStatusIndex),
		KeyConditionExpression:    aws.String("#status = :open"),
		FilterExpression:          aws.String(strings.Join(filters, " AND ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return nil, err
	}

	requirements, err := unmarshalRequirements(out.Items)
	if err != nil {
		return nil, err
	}
	sort.Slice(requirements, func(i, j int) bool {
		pi, pj := priorityRank(requirements[i].Priority), priorityRank(requirements[j].Priority)
		if pi != pj {
			return pi > pj
		}
		return requirements[i].CreatedAt.After(requirements[j].CreatedAt)
	})
	return requirements, nil
}

func (r *RequirementDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.RequirementStatus) (entities.Requirement, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
			":now":  &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Requirement{}, nil
		}
		return entities.Requirement{}, err
	}

	var it requirementItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Requirement{}, err
	}
	return fromRequirementItem(it), nil
}

func (r *RequirementDynamoRepository) Cancel(ctx context.Context, id string) (entities.Requirement, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :cancelled, #is_active = :inactive, #updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :completed AND #status <> :cancelled"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#is_active":  "is_active",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cancelled": &types.AttributeValueMemberS{Value: string(entities.RequirementStatusCancelled)},
			":completed": &types.AttributeValueMemberS{Value: string(entities.RequirementStatusCompleted)},
			":inactive":  &types.AttributeValueMemberBOOL{Value: false},
			":now":       &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Requirement{}, nil
		}
		return entities.Requirement{}, err
	}

	var it requirementItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Requirement{}, err
	}
	return fromRequirementItem(it), nil
}

func (r *RequirementDynamoRepository) RemoveQuoteRef(ctx context.Context, requirementID, quoteID string) error {
	// List positions shift under concurrent removals, so the index is
	// re-read and the element pinned by a condition on each attempt.
	for attempt := 0; attempt < removeQuoteRefAttempts; attempt++ {
		current, err := r.GetByID(ctx, requirementID)
		if err != nil {
			return err
		}
		if current.ID == "" {
			return nil
		}

		idx := -1
		for i, qid := range current.Quotes {
			if qid == quoteID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil
		}

		_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: requirementID},
			},
			UpdateExpression:    aws.String(fmt.Sprintf("REMOVE #quotes[%d] SET #updated_at = :now", idx)),
			ConditionExpression: aws.String(fmt.Sprintf("#quotes[%d] = :qid", idx)),
			ExpressionAttributeNames: map[string]string{
				"#quotes":     "quotes",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":qid": &types.AttributeValueMemberS{Value: quoteID},
				":now": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
			},
		})
		if err == nil {
			return nil
		}
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			return err
		}
	}
	return fmt.Errorf("quote reference removal kept losing races requirement_id=%s quote_id=%s", requirementID, quoteID)
}

func priorityRank(p entities.Priority) int {
	switch p {
	case entities.PriorityUrgent:
		return 3
	case entities.PriorityHigh:
		return 2
	case entities.PriorityMedium:
		return 1
	default:
		return 0
	}
}

func unmarshalRequirements(raw []map[string]types.AttributeValue) ([]entities.Requirement, error) {
	requirements := make([]entities.Requirement, 0, len(raw))
	for _, item := range raw {
		var it requirementItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		requirements = append(requirements, fromRequirementItem(it))
	}
	return requirements, nil
}

func toRequirementItem(r entities.Requirement) requirementItem {
	quotes := r.Quotes
	if quotes == nil {
		quotes = []string{}
	}
	return requirementItem{
		ID:          r.ID,
		Homeowner:   r.Homeowner,
		ServiceType: string(r.ServiceType),
		Title:       r.Title,
		Description: r.Description,
		Budget:      r.Budget,
		BudgetRange: string(r.BudgetRange),
		Timeline: timelineItem{
			StartDate: formatOptionalTime(r.Timeline.StartDate),
			EndDate:   formatOptionalTime(r.Timeline.EndDate),
		},
		Location:              r.Location,
		BuildingType:          string(r.BuildingType),
		Size:                  r.Size,
		Bedrooms:              r.Bedrooms,
		Bathrooms:             r.Bathrooms,
		Features:              r.Features,
		Status:                string(r.Status),
		SelectedQuote:         r.SelectedQuote,
		Quotes:                quotes,
		IsActive:              r.IsActive,
		Priority:              string(r.Priority),
		RequestMultipleQuotes: r.RequestMultipleQuotes,
		ContactPreference:     r.ContactPreference,
		CreatedAt:             r.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:             r.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRequirementItem(it requirementItem) entities.Requirement {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Requirement{
		ID:          it.ID,
		Homeowner:   it.Homeowner,
		ServiceType: entities.ServiceType(it.ServiceType),
		Title:       it.Title,
		Description: it.Description,
		Budget:      it.Budget,
		BudgetRange: entities.BudgetRange(it.BudgetRange),
		Timeline: entities.Timeline{
			StartDate: parseOptionalTime(it.Timeline.StartDate),
			EndDate:   parseOptionalTime(it.Timeline.EndDate),
		},
		Location:              it.Location,
		BuildingType:          entities.BuildingType(it.BuildingType),
		Size:                  it.Size,
		Bedrooms:              it.Bedrooms,
		Bathrooms:             it.Bathrooms,
		Features:              it.Features,
		Status:                entities.RequirementStatus(it.Status),
		SelectedQuote:         it.SelectedQuote,
		Quotes:                it.Quotes,
		IsActive:              it.IsActive,
		Priority:              entities.Priority(it.Priority),
		RequestMultipleQuotes: it.RequestMultipleQuotes,
		ContactPreference:     it.ContactPreference,
		CreatedAt:             createdAt,
		UpdatedAt:             updatedAt,
	}
}
