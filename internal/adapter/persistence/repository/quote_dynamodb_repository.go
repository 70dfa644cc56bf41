package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"buildconnect/internal/domain/entities"
	"buildconnect/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesRequirementIndex = "requirement-index"
	quotesBidderIndex      = "bidder-index"
)

type milestoneItem struct {
	Name          string  `dynamodbav:"name"`
	Description   string  `dynamodbav:"description,omitempty"`
	EstimatedDate string  `dynamodbav:"estimated_date,omitempty"`
	Percentage    float64 `dynamodbav:"percentage"`
}

type quoteTimelineItem struct {
	StartDate  string          `dynamodbav:"start_date"`
	EndDate    string          `dynamodbav:"end_date"`
	Milestones []milestoneItem `dynamodbav:"milestones,omitempty"`
}

type budgetBreakdownItem struct {
	Materials float64 `dynamodbav:"materials"`
	Labor     float64 `dynamodbav:"labor"`
	Equipment float64 `dynamodbav:"equipment"`
	Permits   float64 `dynamodbav:"permits"`
	Overhead  float64 `dynamodbav:"overhead"`
	Profit    float64 `dynamodbav:"profit"`
	Other     float64 `dynamodbav:"other"`
}

type paymentScheduleItem struct {
	Milestone  string  `dynamodbav:"milestone"`
	Percentage float64 `dynamodbav:"percentage"`
	Amount     float64 `dynamodbav:"amount"`
	DueDate    string  `dynamodbav:"due_date,omitempty"`
}

type quoteTermsItem struct {
	PaymentSchedule    []paymentScheduleItem `dynamodbav:"payment_schedule,omitempty"`
	CancellationPolicy string                `dynamodbav:"cancellation_policy,omitempty"`
	RevisionPolicy     string                `dynamodbav:"revision_policy,omitempty"`
	AdditionalCharges  string                `dynamodbav:"additional_charges,omitempty"`
}

type quoteItem struct {
	ID              string              `dynamodbav:"id"`
	Requirement     string              `dynamodbav:"requirement"`
	BidderKey       string              `dynamodbav:"bidder_key"`
	Company         string              `dynamodbav:"company,omitempty"`
	Professional    string              `dynamodbav:"professional,omitempty"`
	DesignProposal  string              `dynamodbav:"design_proposal"`
	EstimatedBudget float64             `dynamodbav:"estimated_budget"`
	BudgetBreakdown budgetBreakdownItem `dynamodbav:"budget_breakdown"`
	Timeline        quoteTimelineItem   `dynamodbav:"timeline"`
	AdditionalNotes string              `dynamodbav:"additional_notes,omitempty"`
	Terms           quoteTermsItem      `dynamodbav:"terms"`
	Status          string              `dynamodbav:"status"`
	ValidUntil      string              `dynamodbav:"valid_until"`
	IsActive        bool                `dynamodbav:"is_active"`
	SubmittedAt     string              `dynamodbav:"submitted_at,omitempty"`
	CreatedAt       string              `dynamodbav:"created_at"`
	UpdatedAt       string              `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string), the "<requirement>#<bidder_key>" pair key. The
//     conditional put on id is the storage-layer uniqueness constraint for
//     one quote per (requirement, bidder).
//   - GSI: requirement-index (PK: requirement)
//   - GSI: bidder-index (PK: bidder_key)
//
// The submission and selection units are TransactWriteItems spanning this
// table and the requirements table; cancellation reasons are inspected to
// report which guard failed.

type QuoteDynamoRepository struct {
	ddb              *dynamodb.Client
	tableName        string
	requirementsName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:              ddb,
		tableName:        getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		requirementsName: getenvDefault("REQUIREMENTS_TABLE", defaultRequirementsTableName),
	}
}

func (r *QuoteDynamoRepository) Submit(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.requirementsName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: q.Requirement},
					},
					UpdateExpression: aws.String(
						"SET #quotes = list_append(if_not_exists(#quotes, :empty), :quote), #status = :reviewing, #updated_at = :now",
					),
					ConditionExpression: aws.String(
						"attribute_exists(#id) AND #is_active = :active AND (#status = :open OR #status = :reviewing)",
					),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#quotes":     "quotes",
						"#status":     "status",
						"#is_active":  "is_active",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":quote":     &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberS{Value: q.ID}}},
						":empty":     &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
						":open":      &types.AttributeValueMemberS{Value: string(entities.RequirementStatusOpen)},
						":reviewing": &types.AttributeValueMemberS{Value: string(entities.RequirementStatusReviewingQuotes)},
						":active":    &types.AttributeValueMemberBOOL{Value: true},
						":now":       &types.AttributeValueMemberS{Value: now},
					},
				},
			},
		},
	})
	if err != nil {
		if idx, ok := failedConditionIndex(err); ok {
			if idx == 0 {
				return entities.Quote{}, interfaces.ErrQuoteConflict
			}
			return entities.Quote{}, interfaces.ErrRequirementNotOpen
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) Select(ctx context.Context, requirementID, winnerID string, loserIDs []string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	statusNames := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}

	items := make([]types.TransactWriteItem, 0, len(loserIDs)+2)
	items = append(items, types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: winnerID},
			},
			UpdateExpression:         aws.String("SET #status = :accepted, #updated_at = :now"),
			ConditionExpression:      aws.String("#status = :submitted OR #status = :under_review"),
			ExpressionAttributeNames: statusNames,
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":accepted":     &types.AttributeValueMemberS{Value: string(entities.QuoteStatusAccepted)},
				":submitted":    &types.AttributeValueMemberS{Value: string(entities.QuoteStatusSubmitted)},
				":under_review": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusUnderReview)},
				":now":          &types.AttributeValueMemberS{Value: now},
			},
		},
	})
	for _, loserID := range loserIDs {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: loserID},
				},
				UpdateExpression:         aws.String("SET #status = :rejected, #updated_at = :now"),
				ConditionExpression:      aws.String("#status <> :withdrawn"),
				ExpressionAttributeNames: statusNames,
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":rejected":  &types.AttributeValueMemberS{Value: string(entities.QuoteStatusRejected)},
					":withdrawn": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusWithdrawn)},
					":now":       &types.AttributeValueMemberS{Value: now},
				},
			},
		})
	}
	items = append(items, types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.requirementsName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: requirementID},
			},
			UpdateExpression: aws.String("SET #status = :selected, #selected_quote = :winner, #updated_at = :now"),
			ConditionExpression: aws.String(
				"attribute_exists(#id) AND (#status = :open OR #status = :reviewing) AND attribute_not_exists(#selected_quote)",
			),
			ExpressionAttributeNames: map[string]string{
				"#id":             "id",
				"#status":         "status",
				"#selected_quote": "selected_quote",
				"#updated_at":     "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":selected":  &types.AttributeValueMemberS{Value: string(entities.RequirementStatusCompanySelected)},
				":winner":    &types.AttributeValueMemberS{Value: winnerID},
				":open":      &types.AttributeValueMemberS{Value: string(entities.RequirementStatusOpen)},
				":reviewing": &types.AttributeValueMemberS{Value: string(entities.RequirementStatusReviewingQuotes)},
				":now":       &types.AttributeValueMemberS{Value: now},
			},
		},
	})

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if idx, ok := failedConditionIndex(err); ok {
			switch {
			case idx == 0:
				return interfaces.ErrQuoteNotSelectable
			case idx == len(items)-1:
				return interfaces.ErrSelectionConflict
			default:
				// A sibling changed state mid-flight; the caller recomputes
				// the loser set and retries.
				return interfaces.ErrSelectionRetry
			}
		}
		return err
	}
	return nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByRequirementID(ctx context.Context, requirementID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesRequirementIndex),
		KeyConditionExpression: aws.String("#requirement = :rid"),
		ExpressionAttributeNames: map[string]string{
			"#requirement": "requirement",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requirementID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalQuotes(out.Items)
}

func (r *QuoteDynamoRepository) ListByBidder(ctx context.Context, bidderKey string, status entities.QuoteStatus) ([]entities.Quote, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesBidderIndex),
		KeyConditionExpression: aws.String("#bidder_key = :bk"),
		ExpressionAttributeNames: map[string]string{
			"#bidder_key": "bidder_key",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bk": &types.AttributeValueMemberS{Value: bidderKey},
		},
	}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames["#status"] = "status"
		in.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(status)}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}
	quotes, err := unmarshalQuotes(out.Items)
	if err != nil {
		return nil, err
	}
	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})
	return quotes, nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	tl, err := attributevalue.Marshal(toQuoteTimelineItem(q.Timeline))
	if err != nil {
		return entities.Quote{}, err
	}
	bd, err := attributevalue.Marshal(toBudgetBreakdownItem(q.BudgetBreakdown))
	if err != nil {
		return entities.Quote{}, err
	}
	terms, err := attributevalue.Marshal(toQuoteTermsItem(q.Terms))
	if err != nil {
		return entities.Quote{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: q.ID},
		},
		UpdateExpression: aws.String(
			"SET #design_proposal = :dp, #estimated_budget = :eb, #budget_breakdown = :bb, #timeline = :tl, #additional_notes = :notes, #terms = :terms, #updated_at = :now",
		),
		ConditionExpression: aws.String("attribute_exists(#id) AND (#status = :draft OR #status = :submitted)"),
		ExpressionAttributeNames: map[string]string{
			"#id":               "id",
			"#status":           "status",
			"#design_proposal":  "design_proposal",
			"#estimated_budget": "estimated_budget",
			"#budget_breakdown": "budget_breakdown",
			"#timeline":         "timeline",
			"#additional_notes": "additional_notes",
			"#terms":            "terms",
			"#updated_at":       "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":dp":        &types.AttributeValueMemberS{Value: q.DesignProposal},
			":eb":        &types.AttributeValueMemberN{Value: floatToString(q.EstimatedBudget)},
			":bb":        bd,
			":tl":        tl,
			":notes":     &types.AttributeValueMemberS{Value: q.AdditionalNotes},
			":terms":     terms,
			":draft":     &types.AttributeValueMemberS{Value: string(entities.QuoteStatusDraft)},
			":submitted": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusSubmitted)},
			":now":       &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) Withdraw(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :withdrawn, #is_active = :inactive, #updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :accepted"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#is_active":  "is_active",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":withdrawn": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusWithdrawn)},
			":accepted":  &types.AttributeValueMemberS{Value: string(entities.QuoteStatusAccepted)},
			":inactive":  &types.AttributeValueMemberBOOL{Value: false},
			":now":       &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) WithdrawAllForRequirement(ctx context.Context, requirementID string) error {
	quotes, err := r.ListByRequirementID(ctx, requirementID)
	if err != nil {
		return err
	}

	for _, q := range quotes {
		if q.Status == entities.QuoteStatusAccepted || q.Status == entities.QuoteStatusWithdrawn {
			continue
		}
		if _, err := r.Withdraw(ctx, q.ID); err != nil {
			return err
		}
	}
	return nil
}

// failedConditionIndex extracts the position of the first failed condition
// from a cancelled transaction.
func failedConditionIndex(err error) (int, bool) {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return 0, false
	}
	for i, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return i, true
		}
	}
	return 0, false
}

func unmarshalQuotes(raw []map[string]types.AttributeValue) ([]entities.Quote, error) {
	quotes := make([]entities.Quote, 0, len(raw))
	for _, item := range raw {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:              q.ID,
		Requirement:     q.Requirement,
		BidderKey:       q.BidderKey(),
		Company:         q.Company,
		Professional:    q.Professional,
		DesignProposal:  q.DesignProposal,
		EstimatedBudget: q.EstimatedBudget,
		BudgetBreakdown: toBudgetBreakdownItem(q.BudgetBreakdown),
		Timeline:        toQuoteTimelineItem(q.Timeline),
		AdditionalNotes: q.AdditionalNotes,
		Terms:           toQuoteTermsItem(q.Terms),
		Status:          string(q.Status),
		ValidUntil:      q.ValidUntil.UTC().Format(time.RFC3339Nano),
		IsActive:        q.IsActive,
		SubmittedAt:     formatOptionalTime(q.SubmittedAt),
		CreatedAt:       q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	validUntil, _ := time.Parse(time.RFC3339Nano, it.ValidUntil)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Quote{
		ID:              it.ID,
		Requirement:     it.Requirement,
		Company:         it.Company,
		Professional:    it.Professional,
		DesignProposal:  it.DesignProposal,
		EstimatedBudget: it.EstimatedBudget,
		BudgetBreakdown: fromBudgetBreakdownItem(it.BudgetBreakdown),
		Timeline:        fromQuoteTimelineItem(it.Timeline),
		AdditionalNotes: it.AdditionalNotes,
		Terms:           fromQuoteTermsItem(it.Terms),
		Status:          entities.QuoteStatus(it.Status),
		ValidUntil:      validUntil,
		IsActive:        it.IsActive,
		SubmittedAt:     parseOptionalTime(it.SubmittedAt),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

func toBudgetBreakdownItem(b entities.BudgetBreakdown) budgetBreakdownItem {
	return budgetBreakdownItem{
		Materials: b.Materials, Labor: b.Labor, Equipment: b.Equipment,
		Permits: b.Permits, Overhead: b.Overhead, Profit: b.Profit, Other: b.Other,
	}
}

func fromBudgetBreakdownItem(it budgetBreakdownItem) entities.BudgetBreakdown {
	return entities.BudgetBreakdown{
		Materials: it.Materials, Labor: it.Labor, Equipment: it.Equipment,
		Permits: it.Permits, Overhead: it.Overhead, Profit: it.Profit, Other: it.Other,
	}
}

func toQuoteTimelineItem(t entities.QuoteTimeline) quoteTimelineItem {
	milestones := make([]milestoneItem, 0, len(t.Milestones))
	for _, m := range t.Milestones {
		milestones = append(milestones, milestoneItem{
			Name:          m.Name,
			Description:   m.Description,
			EstimatedDate: formatOptionalTime(m.EstimatedDate),
			Percentage:    m.Percentage,
		})
	}
	return quoteTimelineItem{
		StartDate:  t.StartDate.UTC().Format(time.RFC3339Nano),
		EndDate:    t.EndDate.UTC().Format(time.RFC3339Nano),
		Milestones: milestones,
	}
}

func fromQuoteTimelineItem(it quoteTimelineItem) entities.QuoteTimeline {
	start, _ := time.Parse(time.RFC3339Nano, it.StartDate)
	end, _ := time.Parse(time.RFC3339Nano, it.EndDate)
	milestones := make([]entities.Milestone, 0, len(it.Milestones))
	for _, m := range it.Milestones {
		milestones = append(milestones, entities.Milestone{
			Name:          m.Name,
			Description:   m.Description,
			EstimatedDate: parseOptionalTime(m.EstimatedDate),
			Percentage:    m.Percentage,
		})
	}
	return entities.QuoteTimeline{StartDate: start, EndDate: end, Milestones: milestones}
}

func toQuoteTermsItem(t entities.QuoteTerms) quoteTermsItem {
	schedule := make([]paymentScheduleItem, 0, len(t.PaymentSchedule))
	for _, e := range t.PaymentSchedule {
		schedule = append(schedule, paymentScheduleItem{
			Milestone: e.Milestone, Percentage: e.Percentage, Amount: e.Amount, DueDate: e.DueDate,
		})
	}
	return quoteTermsItem{
		PaymentSchedule:    schedule,
		CancellationPolicy: t.CancellationPolicy,
		RevisionPolicy:     t.RevisionPolicy,
		AdditionalCharges:  t.AdditionalCharges,
	}
}

func fromQuoteTermsItem(it quoteTermsItem) entities.QuoteTerms {
	schedule := make([]entities.PaymentScheduleEntry, 0, len(it.PaymentSchedule))
	for _, e := range it.PaymentSchedule {
		schedule = append(schedule, entities.PaymentScheduleEntry{
			Milestone: e.Milestone, Percentage: e.Percentage, Amount: e.Amount, DueDate: e.DueDate,
		})
	}
	return entities.QuoteTerms{
		PaymentSchedule:    schedule,
		CancellationPolicy: it.CancellationPolicy,
		RevisionPolicy:     it.RevisionPolicy,
		AdditionalCharges:  it.AdditionalCharges,
	}
}

func formatOptionalTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseOptionalTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
