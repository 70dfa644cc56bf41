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
	defaultNotificationsTableName = "notifications"
	notificationsRecipientIndex   = "recipient-index"
)

type notificationItem struct {
	ID           string `dynamodbav:"id"`
	Recipient    string `dynamodbav:"recipient"`
	Type         string `dynamodbav:"type"`
	Title        string `dynamodbav:"title"`
	Message      string `dynamodbav:"message"`
	RelatedID    string `dynamodbav:"related_id,omitempty"`
	RelatedModel string `dynamodbav:"related_model,omitempty"`
	Priority     string `dynamodbav:"priority"`
	IsRead       bool   `dynamodbav:"is_read"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists Notification entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: recipient-index (PK: recipient)

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(notificationItem{
		ID:           n.ID,
		Recipient:    n.Recipient,
		Type:         string(n.Type),
		Title:        n.Title,
		Message:      n.Message,
		RelatedID:    n.RelatedID,
		RelatedModel: n.RelatedModel,
		Priority:     string(n.Priority),
		IsRead:       n.IsRead,
		CreatedAt:    n.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.Notification{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]entities.Notification, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsRecipientIndex),
		KeyConditionExpression: aws.String("#recipient = :recipient"),
		ExpressionAttributeNames: map[string]string{
			"#recipient": "recipient",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":recipient": &types.AttributeValueMemberS{Value: recipientID},
		},
	}
	if unreadOnly {
		in.FilterExpression = aws.String("#is_read = :unread")
		in.ExpressionAttributeNames["#is_read"] = "is_read"
		in.ExpressionAttributeValues[":unread"] = &types.AttributeValueMemberBOOL{Value: false}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	notifications := make([]entities.Notification, 0, len(out.Items))
	for _, item := range out.Items {
		var it notificationItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		notifications = append(notifications, fromNotificationItem(it))
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (r *NotificationDynamoRepository) CountUnread(ctx context.Context, recipientID string) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsRecipientIndex),
		KeyConditionExpression: aws.String("#recipient = :recipient"),
		FilterExpression:       aws.String("#is_read = :unread"),
		ExpressionAttributeNames: map[string]string{
			"#recipient": "recipient",
			"#is_read":   "is_read",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":recipient": &types.AttributeValueMemberS{Value: recipientID},
			":unread":    &types.AttributeValueMemberBOOL{Value: false},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id, recipientID string) (entities.Notification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #is_read = :read"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #recipient = :recipient"),
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#is_read":   "is_read",
			"#recipient": "recipient",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":read":      &types.AttributeValueMemberBOOL{Value: true},
			":recipient": &types.AttributeValueMemberS{Value: recipientID},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func (r *NotificationDynamoRepository) MarkAllRead(ctx context.Context, recipientID string) error {
	unread, err := r.ListByRecipient(ctx, recipientID, true)
	if err != nil {
		return err
	}
	for _, n := range unread {
		if _, err := r.MarkRead(ctx, n.ID, recipientID); err != nil {
			return err
		}
	}
	return nil
}

func fromNotificationItem(it notificationItem) entities.Notification {
	return entities.Notification{
		ID:           it.ID,
		Recipient:    it.Recipient,
		Type:         entities.NotificationType(it.Type),
		Title:        it.Title,
		Message:      it.Message,
		RelatedID:    it.RelatedID,
		RelatedModel: it.RelatedModel,
		Priority:     entities.Priority(it.Priority),
		IsRead:       it.IsRead,
		CreatedAt:    parseOptionalTime(it.CreatedAt),
	}
}
