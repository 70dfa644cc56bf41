package repository

import (
	"context"

	"buildconnect/internal/domain/entities"
	"buildconnect/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCompaniesTableName     = "companies"
	defaultProfessionalsTableName = "professionals"
	companiesAdminIndex           = "admin-index"
	professionalsUserIndex        = "user-index"
)

type companyItem struct {
	ID         string  `dynamodbav:"id"`
	Name       string  `dynamodbav:"name"`
	Admin      string  `dynamodbav:"admin"`
	Rating     float64 `dynamodbav:"rating"`
	Logo       string  `dynamodbav:"logo,omitempty"`
	IsVerified bool    `dynamodbav:"is_verified"`
	IsActive   bool    `dynamodbav:"is_active"`
	CreatedAt  string  `dynamodbav:"created_at"`
	UpdatedAt  string  `dynamodbav:"updated_at"`
}

type professionalItem struct {
	ID         string  `dynamodbav:"id"`
	Name       string  `dynamodbav:"name"`
	User       string  `dynamodbav:"user"`
	Rating     float64 `dynamodbav:"rating"`
	Logo       string  `dynamodbav:"logo,omitempty"`
	IsVerified bool    `dynamodbav:"is_verified"`
	CreatedAt  string  `dynamodbav:"created_at"`
	UpdatedAt  string  `dynamodbav:"updated_at"`
}

// CompanyDynamoRepository resolves company profiles.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: admin-index (PK: admin)

type CompanyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICompanyRepository = (*CompanyDynamoRepository)(nil)

func NewCompanyDynamoRepository(ddb *dynamodb.Client) *CompanyDynamoRepository {
	return &CompanyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COMPANIES_TABLE", defaultCompaniesTableName),
	}
}

func (r *CompanyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Company, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Company{}, err
	}
	if len(out.Item) == 0 {
		return entities.Company{}, nil
	}

	var it companyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Company{}, err
	}
	return fromCompanyItem(it), nil
}

func (r *CompanyDynamoRepository) GetByAdmin(ctx context.Context, adminUserID string) (entities.Company, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(companiesAdminIndex),
		KeyConditionExpression: aws.String("#admin = :admin"),
		ExpressionAttributeNames: map[string]string{
			"#admin": "admin",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":admin": &types.AttributeValueMemberS{Value: adminUserID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Company{}, err
	}
	if len(out.Items) == 0 {
		return entities.Company{}, nil
	}

	var it companyItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Company{}, err
	}
	return fromCompanyItem(it), nil
}

// ProfessionalDynamoRepository resolves independent professional profiles.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user-index (PK: user)

type ProfessionalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProfessionalRepository = (*ProfessionalDynamoRepository)(nil)

func NewProfessionalDynamoRepository(ddb *dynamodb.Client) *ProfessionalDynamoRepository {
	return &ProfessionalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROFESSIONALS_TABLE", defaultProfessionalsTableName),
	}
}

func (r *ProfessionalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Professional, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Professional{}, err
	}
	if len(out.Item) == 0 {
		return entities.Professional{}, nil
	}

	var it professionalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Professional{}, err
	}
	return fromProfessionalItem(it), nil
}

func (r *ProfessionalDynamoRepository) GetByUser(ctx context.Context, userID string) (entities.Professional, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(professionalsUserIndex),
		KeyConditionExpression: aws.String("#user = :user"),
		ExpressionAttributeNames: map[string]string{
			"#user": "user",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user": &types.AttributeValueMemberS{Value: userID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Professional{}, err
	}
	if len(out.Items) == 0 {
		return entities.Professional{}, nil
	}

	var it professionalItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Professional{}, err
	}
	return fromProfessionalItem(it), nil
}

func fromCompanyItem(it companyItem) entities.Company {
	return entities.Company{
		ID:         it.ID,
		Name:       it.Name,
		Admin:      it.Admin,
		Rating:     it.Rating,
		Logo:       it.Logo,
		IsVerified: it.IsVerified,
		IsActive:   it.IsActive,
		CreatedAt:  parseOptionalTime(it.CreatedAt),
		UpdatedAt:  parseOptionalTime(it.UpdatedAt),
	}
}

func fromProfessionalItem(it professionalItem) entities.Professional {
	return entities.Professional{
		ID:         it.ID,
		Name:       it.Name,
		User:       it.User,
		Rating:     it.Rating,
		Logo:       it.Logo,
		IsVerified: it.IsVerified,
		CreatedAt:  parseOptionalTime(it.CreatedAt),
		UpdatedAt:  parseOptionalTime(it.UpdatedAt),
	}
}
