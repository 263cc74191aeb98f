package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

type userItem struct {
	Email        string `dynamodbav:"email"`
	Name         string `dynamodbav:"name"`
	PasswordHash string `dynamodbav:"password_hash"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// UserDynamoRepository stores accounts.
//
// Table requirements:
//   - PK: email (string, lower case)

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client, tableName string) *UserDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("USERS_TABLE", defaultUsersTableName)
	}
	return &UserDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *UserDynamoRepository) Create(ctx context.Context, a entities.Account) (entities.Account, error) {
	a.Email = strings.ToLower(a.Email)
	av, err := attributevalue.MarshalMap(userItem{
		Email:        a.Email,
		Name:         a.Name,
		PasswordHash: a.PasswordHash,
		CreatedAt:    formatTime(a.CreatedAt),
		UpdatedAt:    formatTime(a.UpdatedAt),
	})
	if err != nil {
		return entities.Account{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#email)"),
		ExpressionAttributeNames: map[string]string{
			"#email": "email",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Account{}, interfaces.ErrAlreadyExists
		}
		return entities.Account{}, err
	}
	return a, nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Account, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": str(strings.ToLower(email)),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Account{}, err
	}
	if len(out.Item) == 0 {
		return entities.Account{}, nil
	}
	return unmarshalAccount(out.Item)
}

func (r *UserDynamoRepository) UpdatePassword(ctx context.Context, email, passwordHash string) (entities.Account, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": str(strings.ToLower(email)),
		},
		ConditionExpression: aws.String("attribute_exists(#email)"),
		UpdateExpression:    aws.String("SET #password_hash = :password_hash, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#email":         "email",
			"#password_hash": "password_hash",
			"#updated_at":    "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":password_hash": str(passwordHash),
			":updated_at":    str(formatTime(time.Now())),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Account{}, nil
		}
		return entities.Account{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Account{}, nil
	}
	return unmarshalAccount(out.Attributes)
}

func unmarshalAccount(item map[string]types.AttributeValue) (entities.Account, error) {
	var it userItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Account{}, err
	}
	return entities.Account{
		User:         entities.User{Name: it.Name, Email: it.Email},
		PasswordHash: it.PasswordHash,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}, nil
}
