package repository

import (
	"context"
	"errors"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEmployeesTableName = "employees"

type employeeItem struct {
	NameKey   string `dynamodbav:"name_key"`
	Name      string `dynamodbav:"name"`
	CreatedAt string `dynamodbav:"created_at"`
}

// EmployeeDynamoRepository persists the roster in DynamoDB.
//
// Table requirements:
//   - PK: name_key (string), the case-folded name
//
// Using the folded name as PK makes the case-insensitive uniqueness check a
// plain conditional put.

type EmployeeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEmployeeRepository = (*EmployeeDynamoRepository)(nil)

func NewEmployeeDynamoRepository(ddb *dynamodb.Client, tableName string) *EmployeeDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("EMPLOYEES_TABLE", defaultEmployeesTableName)
	}
	return &EmployeeDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *EmployeeDynamoRepository) Create(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	av, err := attributevalue.MarshalMap(employeeItem{
		NameKey:   e.Key(),
		Name:      e.Name,
		CreatedAt: formatTime(e.CreatedAt),
	})
	if err != nil {
		return entities.Employee{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#name_key)"),
		ExpressionAttributeNames: map[string]string{
			"#name_key": "name_key",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Employee{}, interfaces.ErrAlreadyExists
		}
		return entities.Employee{}, err
	}
	return e, nil
}

func (r *EmployeeDynamoRepository) GetByName(ctx context.Context, name string) (entities.Employee, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            employeeKey(name),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Employee{}, err
	}
	if len(out.Item) == 0 {
		return entities.Employee{}, nil
	}
	return unmarshalEmployee(out.Item)
}

// Delete removes the entry and returns it, or a zero Employee if absent.
func (r *EmployeeDynamoRepository) Delete(ctx context.Context, name string) (entities.Employee, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          employeeKey(name),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return entities.Employee{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Employee{}, nil
	}
	return unmarshalEmployee(out.Attributes)
}

func (r *EmployeeDynamoRepository) List(ctx context.Context) ([]entities.Employee, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})

	var out []entities.Employee
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			e, err := unmarshalEmployee(item)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
	}
	return out, nil
}

func employeeKey(name string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"name_key": str(entities.EmployeeKey(name)),
	}
}

func unmarshalEmployee(item map[string]types.AttributeValue) (entities.Employee, error) {
	var it employeeItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Employee{}, err
	}
	return entities.Employee{Name: it.Name, CreatedAt: parseTime(it.CreatedAt)}, nil
}
