package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	OrdersAssigneeIndex    = "assigned_to-index"
)

type attachmentItem struct {
	FileName     string `dynamodbav:"file_name"`
	URL          string `dynamodbav:"url,omitempty"`
	UploadStatus string `dynamodbav:"upload_status"`
	UploadError  string `dynamodbav:"upload_error,omitempty"`
}

type orderItem struct {
	ID       string `dynamodbav:"id"`
	Client   string `dynamodbav:"client"`
	Document string `dynamodbav:"document,omitempty"`
	Contact  string `dynamodbav:"contact,omitempty"`
	City     string `dynamodbav:"city"`
	State    string `dynamodbav:"state"`

	Service     string `dynamodbav:"service"`
	Priority    string `dynamodbav:"priority"`
	Description string `dynamodbav:"description"`

	OrderNow         string `dynamodbav:"order_now"`
	Mobile           string `dynamodbav:"mobile"`
	IfoodIntegration string `dynamodbav:"ifood_integration"`
	IfoodEmail       string `dynamodbav:"ifood_email,omitempty"`
	IfoodPassword    string `dynamodbav:"ifood_password,omitempty"`

	DLL        string `dynamodbav:"dll,omitempty"`
	RemoteTool string `dynamodbav:"remote_tool,omitempty"`
	RemoteCode string `dynamodbav:"remote_code,omitempty"`

	// Omitted while unassigned: GSI key attributes cannot be empty strings.
	AssignedTo string          `dynamodbav:"assigned_to,omitempty"`
	Status     string          `dynamodbav:"status"`
	Checklist  map[string]bool `dynamodbav:"checklist"`

	Certificate *attachmentItem `dynamodbav:"certificate,omitempty"`
	Image       *attachmentItem `dynamodbav:"image,omitempty"`

	Date          string `dynamodbav:"date"`
	LastUpdatedBy string `dynamodbav:"last_updated_by"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI assigned_to-index: PK assigned_to (string), projection ALL
//
// Every mutation is a single UpdateItem guarded by a condition expression.
// On a failed condition DynamoDB returns the old item, which tells a missing
// order apart from a failed precondition.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *OrderDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("ORDERS_TABLE", defaultOrdersTableName)
	}
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, interfaces.ErrAlreadyExists
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}
	return unmarshalOrder(out.Item)
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})

	var out []entities.Order
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			o, err := unmarshalOrder(item)
			if err != nil {
				return nil, err
			}
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *OrderDynamoRepository) ListByAssignee(ctx context.Context, name string) ([]entities.Order, error) {
	if name == "" {
		return nil, nil
	}

	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(OrdersAssigneeIndex),
		KeyConditionExpression: aws.String("#assigned_to = :assigned_to"),
		ExpressionAttributeNames: map[string]string{
			"#assigned_to": "assigned_to",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":assigned_to": &types.AttributeValueMemberS{Value: name},
		},
	})

	var out []entities.Order
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			o, err := unmarshalOrder(item)
			if err != nil {
				return nil, err
			}
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *OrderDynamoRepository) Update(ctx context.Context, id string, patch entities.OrderPatch) (entities.Order, error) {
	expr, err := buildOrderUpdate(patch)
	if err != nil {
		return entities.Order{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:                 aws.String(expr.condition),
		UpdateExpression:                    aws.String(expr.update),
		ExpressionAttributeValues:           expr.values,
		ExpressionAttributeNames:            expr.names,
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.Order{}, nil
			}
			return entities.Order{}, interfaces.ErrConditionFailed
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	return unmarshalOrder(out.Attributes)
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func buildOrderUpdate(p entities.OrderPatch) (updateExpression, error) {
	b := newUpdateBuilder()
	b.condition("attribute_exists(#id)", map[string]string{"#id": "id"}, nil)

	if d := p.Details; d != nil {
		b.set("client", str(d.Client))
		b.set("document", str(d.Document))
		b.set("contact", str(d.Contact))
		b.set("city", str(d.City))
		b.set("state", str(d.State))
		b.set("service", str(d.Service))
		b.set("priority", str(string(d.Priority)))
		b.set("order_now", str(string(d.OrderNow)))
		b.set("mobile", str(string(d.Mobile)))
		b.set("ifood_integration", str(string(d.IfoodIntegration)))
		b.set("ifood_email", str(d.IfoodEmail))
		b.set("ifood_password", str(d.IfoodPassword))
		b.set("dll", str(d.DLL))
		b.set("remote_tool", str(d.RemoteTool))
		b.set("remote_code", str(d.RemoteCode))
	}
	if p.Description != nil {
		b.set("description", str(*p.Description))
	}
	if p.AssignedTo != nil {
		if *p.AssignedTo == "" {
			b.remove("assigned_to")
		} else {
			b.set("assigned_to", str(*p.AssignedTo))
		}
	}
	if p.Status != nil {
		b.set("status", str(string(*p.Status)))
	}
	for _, k := range entities.ChecklistKeys {
		if v, ok := p.Checklist[k]; ok {
			b.setNested("checklist", k, &types.AttributeValueMemberBOOL{Value: v})
		}
	}
	attachments := []struct {
		attr string
		att  *entities.Attachment
	}{
		{"certificate", p.Certificate},
		{"image", p.Image},
	}
	for _, a := range attachments {
		if a.att == nil {
			continue
		}
		m, err := attributevalue.MarshalMap(toAttachmentItem(*a.att))
		if err != nil {
			return updateExpression{}, err
		}
		b.set(a.attr, &types.AttributeValueMemberM{Value: m})
	}

	b.set("last_updated_by", str(p.UpdatedBy))
	b.set("updated_at", str(formatTime(p.UpdatedAt)))

	if p.ExpectStatus != nil {
		b.condition("#status = :expect_status",
			map[string]string{"#status": "status"},
			map[string]types.AttributeValue{":expect_status": str(string(*p.ExpectStatus))})
	}
	if p.ExpectAssignedTo != nil {
		names := map[string]string{"#assigned_to": "assigned_to"}
		if *p.ExpectAssignedTo == "" {
			b.condition("attribute_not_exists(#assigned_to)", names, nil)
		} else {
			b.condition("#assigned_to = :expect_assigned_to", names,
				map[string]types.AttributeValue{":expect_assigned_to": str(*p.ExpectAssignedTo)})
		}
	}
	return b.build(), nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:               o.ID,
		Client:           o.Client,
		Document:         o.Document,
		Contact:          o.Contact,
		City:             o.City,
		State:            o.State,
		Service:          o.Service,
		Priority:         string(o.Priority),
		Description:      o.Description,
		OrderNow:         string(o.OrderNow),
		Mobile:           string(o.Mobile),
		IfoodIntegration: string(o.IfoodIntegration),
		IfoodEmail:       o.IfoodEmail,
		IfoodPassword:    o.IfoodPassword,
		DLL:              o.DLL,
		RemoteTool:       o.RemoteTool,
		RemoteCode:       o.RemoteCode,
		AssignedTo:       o.AssignedTo,
		Status:           string(o.Status),
		Checklist:        o.Checklist.Map(),
		Date:             formatTime(o.Date),
		LastUpdatedBy:    o.LastUpdatedBy,
		UpdatedAt:        formatTime(o.UpdatedAt),
	}
	if o.Certificate != nil {
		a := toAttachmentItem(*o.Certificate)
		it.Certificate = &a
	}
	if o.Image != nil {
		a := toAttachmentItem(*o.Image)
		it.Image = &a
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	o := entities.Order{
		ID: it.ID,
		OrderDetails: entities.OrderDetails{
			Client:           it.Client,
			Document:         it.Document,
			Contact:          it.Contact,
			City:             it.City,
			State:            it.State,
			Service:          it.Service,
			Priority:         entities.Priority(it.Priority),
			OrderNow:         entities.YesNo(it.OrderNow),
			Mobile:           entities.YesNo(it.Mobile),
			IfoodIntegration: entities.YesNo(it.IfoodIntegration),
			IfoodEmail:       it.IfoodEmail,
			IfoodPassword:    it.IfoodPassword,
			DLL:              it.DLL,
			RemoteTool:       it.RemoteTool,
			RemoteCode:       it.RemoteCode,
		},
		Description:   it.Description,
		AssignedTo:    it.AssignedTo,
		Status:        entities.OrderStatus(it.Status),
		Checklist:     entities.ChecklistFromMap(it.Checklist),
		Date:          parseTime(it.Date),
		LastUpdatedBy: it.LastUpdatedBy,
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
	if it.Certificate != nil {
		a := fromAttachmentItem(*it.Certificate)
		o.Certificate = &a
	}
	if it.Image != nil {
		a := fromAttachmentItem(*it.Image)
		o.Image = &a
	}
	return o
}

func unmarshalOrder(item map[string]types.AttributeValue) (entities.Order, error) {
	var it orderItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toAttachmentItem(a entities.Attachment) attachmentItem {
	return attachmentItem{
		FileName:     a.FileName,
		URL:          a.URL,
		UploadStatus: string(a.UploadStatus),
		UploadError:  a.UploadError,
	}
}

func fromAttachmentItem(it attachmentItem) entities.Attachment {
	return entities.Attachment{
		FileName:     it.FileName,
		URL:          it.URL,
		UploadStatus: entities.UploadStatus(it.UploadStatus),
		UploadError:  it.UploadError,
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
