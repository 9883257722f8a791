package repository

import (
	"context"
	"errors"
	"time"

	"autoshop_billing/internal/domain/entities"
	"autoshop_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceCostsTableName = "service_costs"
	serviceCostsStatusIndex      = "status-index"
)

type advisorEstimateItem struct {
	LaborCost              float64 `dynamodbav:"labor_cost"`
	PartsCost              float64 `dynamodbav:"parts_cost"`
	AdditionalServicesCost float64 `dynamodbav:"additional_services_cost"`
	Notes                  string  `dynamodbav:"notes,omitempty"`
}

type reviewAdjustmentItem struct {
	Description string  `dynamodbav:"description"`
	Amount      float64 `dynamodbav:"amount"`
}

type financeReviewItem struct {
	Approved    bool                   `dynamodbav:"approved"`
	ReviewerID  string                 `dynamodbav:"reviewer_id"`
	Adjustments []reviewAdjustmentItem `dynamodbav:"adjustments,omitempty"`
	Notes       string                 `dynamodbav:"notes,omitempty"`
	ReviewedAt  string                 `dynamodbav:"reviewed_at"`
}

type finalCostItem struct {
	Subtotal       float64 `dynamodbav:"subtotal"`
	TaxAmount      float64 `dynamodbav:"tax_amount"`
	DiscountAmount float64 `dynamodbav:"discount_amount"`
	TotalAmount    float64 `dynamodbav:"total_amount"`
}

type serviceCostItem struct {
	ID            string              `dynamodbav:"id"`
	BookingID     string              `dynamodbav:"booking_id"`
	AdvisorID     string              `dynamodbav:"advisor_id,omitempty"`
	CustomerID    string              `dynamodbav:"customer_id"`
	CustomerName  string              `dynamodbav:"customer_name,omitempty"`
	CustomerEmail string              `dynamodbav:"customer_email,omitempty"`
	VehiclePlate  string              `dynamodbav:"vehicle_plate"`
	ServiceType   string              `dynamodbav:"service_type"`
	Estimate      advisorEstimateItem `dynamodbav:"estimate"`
	Review        *financeReviewItem  `dynamodbav:"review,omitempty"`
	FinalCost     finalCostItem       `dynamodbav:"final_cost"`
	Status        string              `dynamodbav:"status"`

	PaymentReceived bool   `dynamodbav:"payment_received"`
	PaymentID       string `dynamodbav:"payment_id,omitempty"`
	InvoiceID       string `dynamodbav:"invoice_id,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ServiceCostDynamoRepository persists ServiceCost entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//
// payment_received is always materialized (never omitted) because MarkPaid's
// condition expression compares it against false.

type ServiceCostDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceCostRepository = (*ServiceCostDynamoRepository)(nil)

func NewServiceCostDynamoRepository(ddb *dynamodb.Client) *ServiceCostDynamoRepository {
	return &ServiceCostDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_COSTS_TABLE", defaultServiceCostsTableName),
	}
}

func (r *ServiceCostDynamoRepository) Create(ctx context.Context, sc entities.ServiceCost) (entities.ServiceCost, error) {
	it := toServiceCostItem(sc)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ServiceCost{}, err
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
		return entities.ServiceCost{}, err
	}
	return sc, nil
}

func (r *ServiceCostDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceCost, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceCost{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceCost{}, nil
	}

	var it serviceCostItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceCost{}, err
	}
	return fromServiceCostItem(it), nil
}

func (r *ServiceCostDynamoRepository) ListByStatus(ctx context.Context, status entities.ServiceCostStatus) ([]entities.ServiceCost, error) {
	if status == "" {
		return r.scanAll(ctx)
	}

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(serviceCostsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalServiceCosts(out.Items)
}

func (r *ServiceCostDynamoRepository) scanAll(ctx context.Context) ([]entities.ServiceCost, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalServiceCosts(out.Items)
}

// Save overwrites an existing document. Creation goes through Create so a
// lost id can never resurrect a deleted record here.
func (r *ServiceCostDynamoRepository) Save(ctx context.Context, sc entities.ServiceCost) (entities.ServiceCost, error) {
	it := toServiceCostItem(sc)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ServiceCost{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceCost{}, nil
		}
		return entities.ServiceCost{}, err
	}
	return sc, nil
}

// MarkPaid flips the record to paid only while payment_received is still
// false. A zero-value return means another payment won the race.
func (r *ServiceCostDynamoRepository) MarkPaid(ctx context.Context, id, paymentID string) (entities.ServiceCost, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #payment_received = :false"),
		UpdateExpression:    aws.String("SET #status = :paid, #payment_received = :true, #payment_id = :payment_id, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":               "id",
			"#status":           "status",
			"#payment_received": "payment_received",
			"#payment_id":       "payment_id",
			"#updated_at":       "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid":       &types.AttributeValueMemberS{Value: string(entities.ServiceCostStatusPaid)},
			":false":      &types.AttributeValueMemberBOOL{Value: false},
			":true":       &types.AttributeValueMemberBOOL{Value: true},
			":payment_id": &types.AttributeValueMemberS{Value: paymentID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceCost{}, nil
		}
		return entities.ServiceCost{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceCost{}, nil
	}

	var it serviceCostItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceCost{}, err
	}
	return fromServiceCostItem(it), nil
}

func (r *ServiceCostDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func unmarshalServiceCosts(raw []map[string]types.AttributeValue) ([]entities.ServiceCost, error) {
	items := make([]entities.ServiceCost, 0, len(raw))
	for _, m := range raw {
		var it serviceCostItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromServiceCostItem(it))
	}
	return items, nil
}

func toServiceCostItem(sc entities.ServiceCost) serviceCostItem {
	it := serviceCostItem{
		ID:            sc.ID,
		BookingID:     sc.BookingID,
		AdvisorID:     sc.AdvisorID,
		CustomerID:    sc.CustomerID,
		CustomerName:  sc.CustomerName,
		CustomerEmail: sc.CustomerEmail,
		VehiclePlate:  sc.VehiclePlate,
		ServiceType:   sc.ServiceType,
		Estimate: advisorEstimateItem{
			LaborCost:              sc.Estimate.LaborCost,
			PartsCost:              sc.Estimate.PartsCost,
			AdditionalServicesCost: sc.Estimate.AdditionalServicesCost,
			Notes:                  sc.Estimate.Notes,
		},
		FinalCost: finalCostItem{
			Subtotal:       sc.FinalCost.Subtotal,
			TaxAmount:      sc.FinalCost.TaxAmount,
			DiscountAmount: sc.FinalCost.DiscountAmount,
			TotalAmount:    sc.FinalCost.TotalAmount,
		},
		Status:          string(sc.Status),
		PaymentReceived: sc.PaymentReceived,
		PaymentID:       sc.PaymentID,
		InvoiceID:       sc.InvoiceID,
		CreatedAt:       sc.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       sc.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if sc.Review != nil {
		adjustments := make([]reviewAdjustmentItem, 0, len(sc.Review.Adjustments))
		for _, a := range sc.Review.Adjustments {
			adjustments = append(adjustments, reviewAdjustmentItem{Description: a.Description, Amount: a.Amount})
		}
		it.Review = &financeReviewItem{
			Approved:    sc.Review.Approved,
			ReviewerID:  sc.Review.ReviewerID,
			Adjustments: adjustments,
			Notes:       sc.Review.Notes,
			ReviewedAt:  sc.Review.ReviewedAt.UTC().Format(time.RFC3339Nano),
		}
	}
	return it
}

func fromServiceCostItem(it serviceCostItem) entities.ServiceCost {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	sc := entities.ServiceCost{
		ID:            it.ID,
		BookingID:     it.BookingID,
		AdvisorID:     it.AdvisorID,
		CustomerID:    it.CustomerID,
		CustomerName:  it.CustomerName,
		CustomerEmail: it.CustomerEmail,
		VehiclePlate:  it.VehiclePlate,
		ServiceType:   it.ServiceType,
		Estimate: entities.AdvisorEstimate{
			LaborCost:              it.Estimate.LaborCost,
			PartsCost:              it.Estimate.PartsCost,
			AdditionalServicesCost: it.Estimate.AdditionalServicesCost,
			Notes:                  it.Estimate.Notes,
		},
		FinalCost: entities.FinalCost{
			Subtotal:       it.FinalCost.Subtotal,
			TaxAmount:      it.FinalCost.TaxAmount,
			DiscountAmount: it.FinalCost.DiscountAmount,
			TotalAmount:    it.FinalCost.TotalAmount,
		},
		Status:          entities.ServiceCostStatus(it.Status),
		PaymentReceived: it.PaymentReceived,
		PaymentID:       it.PaymentID,
		InvoiceID:       it.InvoiceID,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
	if it.Review != nil {
		reviewedAt, _ := time.Parse(time.RFC3339Nano, it.Review.ReviewedAt)
		adjustments := make([]entities.ReviewAdjustment, 0, len(it.Review.Adjustments))
		for _, a := range it.Review.Adjustments {
			adjustments = append(adjustments, entities.ReviewAdjustment{Description: a.Description, Amount: a.Amount})
		}
		sc.Review = &entities.FinanceReview{
			Approved:    it.Review.Approved,
			ReviewerID:  it.Review.ReviewerID,
			Adjustments: adjustments,
			Notes:       it.Review.Notes,
			ReviewedAt:  reviewedAt,
		}
	}
	return sc
}
