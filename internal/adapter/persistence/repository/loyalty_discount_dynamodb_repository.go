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
	defaultLoyaltyDiscountsTableName = "loyalty_discounts"
	loyaltyCustomerIDIndex           = "customer_id-index"
)

type loyaltyDiscountItem struct {
	ID            string  `dynamodbav:"id"`
	CustomerID    string  `dynamodbav:"customer_id"`
	CustomerName  string  `dynamodbav:"customer_name,omitempty"`
	CustomerEmail string  `dynamodbav:"customer_email,omitempty"`
	TotalBookings int     `dynamodbav:"total_bookings"`
	Eligible      bool    `dynamodbav:"eligible"`
	DiscountPct   float64 `dynamodbav:"discount_percent"`

	Status      string `dynamodbav:"status"`
	ReviewerID  string `dynamodbav:"reviewer_id,omitempty"`
	ReviewNotes string `dynamodbav:"review_notes,omitempty"`

	AppliedToPayment bool   `dynamodbav:"applied_to_payment"`
	PaymentID        string `dynamodbav:"payment_id,omitempty"`
	ServiceCostID    string `dynamodbav:"service_cost_id,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// LoyaltyDiscountDynamoRepository persists LoyaltyDiscountRequest entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//
// applied_to_payment is always materialized because MarkApplied's condition
// expression compares it against false.

type LoyaltyDiscountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILoyaltyDiscountRepository = (*LoyaltyDiscountDynamoRepository)(nil)

func NewLoyaltyDiscountDynamoRepository(ddb *dynamodb.Client) *LoyaltyDiscountDynamoRepository {
	return &LoyaltyDiscountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LOYALTY_DISCOUNTS_TABLE", defaultLoyaltyDiscountsTableName),
	}
}

func (r *LoyaltyDiscountDynamoRepository) Create(ctx context.Context, req entities.LoyaltyDiscountRequest) (entities.LoyaltyDiscountRequest, error) {
	it := toLoyaltyDiscountItem(req)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.LoyaltyDiscountRequest{}, err
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
		return entities.LoyaltyDiscountRequest{}, err
	}
	return req, nil
}

func (r *LoyaltyDiscountDynamoRepository) GetByID(ctx context.Context, id string) (entities.LoyaltyDiscountRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LoyaltyDiscountRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.LoyaltyDiscountRequest{}, nil
	}

	var it loyaltyDiscountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LoyaltyDiscountRequest{}, err
	}
	return fromLoyaltyDiscountItem(it), nil
}

func (r *LoyaltyDiscountDynamoRepository) ListByCustomer(ctx context.Context, customerID string) ([]entities.LoyaltyDiscountRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(loyaltyCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.LoyaltyDiscountRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it loyaltyDiscountItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromLoyaltyDiscountItem(it))
	}
	return items, nil
}

// FindApprovedUnapplied returns the oldest approved, not-yet-consumed request
// for a customer, or a zero-value entity when none exists.
func (r *LoyaltyDiscountDynamoRepository) FindApprovedUnapplied(ctx context.Context, customerID string) (entities.LoyaltyDiscountRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(loyaltyCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		FilterExpression:       aws.String("#status = :approved AND #applied = :false"),
		ExpressionAttributeNames: map[string]string{
			"#status":  "status",
			"#applied": "applied_to_payment",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":      &types.AttributeValueMemberS{Value: customerID},
			":approved": &types.AttributeValueMemberS{Value: string(entities.LoyaltyDiscountStatusApproved)},
			":false":    &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil {
		return entities.LoyaltyDiscountRequest{}, err
	}
	if len(out.Items) == 0 {
		return entities.LoyaltyDiscountRequest{}, nil
	}

	// Oldest claim first so customers consume discounts in the order they
	// earned them.
	var earliest entities.LoyaltyDiscountRequest
	for _, raw := range out.Items {
		var it loyaltyDiscountItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.LoyaltyDiscountRequest{}, err
		}
		candidate := fromLoyaltyDiscountItem(it)
		if earliest.ID == "" || candidate.CreatedAt.Before(earliest.CreatedAt) {
			earliest = candidate
		}
	}
	return earliest, nil
}

// UpdateReview records the reviewer's decision only while the request is
// still pending. A zero-value return means it was already reviewed.
func (r *LoyaltyDiscountDynamoRepository) UpdateReview(ctx context.Context, id string, status entities.LoyaltyDiscountStatus, reviewerID, notes string) (entities.LoyaltyDiscountRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :status, #reviewer_id = :reviewer_id, #review_notes = :review_notes, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#status":       "status",
			"#reviewer_id":  "reviewer_id",
			"#review_notes": "review_notes",
			"#updated_at":   "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":      &types.AttributeValueMemberS{Value: string(entities.LoyaltyDiscountStatusPending)},
			":status":       &types.AttributeValueMemberS{Value: string(status)},
			":reviewer_id":  &types.AttributeValueMemberS{Value: reviewerID},
			":review_notes": &types.AttributeValueMemberS{Value: notes},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.LoyaltyDiscountRequest{}, nil
		}
		return entities.LoyaltyDiscountRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.LoyaltyDiscountRequest{}, nil
	}

	var it loyaltyDiscountItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.LoyaltyDiscountRequest{}, err
	}
	return fromLoyaltyDiscountItem(it), nil
}

// MarkApplied consumes the request for one payment. The condition matches
// only while applied_to_payment is false, so a request backs at most one
// payment even under concurrent processing.
func (r *LoyaltyDiscountDynamoRepository) MarkApplied(ctx context.Context, id, paymentID, serviceCostID string) (entities.LoyaltyDiscountRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #applied = :false"),
		UpdateExpression:    aws.String("SET #applied = :true, #payment_id = :payment_id, #service_cost_id = :service_cost_id, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":              "id",
			"#applied":         "applied_to_payment",
			"#payment_id":      "payment_id",
			"#service_cost_id": "service_cost_id",
			"#updated_at":      "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false":           &types.AttributeValueMemberBOOL{Value: false},
			":true":            &types.AttributeValueMemberBOOL{Value: true},
			":payment_id":      &types.AttributeValueMemberS{Value: paymentID},
			":service_cost_id": &types.AttributeValueMemberS{Value: serviceCostID},
			":updated_at":      &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.LoyaltyDiscountRequest{}, nil
		}
		return entities.LoyaltyDiscountRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.LoyaltyDiscountRequest{}, nil
	}

	var it loyaltyDiscountItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.LoyaltyDiscountRequest{}, err
	}
	return fromLoyaltyDiscountItem(it), nil
}

func toLoyaltyDiscountItem(req entities.LoyaltyDiscountRequest) loyaltyDiscountItem {
	return loyaltyDiscountItem{
		ID:               req.ID,
		CustomerID:       req.CustomerID,
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		TotalBookings:    req.TotalBookings,
		Eligible:         req.Eligible,
		DiscountPct:      req.DiscountPct,
		Status:           string(req.Status),
		ReviewerID:       req.ReviewerID,
		ReviewNotes:      req.ReviewNotes,
		AppliedToPayment: req.AppliedToPayment,
		PaymentID:        req.PaymentID,
		ServiceCostID:    req.ServiceCostID,
		CreatedAt:        req.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        req.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromLoyaltyDiscountItem(it loyaltyDiscountItem) entities.LoyaltyDiscountRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.LoyaltyDiscountRequest{
		ID:               it.ID,
		CustomerID:       it.CustomerID,
		CustomerName:     it.CustomerName,
		CustomerEmail:    it.CustomerEmail,
		TotalBookings:    it.TotalBookings,
		Eligible:         it.Eligible,
		DiscountPct:      it.DiscountPct,
		Status:           entities.LoyaltyDiscountStatus(it.Status),
		ReviewerID:       it.ReviewerID,
		ReviewNotes:      it.ReviewNotes,
		AppliedToPayment: it.AppliedToPayment,
		PaymentID:        it.PaymentID,
		ServiceCostID:    it.ServiceCostID,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
