package repository

import (
	"context"
	"sort"
	"time"

	"autoshop_billing/internal/domain/entities"
	"autoshop_billing/internal/domain/pricing"
	"autoshop_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCustomerPaymentsTableName = "customer_payments"
	paymentsServiceCostIDIndex       = "service_cost_id-index"
	paymentsCustomerIDIndex          = "customer_id-index"
	paymentsReceiptNumberIndex       = "receipt_number-index"

	defaultListLimit = 50
)

type paymentBreakdownItem struct {
	ServiceCost               float64 `dynamodbav:"service_cost"`
	ProfitAmount              float64 `dynamodbav:"profit_amount"`
	AdvisorFixedCost          float64 `dynamodbav:"advisor_fixed_cost"`
	StaffFixedCost            float64 `dynamodbav:"staff_fixed_cost"`
	CostWithProfit            float64 `dynamodbav:"cost_with_profit"`
	TaxAmount                 float64 `dynamodbav:"tax_amount"`
	Subtotal                  float64 `dynamodbav:"subtotal"`
	LoyaltyDiscountPercentage float64 `dynamodbav:"loyalty_discount_percentage"`
	LoyaltyDiscountAmount     float64 `dynamodbav:"loyalty_discount_amount"`
	FinalCustomerPayment      float64 `dynamodbav:"final_customer_payment"`
}

type deductionsItem struct {
	EPF   float64 `dynamodbav:"epf"`
	ETF   float64 `dynamodbav:"etf"`
	Other float64 `dynamodbav:"other"`
	Total float64 `dynamodbav:"total"`
}

type refundItem struct {
	Amount     float64 `dynamodbav:"amount"`
	Reason     string  `dynamodbav:"reason,omitempty"`
	RefundedBy string  `dynamodbav:"refunded_by,omitempty"`
	RefundedAt string  `dynamodbav:"refunded_at"`
}

type customerPaymentItem struct {
	ID            string `dynamodbav:"id"`
	CustomerID    string `dynamodbav:"customer_id"`
	CustomerName  string `dynamodbav:"customer_name,omitempty"`
	CustomerEmail string `dynamodbav:"customer_email,omitempty"`
	ServiceCostID string `dynamodbav:"service_cost_id"`
	InvoiceID     string `dynamodbav:"invoice_id,omitempty"`
	VehiclePlate  string `dynamodbav:"vehicle_plate,omitempty"`
	ServiceType   string `dynamodbav:"service_type,omitempty"`

	Breakdown   paymentBreakdownItem `dynamodbav:"breakdown"`
	GrossAmount float64              `dynamodbav:"gross_amount"`
	Deductions  deductionsItem       `dynamodbav:"deductions"`
	NetAmount   float64              `dynamodbav:"net_amount"`

	Method        string `dynamodbav:"method"`
	Reference     string `dynamodbav:"reference,omitempty"`
	TransactionID string `dynamodbav:"transaction_id,omitempty"`
	Status        string `dynamodbav:"status"`
	ReceiptNumber string `dynamodbav:"receipt_number,omitempty"`

	LoyaltyDiscountRequestID string `dynamodbav:"loyalty_discount_request_id,omitempty"`

	ProcessedBy string `dynamodbav:"processed_by,omitempty"`
	ProcessedAt string `dynamodbav:"processed_at"`
	Notes       string `dynamodbav:"notes,omitempty"`

	Refund *refundItem `dynamodbav:"refund,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
}

// CustomerPaymentDynamoRepository persists the payment ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_cost_id-index (PK: service_cost_id)
//   - GSI: customer_id-index (PK: customer_id)
//
// Ledger records are append-only: Create rejects duplicate ids and no delete
// operation exists.

type CustomerPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerPaymentRepository = (*CustomerPaymentDynamoRepository)(nil)

func NewCustomerPaymentDynamoRepository(ddb *dynamodb.Client) *CustomerPaymentDynamoRepository {
	return &CustomerPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMER_PAYMENTS_TABLE", defaultCustomerPaymentsTableName),
	}
}

func (r *CustomerPaymentDynamoRepository) Create(ctx context.Context, p entities.CustomerPayment) (entities.CustomerPayment, error) {
	it := toCustomerPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CustomerPayment{}, err
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
		return entities.CustomerPayment{}, err
	}
	return p, nil
}

func (r *CustomerPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.CustomerPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CustomerPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.CustomerPayment{}, nil
	}

	var it customerPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CustomerPayment{}, err
	}
	return fromCustomerPaymentItem(it), nil
}

// GetByServiceCostID returns the most recent ledger record for a service
// cost. A healthy system has at most one, but the read tolerates more.
func (r *CustomerPaymentDynamoRepository) GetByServiceCostID(ctx context.Context, serviceCostID string) (entities.CustomerPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsServiceCostIDIndex),
		KeyConditionExpression: aws.String("service_cost_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: serviceCostID},
		},
	})
	if err != nil {
		return entities.CustomerPayment{}, err
	}
	if len(out.Items) == 0 {
		return entities.CustomerPayment{}, nil
	}

	var latest entities.CustomerPayment
	for _, raw := range out.Items {
		var it customerPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.CustomerPayment{}, err
		}
		candidate := fromCustomerPaymentItem(it)
		if latest.ID == "" || candidate.ProcessedAt.After(latest.ProcessedAt) {
			latest = candidate
		}
	}
	return latest, nil
}

func (r *CustomerPaymentDynamoRepository) GetByReceiptNumber(ctx context.Context, receiptNumber string) (entities.CustomerPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsReceiptNumberIndex),
		KeyConditionExpression: aws.String("receipt_number = :rcp"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rcp": &types.AttributeValueMemberS{Value: receiptNumber},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.CustomerPayment{}, err
	}
	if len(out.Items) == 0 {
		return entities.CustomerPayment{}, nil
	}
	var it customerPaymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.CustomerPayment{}, err
	}
	return fromCustomerPaymentItem(it), nil
}

func (r *CustomerPaymentDynamoRepository) List(ctx context.Context, filter interfaces.CustomerPaymentFilter) ([]entities.CustomerPayment, error) {
	var raw []map[string]types.AttributeValue

	if filter.CustomerID != "" {
		input := &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(paymentsCustomerIDIndex),
			KeyConditionExpression: aws.String("customer_id = :cid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cid": &types.AttributeValueMemberS{Value: filter.CustomerID},
			},
		}
		if filter.Status != "" {
			input.FilterExpression = aws.String("#status = :status")
			input.ExpressionAttributeNames = map[string]string{"#status": "status"}
			input.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
		}
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		raw = out.Items
	} else {
		input := &dynamodb.ScanInput{
			TableName: aws.String(r.tableName),
		}
		if filter.Status != "" {
			input.FilterExpression = aws.String("#status = :status")
			input.ExpressionAttributeNames = map[string]string{"#status": "status"}
			input.ExpressionAttributeValues = map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(filter.Status)},
			}
		}
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		raw = out.Items
	}

	items := make([]entities.CustomerPayment, 0, len(raw))
	for _, m := range raw {
		var it customerPaymentItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCustomerPaymentItem(it))
	}

	// Newest first, paged client-side. Ledger volume is small enough that a
	// LastEvaluatedKey cursor is not worth the API surface yet.
	sort.Slice(items, func(i, j int) bool {
		return items[i].ProcessedAt.After(items[j].ProcessedAt)
	})
	return pagePayments(items, filter.Page, filter.Limit), nil
}

func (r *CustomerPaymentDynamoRepository) ListCompletedBetween(ctx context.Context, start, end time.Time) ([]entities.CustomerPayment, error) {
	// RFC3339 timestamps in UTC compare lexicographically, so BETWEEN works
	// on the stored strings.
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :completed AND #processed_at BETWEEN :start AND :end"),
		ExpressionAttributeNames: map[string]string{
			"#status":       "status",
			"#processed_at": "processed_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":completed": &types.AttributeValueMemberS{Value: string(entities.CustomerPaymentStatusCompleted)},
			":start":     &types.AttributeValueMemberS{Value: start.UTC().Format(time.RFC3339Nano)},
			":end":       &types.AttributeValueMemberS{Value: end.UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.CustomerPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it customerPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCustomerPaymentItem(it))
	}
	return items, nil
}

func pagePayments(items []entities.CustomerPayment, page, limit int) []entities.CustomerPayment {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []entities.CustomerPayment{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func toCustomerPaymentItem(p entities.CustomerPayment) customerPaymentItem {
	it := customerPaymentItem{
		ID:            p.ID,
		CustomerID:    p.CustomerID,
		CustomerName:  p.CustomerName,
		CustomerEmail: p.CustomerEmail,
		ServiceCostID: p.ServiceCostID,
		InvoiceID:     p.InvoiceID,
		VehiclePlate:  p.VehiclePlate,
		ServiceType:   p.ServiceType,
		Breakdown: paymentBreakdownItem{
			ServiceCost:               p.Breakdown.ServiceCost,
			ProfitAmount:              p.Breakdown.ProfitAmount,
			AdvisorFixedCost:          p.Breakdown.AdvisorFixedCost,
			StaffFixedCost:            p.Breakdown.StaffFixedCost,
			CostWithProfit:            p.Breakdown.CostWithProfit,
			TaxAmount:                 p.Breakdown.TaxAmount,
			Subtotal:                  p.Breakdown.Subtotal,
			LoyaltyDiscountPercentage: p.Breakdown.LoyaltyDiscountPercentage,
			LoyaltyDiscountAmount:     p.Breakdown.LoyaltyDiscountAmount,
			FinalCustomerPayment:      p.Breakdown.FinalCustomerPayment,
		},
		GrossAmount: p.GrossAmount,
		Deductions: deductionsItem{
			EPF:   p.Deductions.EPF,
			ETF:   p.Deductions.ETF,
			Other: p.Deductions.Other,
			Total: p.Deductions.Total,
		},
		NetAmount:                p.NetAmount,
		Method:                   string(p.Method),
		Reference:                p.Reference,
		TransactionID:            p.TransactionID,
		Status:                   string(p.Status),
		ReceiptNumber:            p.ReceiptNumber,
		LoyaltyDiscountRequestID: p.LoyaltyDiscountRequestID,
		ProcessedBy:              p.ProcessedBy,
		ProcessedAt:              p.ProcessedAt.UTC().Format(time.RFC3339Nano),
		Notes:                    p.Notes,
		CreatedAt:                p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.Refund != nil {
		it.Refund = &refundItem{
			Amount:     p.Refund.Amount,
			Reason:     p.Refund.Reason,
			RefundedBy: p.Refund.RefundedBy,
			RefundedAt: p.Refund.RefundedAt.UTC().Format(time.RFC3339Nano),
		}
	}
	return it
}

func fromCustomerPaymentItem(it customerPaymentItem) entities.CustomerPayment {
	processedAt, _ := time.Parse(time.RFC3339Nano, it.ProcessedAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)

	p := entities.CustomerPayment{
		ID:            it.ID,
		CustomerID:    it.CustomerID,
		CustomerName:  it.CustomerName,
		CustomerEmail: it.CustomerEmail,
		ServiceCostID: it.ServiceCostID,
		InvoiceID:     it.InvoiceID,
		VehiclePlate:  it.VehiclePlate,
		ServiceType:   it.ServiceType,
		Breakdown: pricing.Breakdown{
			ServiceCost:               it.Breakdown.ServiceCost,
			ProfitAmount:              it.Breakdown.ProfitAmount,
			AdvisorFixedCost:          it.Breakdown.AdvisorFixedCost,
			StaffFixedCost:            it.Breakdown.StaffFixedCost,
			CostWithProfit:            it.Breakdown.CostWithProfit,
			TaxAmount:                 it.Breakdown.TaxAmount,
			Subtotal:                  it.Breakdown.Subtotal,
			LoyaltyDiscountPercentage: it.Breakdown.LoyaltyDiscountPercentage,
			LoyaltyDiscountAmount:     it.Breakdown.LoyaltyDiscountAmount,
			FinalCustomerPayment:      it.Breakdown.FinalCustomerPayment,
		},
		GrossAmount: it.GrossAmount,
		Deductions: entities.Deductions{
			EPF:   it.Deductions.EPF,
			ETF:   it.Deductions.ETF,
			Other: it.Deductions.Other,
			Total: it.Deductions.Total,
		},
		NetAmount:                it.NetAmount,
		Method:                   entities.PaymentMethod(it.Method),
		Reference:                it.Reference,
		TransactionID:            it.TransactionID,
		Status:                   entities.CustomerPaymentStatus(it.Status),
		ReceiptNumber:            it.ReceiptNumber,
		LoyaltyDiscountRequestID: it.LoyaltyDiscountRequestID,
		ProcessedBy:              it.ProcessedBy,
		ProcessedAt:              processedAt,
		Notes:                    it.Notes,
		CreatedAt:                createdAt,
	}
	if it.Refund != nil {
		refundedAt, _ := time.Parse(time.RFC3339Nano, it.Refund.RefundedAt)
		p.Refund = &entities.Refund{
			Amount:     it.Refund.Amount,
			Reason:     it.Refund.Reason,
			RefundedBy: it.Refund.RefundedBy,
			RefundedAt: refundedAt,
		}
	}
	return p
}
