package repository

import (
	"context"

	"primefinish/internal/domain/entities"
	"primefinish/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBucketsTableName = "buckets"

// bucketItem is the storage row: one item per named bucket, the whole list
// serialized as a JSON payload. This mirrors the app's key-value model where
// every mutation rewrites the bucket wholesale.
type bucketItem struct {
	Name    string `dynamodbav:"name"`
	Payload string `dynamodbav:"payload"`
}

// BucketDynamoRepository persists the named buckets in a single DynamoDB
// table.
//
// Table requirements:
//   - PK: name (string)
//
// There is no per-record addressing: callers read a bucket snapshot, mutate
// it, and put the whole snapshot back. Last writer wins.

type BucketDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var (
	_ interfaces.IRecordStore       = (*BucketDynamoRepository)(nil)
	_ interfaces.ICatalogStore      = (*BucketDynamoRepository)(nil)
	_ interfaces.IExpenseStore      = (*BucketDynamoRepository)(nil)
	_ interfaces.IStaffPaymentStore = (*BucketDynamoRepository)(nil)
)

func NewBucketDynamoRepository(ddb *dynamodb.Client) *BucketDynamoRepository {
	return &BucketDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUCKETS_TABLE", defaultBucketsTableName),
	}
}

func (r *BucketDynamoRepository) GetBucket(ctx context.Context, bucket entities.Bucket) ([]entities.Record, error) {
	payload, err := r.getPayload(ctx, string(bucket))
	if err != nil {
		return nil, err
	}
	return decodeRecords(string(bucket), payload), nil
}

func (r *BucketDynamoRepository) PutBucket(ctx context.Context, bucket entities.Bucket, records []entities.Record) error {
	return r.putList(ctx, string(bucket), records)
}

func (r *BucketDynamoRepository) GetCatalog(ctx context.Context, key string) ([]entities.CostOption, error) {
	payload, err := r.getPayload(ctx, key)
	if err != nil {
		return nil, err
	}
	return decodeCostOptions(key, payload), nil
}

func (r *BucketDynamoRepository) PutCatalog(ctx context.Context, key string, options []entities.CostOption) error {
	return r.putList(ctx, key, options)
}

func (r *BucketDynamoRepository) ListExpenses(ctx context.Context) ([]entities.Expense, error) {
	payload, err := r.getPayload(ctx, entities.KeyDirectExpenses)
	if err != nil {
		return nil, err
	}
	return decodeExpenses(payload), nil
}

func (r *BucketDynamoRepository) PutExpenses(ctx context.Context, expenses []entities.Expense) error {
	return r.putList(ctx, entities.KeyDirectExpenses, expenses)
}

func (r *BucketDynamoRepository) ListStaffPayments(ctx context.Context) ([]entities.StaffPayment, error) {
	payload, err := r.getPayload(ctx, entities.KeyStaffPayments)
	if err != nil {
		return nil, err
	}
	return decodeStaffPayments(payload), nil
}

func (r *BucketDynamoRepository) PutStaffPayments(ctx context.Context, payments []entities.StaffPayment) error {
	return r.putList(ctx, entities.KeyStaffPayments, payments)
}

func (r *BucketDynamoRepository) getPayload(ctx context.Context, name string) ([]byte, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it bucketItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return []byte(it.Payload), nil
}

func (r *BucketDynamoRepository) putList(ctx context.Context, name string, list any) error {
	payload, err := encodeList(list)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(bucketItem{Name: name, Payload: string(payload)})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
