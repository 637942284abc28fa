package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	groceryerrors "github.com/abgdnv/grocerylist/internal/errors"
	"github.com/abgdnv/grocerylist/pkg/bootstrap"
	pkgconfig "github.com/abgdnv/grocerylist/pkg/config"
)

const skipIntegrationTests = "GROCERY_SKIP_INTEGRATION_TESTS"

const (
	testTable = "grocery_items"
	testIndex = "NameIndex"
)

// DynamoStoreSuite is a test suite for the DynamoDB ItemStore implementation.
type DynamoStoreSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *dynamodb.Client
	store     *DynamoStore
	ctx       context.Context
}

// SetupSuite starts a dynamodb-local container and creates the table with the Name index.
func (s *DynamoStoreSuite) SetupSuite() {
	s.ctx = context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "amazon/dynamodb-local:2.5.2",
		ExposedPorts: []string{"8000/tcp"},
		WaitingFor:   wait.ForListeningPort("8000/tcp").WithStartupTimeout(2 * time.Minute),
	}
	container, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(s.T(), err, "Failed to run dynamodb-local container")
	s.container = container

	endpoint, err := container.Endpoint(s.ctx, "http")
	require.NoError(s.T(), err, "Failed to get endpoint from container")

	// dynamodb-local accepts any credential pair; the values only shape the key space.
	s.client, err = bootstrap.NewDynamoClient(s.ctx, pkgconfig.DynamoConfig{
		Region:          "us-east-1",
		Table:           testTable,
		NameIndex:       testIndex,
		Endpoint:        endpoint,
		AccessKeyID:     "local",
		SecretAccessKey: "local",
		Timeout:         30 * time.Second,
	})
	require.NoError(s.T(), err, "Failed to create DynamoDB client")

	_, err = s.client.CreateTable(s.ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(testTable),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("ItemID"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("Name"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("ItemID"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String(testIndex),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("Name"), KeyType: types.KeyTypeHash},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	require.NoError(s.T(), err, "Failed to create table")

	s.store = NewDynamoStore(s.client, testTable, testIndex)
}

// TearDownSuite stops the dynamodb-local container.
func (s *DynamoStoreSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

// SetupTest clears the table before each test.
func (s *DynamoStoreSuite) SetupTest() {
	out, err := s.client.Scan(s.ctx, &dynamodb.ScanInput{TableName: aws.String(testTable)})
	require.NoError(s.T(), err)
	for _, item := range out.Items {
		_, err := s.client.DeleteItem(s.ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(testTable),
			Key:       map[string]types.AttributeValue{"ItemID": item["ItemID"]},
		})
		require.NoError(s.T(), err)
	}
}

func (s *DynamoStoreSuite) TestPutAndFindAll() {
	// given
	milk := Item{ItemID: "i1", Name: "Milk", Quantity: "2", Price: "3.5"}
	require.NoError(s.T(), s.store.Put(s.ctx, milk))

	// when
	items, err := s.store.FindAll(s.ctx)

	// then
	require.NoError(s.T(), err)
	require.Len(s.T(), items, 1)
	assert.Equal(s.T(), milk, items[0])
}

func (s *DynamoStoreSuite) TestPutOverwritesSameID() {
	// given: two writes under the same ItemID
	require.NoError(s.T(), s.store.Put(s.ctx, Item{ItemID: "i1", Name: "Milk", Quantity: "2", Price: "3.5"}))
	second := Item{ItemID: "i1", Name: "Whole Milk", Quantity: "1", Price: "4", Purchased: true}
	require.NoError(s.T(), s.store.Put(s.ctx, second))

	// then: exactly one item remains
	items, err := s.store.FindAll(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), items, 1)
	assert.Equal(s.T(), second, items[0])
}

func (s *DynamoStoreSuite) TestFindByName() {
	require.NoError(s.T(), s.store.Put(s.ctx, Item{ItemID: "i1", Name: "Milk", Quantity: "2", Price: "3.5"}))

	found, err := s.store.FindByName(s.ctx, "Milk")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "i1", found.ItemID)

	_, err = s.store.FindByName(s.ctx, "Bread")
	assert.ErrorIs(s.T(), err, groceryerrors.ErrItemNotFound)
}

func (s *DynamoStoreSuite) TestUpdatePurchased() {
	// given: an item already marked purchased
	require.NoError(s.T(), s.store.Put(s.ctx, Item{ItemID: "i1", Name: "Milk", Quantity: "2", Price: "3.5", Purchased: true}))

	// when
	require.NoError(s.T(), s.store.UpdatePurchased(s.ctx, "i1", false))

	// then: flag reset, other attributes untouched
	found, err := s.store.FindByName(s.ctx, "Milk")
	require.NoError(s.T(), err)
	assert.False(s.T(), found.Purchased)
	assert.Equal(s.T(), "2", found.Quantity)
	assert.Equal(s.T(), "3.5", found.Price)
}

func TestDynamoStoreSuite(t *testing.T) {
	if os.Getenv(skipIntegrationTests) != "" {
		t.Skipf("Skipping integration tests: %s is set", skipIntegrationTests)
	}
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(DynamoStoreSuite))
}
